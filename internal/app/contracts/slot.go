package contracts

import (
	"context"

	"agenda-care-service/internal/pkg/fhir_dto"
)

type SlotFhirClient interface {
	FindSlotByID(ctx context.Context, slotID string) (*fhir_dto.Slot, error)
}

package slots

import (
	"context"
	"fmt"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/app/services/shared/restclient"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

type slotFhirClient struct {
	client *restclient.RestClient
}

func NewSlotFhirClient(client *restclient.RestClient) contracts.SlotFhirClient {
	return &slotFhirClient{client: client}
}

func (c *slotFhirClient) FindSlotByID(ctx context.Context, slotID string) (*fhir_dto.Slot, error) {
	resp, err := c.client.Get(ctx, fmt.Sprintf("%s/%s", constvars.ResourceSlot, slotID))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, exceptions.ErrFHIRRequestFailed(resp.StatusCode, string(resp.Body))
	}

	var slot fhir_dto.Slot
	if err := json.Unmarshal(resp.Body, &slot); err != nil {
		return nil, exceptions.ErrFHIRDecode(err, constvars.ResourceSlot)
	}
	return &slot, nil
}

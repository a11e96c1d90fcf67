package contracts

import (
	"context"

	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) error
	GetProfile(ctx context.Context, patientID string) (*responses.UserProfile, error)
}

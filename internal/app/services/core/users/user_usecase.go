package users

import (
	"fmt"

	"context"

	"agenda-care-service/internal/app/services/shared/restclient"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/enums"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/fhir_dto"
	"agenda-care-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserUsecase struct {
	authClient *restclient.RestClient
	fhirClient *restclient.RestClient
	logger     *zap.Logger
}

func NewUserUsecase(authClient, fhirClient *restclient.RestClient, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{
		authClient: authClient,
		fhirClient: fhirClient,
		logger:     logger,
	}
}

// Register provisions an account in the auth service for an already created
// FHIR resource. Conflicts and payload rejections each carry their own
// client message so the apps can show a meaningful dialog.
func (u *UserUsecase) Register(ctx context.Context, request *requests.RegisterUser) error {
	if err := utils.ValidateStruct(request); err != nil {
		return err
	}

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	resp, err := u.authClient.Post(ctx, constvars.UsersRegisterEndpoint, body, constvars.MIMEApplicationJSON)
	if err != nil {
		return err
	}

	switch {
	case resp.OK():
		u.logger.Info("user registered",
			zap.String("user_id", request.ID),
			zap.String("role", request.Role))
		return nil
	case resp.StatusCode == constvars.StatusConflict:
		return exceptions.ErrUserAlreadyExists(fmt.Errorf("id %s", request.ID))
	case resp.StatusCode == constvars.StatusBadRequest:
		return exceptions.ErrUserInvalidData(fmt.Errorf("id %s", request.ID))
	default:
		return exceptions.ErrFHIRRequestFailed(resp.StatusCode, string(resp.Body))
	}
}

// GetProfile flattens the backing Patient into the mobile profile card.
func (u *UserUsecase) GetProfile(ctx context.Context, patientID string) (*responses.UserProfile, error) {
	resp, err := u.fhirClient.Get(ctx, fmt.Sprintf("%s/%s", constvars.ResourcePatient, patientID))
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, exceptions.ErrFHIRRequestFailed(resp.StatusCode, string(resp.Body))
	}

	var patient fhir_dto.Patient
	if err := json.Unmarshal(resp.Body, &patient); err != nil {
		return nil, exceptions.ErrFHIRDecode(err, constvars.ResourcePatient)
	}

	return BuildProfile(&patient), nil
}

// BuildProfile maps Patient wire data to the flat profile view. Absent
// nested data flattens to empty strings.
func BuildProfile(patient *fhir_dto.Patient) *responses.UserProfile {
	email, phone := utils.GetEmailAndPhone(patient.Telecom)
	profile := &responses.UserProfile{
		Fullname:  utils.GetFullName(patient.Name),
		Email:     email,
		Phone:     phone,
		Gender:    enums.Gender.Label(patient.Gender),
		BirthDate: patient.BirthDate,
		Address:   utils.GetHomeAddress(patient.Address),
		Photo:     utils.GetPhotoSource(patient.Photo),
	}
	for _, identifier := range patient.Identifier {
		if identifier.System == constvars.FhirIdentifierSystemHealthID {
			profile.HealthID = identifier.Value
			break
		}
	}
	return profile
}

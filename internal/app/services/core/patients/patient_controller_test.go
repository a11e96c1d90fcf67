package patients

import (
	"testing"

	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientTransformShow(t *testing.T) {
	controller := NewPatientController()

	t.Run("Flattens Identity Contact And Identifier", func(t *testing.T) {
		patient := fhir_dto.Patient{
			ResourceType: constvars.ResourcePatient,
			ID:           "pt-1",
			Identifier:   []fhir_dto.Identifier{{System: constvars.FhirIdentifierSystemHealthID, Value: "123456789"}},
			Name:         []fhir_dto.HumanName{{Given: []string{"Ana", "Maria"}, Family: "Silva"}},
			Telecom: []fhir_dto.ContactPoint{
				{System: constvars.FhirTelecomSystemPhone, Value: "912345678"},
				{System: constvars.FhirTelecomSystemEmail, Value: "ana@exemplo.pt"},
			},
			Address: []fhir_dto.Address{{Line: []string{"Rua das Flores 10"}, City: "Lisboa", PostalCode: "1200-001"}},
			Photo:   []fhir_dto.Attachment{{Url: "https://cdn.example/pt-1.jpg"}},
		}

		show := controller.TransformShow(patient)
		assert.Equal(t, "Ana Maria Silva", show.ProcessedName)
		assert.Equal(t, "Ana Maria", show.ProcessedFirstName)
		assert.Equal(t, "Silva", show.ProcessedLastName)
		assert.Equal(t, "912345678", show.ProcessedPhone)
		assert.Equal(t, "ana@exemplo.pt", show.ProcessedEmail)
		assert.Equal(t, "Rua das Flores 10", show.ProcessedAddressLine)
		assert.Equal(t, "Lisboa", show.ProcessedCity)
		assert.Equal(t, "1200-001", show.ProcessedPostalCode)
		assert.Equal(t, "https://cdn.example/pt-1.jpg", show.ProcessedPhoto)
		assert.Equal(t, "123456789", show.ProcessedSNSIdentifier)
		// original nested data stays in place
		assert.Equal(t, patient.Name, show.Name)
		assert.Equal(t, patient.Telecom, show.Telecom)
	})

	t.Run("Empty Patient Yields Empty Processed Fields", func(t *testing.T) {
		show := controller.TransformShow(fhir_dto.Patient{ResourceType: constvars.ResourcePatient})
		assert.Empty(t, show.ProcessedName)
		assert.Empty(t, show.ProcessedPhone)
		assert.Empty(t, show.ProcessedAddressLine)
		assert.Empty(t, show.ProcessedSNSIdentifier)
	})
}

func TestPatientTransformList(t *testing.T) {
	controller := NewPatientController()

	t.Run("Preserves Order", func(t *testing.T) {
		shows := controller.TransformList([]fhir_dto.Patient{
			{ID: "pt-1", Name: []fhir_dto.HumanName{{Family: "Silva"}}},
			{ID: "pt-2", Name: []fhir_dto.HumanName{{Family: "Costa"}}},
		})
		require.Len(t, shows, 2)
		assert.Equal(t, "Silva", shows[0].ProcessedName)
		assert.Equal(t, "Costa", shows[1].ProcessedName)
	})

	t.Run("Empty In Empty Out", func(t *testing.T) {
		assert.Empty(t, controller.TransformList(nil))
	})
}

func TestPatientTransformCreate(t *testing.T) {
	controller := NewPatientController()

	t.Run("National Health Id Becomes Identifier", func(t *testing.T) {
		sns := "123456789"
		patient := controller.TransformCreate(&requests.CreatePatient{SNSIdentifier: &sns})
		require.Len(t, patient.Identifier, 1)
		assert.Equal(t, constvars.FhirIdentifierSystemHealthID, patient.Identifier[0].System)
		assert.Equal(t, "123456789", patient.Identifier[0].Value)
	})

	t.Run("Absent National Health Id Leaves No Identifier", func(t *testing.T) {
		patient := controller.TransformCreate(&requests.CreatePatient{FirstName: "Ana"})
		assert.Nil(t, patient.Identifier)
	})

	t.Run("Builds Nested Name Telecom And Address", func(t *testing.T) {
		patient := controller.TransformCreate(&requests.CreatePatient{
			FirstName:   "Ana",
			LastName:    "Silva",
			Phone:       "912345678",
			Email:       "ana@exemplo.pt",
			AddressLine: "Rua das Flores 10",
			City:        "Lisboa",
			PostalCode:  "1200-001",
		})
		assert.Equal(t, constvars.ResourcePatient, patient.ResourceType)
		require.Len(t, patient.Name, 1)
		assert.Equal(t, []string{"Ana"}, patient.Name[0].Given)
		assert.Equal(t, "Silva", patient.Name[0].Family)
		require.Len(t, patient.Telecom, 2)
		require.Len(t, patient.Address, 1)
		assert.Equal(t, []string{"Rua das Flores 10"}, patient.Address[0].Line)
	})
}

func TestPatientTransformEdit(t *testing.T) {
	controller := NewPatientController()

	t.Run("Show Then Edit Without Changes Round-Trips", func(t *testing.T) {
		original := fhir_dto.Patient{
			ResourceType: constvars.ResourcePatient,
			ID:           "pt-1",
			Name:         []fhir_dto.HumanName{{Given: []string{"Ana"}, Family: "Silva"}},
			Gender:       "female",
			BirthDate:    "1990-04-12",
		}
		edited := controller.TransformEdit(&requests.EditPatient{Patient: original})
		assert.Equal(t, original, edited)
	})

	t.Run("Processed Fields Overwrite Nested Data", func(t *testing.T) {
		form := &requests.EditPatient{
			Patient: fhir_dto.Patient{
				ID:      "pt-1",
				Name:    []fhir_dto.HumanName{{Given: []string{"Ana"}, Family: "Silva"}},
				Telecom: []fhir_dto.ContactPoint{{System: constvars.FhirTelecomSystemEmail, Value: "old@exemplo.pt"}},
			},
			ProcessedLastName: "Costa",
			ProcessedPhone:    "939999999",
		}
		edited := controller.TransformEdit(form)
		require.Len(t, edited.Name, 1)
		assert.Equal(t, "Costa", edited.Name[0].Family)
		// untouched email entry survives while phone is appended
		require.Len(t, edited.Telecom, 2)
		assert.Equal(t, "old@exemplo.pt", edited.Telecom[0].Value)
		assert.Equal(t, "939999999", edited.Telecom[1].Value)
	})
}

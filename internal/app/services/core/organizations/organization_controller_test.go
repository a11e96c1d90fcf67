package organizations

import (
	"testing"

	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationTransformShow(t *testing.T) {
	controller := NewOrganizationController()

	t.Run("Flattens Type And Telecom", func(t *testing.T) {
		show := controller.TransformShow(fhir_dto.Organization{
			ResourceType: constvars.ResourceOrganization,
			Name:         "Clínica Central",
			Type:         []fhir_dto.CodeableConcept{{Coding: []fhir_dto.Coding{{Code: "prov", Display: "Prestador de Cuidados de Saúde"}}}},
			Telecom: []fhir_dto.ContactPoint{
				{System: constvars.FhirTelecomSystemPhone, Value: "210000000"},
				{System: constvars.FhirTelecomSystemEmail, Value: "geral@clinica.pt"},
			},
		})

		require.Len(t, show.ProcessedType, 1)
		assert.Equal(t, "prov", show.ProcessedType[0].Code)
		assert.Equal(t, "210000000", show.ProcessedPhone)
		assert.Equal(t, "geral@clinica.pt", show.ProcessedEmail)
	})

	t.Run("Empty Organization Yields Empty Processed Fields", func(t *testing.T) {
		show := controller.TransformShow(fhir_dto.Organization{})
		assert.Empty(t, show.ProcessedType)
		assert.Empty(t, show.ProcessedPhone)
	})
}

func TestOrganizationTransformCreate(t *testing.T) {
	controller := NewOrganizationController()

	t.Run("Builds Concepts And Telecom From Flat Inputs", func(t *testing.T) {
		organization := controller.TransformCreate(&requests.CreateOrganization{
			Name:  "Clínica Central",
			Types: []string{"prov", "team"},
			Phone: "210000000",
		})

		assert.Equal(t, constvars.ResourceOrganization, organization.ResourceType)
		require.Len(t, organization.Type, 2)
		assert.Equal(t, "prov", organization.Type[0].Coding[0].Code)
		assert.Equal(t, "Prestador de Cuidados de Saúde", organization.Type[0].Coding[0].Display)
		require.Len(t, organization.Telecom, 1)
		assert.Equal(t, "210000000", organization.Telecom[0].Value)
	})

	t.Run("Absent Optional Inputs Stay Absent", func(t *testing.T) {
		organization := controller.TransformCreate(&requests.CreateOrganization{Name: "X"})
		assert.Nil(t, organization.Type)
		assert.Nil(t, organization.Telecom)
		assert.Nil(t, organization.Address)
	})
}

func TestOrganizationTransformEdit(t *testing.T) {
	controller := NewOrganizationController()

	t.Run("Show Then Edit Without Changes Round-Trips", func(t *testing.T) {
		original := fhir_dto.Organization{
			ResourceType: constvars.ResourceOrganization,
			ID:           "org-1",
			Name:         "Clínica Central",
			Type:         []fhir_dto.CodeableConcept{{Coding: []fhir_dto.Coding{{Code: "prov"}}}},
		}
		edited := controller.TransformEdit(&requests.EditOrganization{Organization: original})
		assert.Equal(t, original, edited)
	})

	t.Run("Processed Types Rebuild The Concept List", func(t *testing.T) {
		edited := controller.TransformEdit(&requests.EditOrganization{
			Organization:   fhir_dto.Organization{ID: "org-1"},
			ProcessedTypes: []string{"dept"},
		})
		require.Len(t, edited.Type, 1)
		assert.Equal(t, "dept", edited.Type[0].Coding[0].Code)
	})
}

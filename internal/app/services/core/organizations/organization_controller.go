package organizations

import (
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/enums"
	"agenda-care-service/internal/pkg/fhir_dto"
	"agenda-care-service/internal/pkg/utils"
)

type OrganizationController struct{}

func NewOrganizationController() *OrganizationController {
	return &OrganizationController{}
}

func (c *OrganizationController) TransformShow(organization fhir_dto.Organization) responses.OrganizationShow {
	show := responses.OrganizationShow{Organization: organization}
	show.ProcessedType = utils.CodePairs(organization.Type)
	show.ProcessedEmail, show.ProcessedPhone = utils.GetEmailAndPhone(organization.Telecom)
	return show
}

func (c *OrganizationController) TransformList(organizations []fhir_dto.Organization) []responses.OrganizationShow {
	shows := make([]responses.OrganizationShow, len(organizations))
	for i, organization := range organizations {
		shows[i] = c.TransformShow(organization)
	}
	return shows
}

func (c *OrganizationController) TransformCreate(form *requests.CreateOrganization) fhir_dto.Organization {
	organization := fhir_dto.Organization{
		ResourceType: constvars.ResourceOrganization,
		Name:         form.Name,
		Active:       form.Active,
	}
	organization.Type = buildTypes(form.Types)
	if form.Phone != "" {
		organization.Telecom = utils.UpsertContactPoint(organization.Telecom, constvars.FhirTelecomSystemPhone, form.Phone)
	}
	if form.Email != "" {
		organization.Telecom = utils.UpsertContactPoint(organization.Telecom, constvars.FhirTelecomSystemEmail, form.Email)
	}
	if form.AddressLine != "" || form.City != "" || form.PostalCode != "" {
		address := fhir_dto.Address{City: form.City, PostalCode: form.PostalCode}
		if form.AddressLine != "" {
			address.Line = []string{form.AddressLine}
		}
		organization.Address = []fhir_dto.Address{address}
	}
	return organization
}

func (c *OrganizationController) TransformEdit(form *requests.EditOrganization) fhir_dto.Organization {
	organization := form.Organization
	organization.ResourceType = constvars.ResourceOrganization
	if types := buildTypes(form.ProcessedTypes); types != nil {
		organization.Type = types
	}
	if form.ProcessedPhone != "" {
		organization.Telecom = utils.UpsertContactPoint(organization.Telecom, constvars.FhirTelecomSystemPhone, form.ProcessedPhone)
	}
	if form.ProcessedEmail != "" {
		organization.Telecom = utils.UpsertContactPoint(organization.Telecom, constvars.FhirTelecomSystemEmail, form.ProcessedEmail)
	}
	return organization
}

func buildTypes(codes []string) []fhir_dto.CodeableConcept {
	if len(codes) == 0 {
		return nil
	}
	concepts := make([]fhir_dto.CodeableConcept, len(codes))
	for i, code := range codes {
		concepts[i] = utils.MakeCodeableConcept(constvars.FhirSystemOrganizationType, code, enums.OrganizationType.Label(code))
	}
	return concepts
}

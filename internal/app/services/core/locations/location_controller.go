package locations

import (
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/enums"
	"agenda-care-service/internal/pkg/fhir_dto"
	"agenda-care-service/internal/pkg/utils"
)

type LocationController struct{}

func NewLocationController() *LocationController {
	return &LocationController{}
}

func (c *LocationController) TransformShow(location fhir_dto.Location) responses.LocationShow {
	show := responses.LocationShow{Location: location}
	show.ProcessedType = utils.CodePairs(location.Type)
	show.ProcessedPhysicalType = utils.CodeToLabel(location.PhysicalType, enums.LocationPhysicalType)
	show.ProcessedManagingOrganization = utils.ParseReferenceID(location.ManagingOrganization)
	return show
}

func (c *LocationController) TransformList(locations []fhir_dto.Location) []responses.LocationShow {
	shows := make([]responses.LocationShow, len(locations))
	for i, location := range locations {
		shows[i] = c.TransformShow(location)
	}
	return shows
}

func (c *LocationController) TransformCreate(form *requests.CreateLocation) fhir_dto.Location {
	location := fhir_dto.Location{
		ResourceType: constvars.ResourceLocation,
		Name:         form.Name,
		Status:       form.Status,
		Address:      form.Address,
		Position:     form.Position,
	}
	location.Type = buildTypes(form.Types)
	if form.PhysicalType != "" {
		concept := utils.MakeCodeableConcept(constvars.FhirSystemLocationPhysicalType, form.PhysicalType, enums.LocationPhysicalType.Label(form.PhysicalType))
		location.PhysicalType = &concept
	}
	if form.ManagingOrganization != "" {
		reference := utils.BuildReference(constvars.ResourceOrganization, form.ManagingOrganization)
		location.ManagingOrganization = &reference
	}
	if form.Phone != "" {
		location.Telecom = utils.UpsertContactPoint(location.Telecom, constvars.FhirTelecomSystemPhone, form.Phone)
	}
	if form.Email != "" {
		location.Telecom = utils.UpsertContactPoint(location.Telecom, constvars.FhirTelecomSystemEmail, form.Email)
	}
	return location
}

func (c *LocationController) TransformEdit(form *requests.EditLocation) fhir_dto.Location {
	location := form.Location
	location.ResourceType = constvars.ResourceLocation
	if types := buildTypes(form.ProcessedTypes); types != nil {
		location.Type = types
	}
	if form.ProcessedPhysicalType != "" {
		concept := utils.MakeCodeableConcept(constvars.FhirSystemLocationPhysicalType, form.ProcessedPhysicalType, enums.LocationPhysicalType.Label(form.ProcessedPhysicalType))
		location.PhysicalType = &concept
	}
	if form.ProcessedManagingOrganization != "" {
		reference := utils.BuildReference(constvars.ResourceOrganization, form.ProcessedManagingOrganization)
		location.ManagingOrganization = &reference
	}
	return location
}

func buildTypes(codes []string) []fhir_dto.CodeableConcept {
	if len(codes) == 0 {
		return nil
	}
	concepts := make([]fhir_dto.CodeableConcept, len(codes))
	for i, code := range codes {
		concepts[i] = utils.MakeCodeableConcept(constvars.FhirSystemLocationType, code, "")
	}
	return concepts
}

package practitioner_roles

import (
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/enums"
	"agenda-care-service/internal/pkg/fhir_dto"
	"agenda-care-service/internal/pkg/utils"
)

type PractitionerRoleController struct{}

func NewPractitionerRoleController() *PractitionerRoleController {
	return &PractitionerRoleController{}
}

func (c *PractitionerRoleController) TransformShow(role fhir_dto.PractitionerRole) responses.PractitionerRoleShow {
	show := responses.PractitionerRoleShow{PractitionerRole: role}
	show.ProcessedPractitioner = utils.ParseReferenceID(role.Practitioner)
	show.ProcessedOrganization = utils.ParseReferenceID(role.Organization)
	for _, location := range role.Location {
		if id := utils.ParseReferenceID(&location); id != "" {
			show.ProcessedLocations = append(show.ProcessedLocations, id)
		}
	}
	show.ProcessedSpecialty = utils.CodePairs(role.Specialty)
	return show
}

func (c *PractitionerRoleController) TransformList(roles []fhir_dto.PractitionerRole) []responses.PractitionerRoleShow {
	shows := make([]responses.PractitionerRoleShow, len(roles))
	for i, role := range roles {
		shows[i] = c.TransformShow(role)
	}
	return shows
}

func (c *PractitionerRoleController) TransformCreate(form *requests.CreatePractitionerRole) fhir_dto.PractitionerRole {
	role := fhir_dto.PractitionerRole{
		ResourceType: constvars.ResourcePractitionerRole,
		Active:       form.Active,
	}
	applyRoleFields(&role, form.Practitioner, form.Organization, form.Locations, form.Specialties, form.AvailableTime)
	return role
}

func (c *PractitionerRoleController) TransformEdit(form *requests.EditPractitionerRole) fhir_dto.PractitionerRole {
	role := form.PractitionerRole
	role.ResourceType = constvars.ResourcePractitionerRole
	applyRoleFields(&role, form.ProcessedPractitioner, form.ProcessedOrganization, form.ProcessedLocations, form.ProcessedSpecialties, form.ProcessedAvailableTime)
	return role
}

func applyRoleFields(role *fhir_dto.PractitionerRole, practitioner, organization string, locations, specialties []string, availableTime []requests.AvailableTimeForm) {
	if practitioner != "" {
		reference := utils.BuildReference(constvars.ResourcePractitioner, practitioner)
		role.Practitioner = &reference
	}
	if organization != "" {
		reference := utils.BuildReference(constvars.ResourceOrganization, organization)
		role.Organization = &reference
	}
	if len(locations) > 0 {
		references := make([]fhir_dto.Reference, len(locations))
		for i, id := range locations {
			references[i] = utils.BuildReference(constvars.ResourceLocation, id)
		}
		role.Location = references
	}
	if len(specialties) > 0 {
		concepts := make([]fhir_dto.CodeableConcept, len(specialties))
		for i, code := range specialties {
			concepts[i] = utils.MakeCodeableConcept(constvars.FhirSystemSpecialty, code, enums.Specialty.Label(code))
		}
		role.Specialty = concepts
	}
	if len(availableTime) > 0 {
		// Instants picked in the UI are reduced to wall-clock strings on the
		// resource; the original instants are not retained.
		entries := make([]fhir_dto.AvailableTime, len(availableTime))
		for i, window := range availableTime {
			entries[i] = fhir_dto.AvailableTime{
				DaysOfWeek:         window.DaysOfWeek,
				AvailableStartTime: utils.FormatClockTime(window.Start),
				AvailableEndTime:   utils.FormatClockTime(window.End),
			}
		}
		role.AvailableTime = entries
	}
}

package schedules

import (
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/enums"
	"agenda-care-service/internal/pkg/fhir_dto"
	"agenda-care-service/internal/pkg/utils"
)

type ScheduleController struct{}

func NewScheduleController() *ScheduleController {
	return &ScheduleController{}
}

func (c *ScheduleController) TransformShow(schedule fhir_dto.Schedule) responses.ScheduleShow {
	show := responses.ScheduleShow{Schedule: schedule}
	if len(schedule.Actor) > 0 {
		show.ProcessedActor = utils.ParseReferenceID(&schedule.Actor[0])
	}
	show.ProcessedServiceCategory = utils.CodePairs(schedule.ServiceCategory)
	show.ProcessedServiceType = utils.CodePairs(schedule.ServiceType)
	show.ProcessedSpecialty = utils.CodePairs(schedule.Specialty)
	if schedule.PlanningHorizon != nil {
		show.ProcessedPlanningStart = schedule.PlanningHorizon.Start
		show.ProcessedPlanningEnd = schedule.PlanningHorizon.End
	}
	return show
}

func (c *ScheduleController) TransformList(schedules []fhir_dto.Schedule) []responses.ScheduleShow {
	shows := make([]responses.ScheduleShow, len(schedules))
	for i, schedule := range schedules {
		shows[i] = c.TransformShow(schedule)
	}
	return shows
}

// TransformCreate wraps scalar form values into their wire shapes. A field
// already sent as a list is left completely untransformed: that matches the
// deployed behavior the frontends rely on, even though it means list-valued
// actors never become References. Flagged for product clarification, kept
// verbatim until then.
func (c *ScheduleController) TransformCreate(form *requests.CreateSchedule) fhir_dto.Schedule {
	schedule := fhir_dto.Schedule{
		ResourceType: constvars.ResourceSchedule,
		Comment:      form.Comment,
		Active:       form.Active,
	}
	if !form.Actor.IsList && form.Actor.Scalar() != "" {
		schedule.Actor = []fhir_dto.Reference{utils.BuildReference(constvars.ResourcePractitioner, form.Actor.Scalar())}
	}
	if !form.ServiceCategory.IsList && form.ServiceCategory.Scalar() != "" {
		schedule.ServiceCategory = buildConcepts([]string{form.ServiceCategory.Scalar()}, constvars.FhirSystemServiceCategory, enums.ServiceCategory)
	}
	if !form.ServiceType.IsList && form.ServiceType.Scalar() != "" {
		schedule.ServiceType = buildConcepts([]string{form.ServiceType.Scalar()}, constvars.FhirSystemServiceType, enums.ServiceType)
	}
	if !form.Specialty.IsList && form.Specialty.Scalar() != "" {
		schedule.Specialty = buildConcepts([]string{form.Specialty.Scalar()}, constvars.FhirSystemSpecialty, enums.Specialty)
	}
	if form.PlanningStart != "" || form.PlanningEnd != "" {
		schedule.PlanningHorizon = &fhir_dto.Period{Start: form.PlanningStart, End: form.PlanningEnd}
	}
	return schedule
}

// TransformEdit always wraps the scalar processed actor; the list guard only
// exists on the create side.
func (c *ScheduleController) TransformEdit(form *requests.EditSchedule) fhir_dto.Schedule {
	schedule := form.Schedule
	schedule.ResourceType = constvars.ResourceSchedule
	if form.ProcessedActor != "" {
		schedule.Actor = []fhir_dto.Reference{utils.BuildReference(constvars.ResourcePractitioner, form.ProcessedActor)}
	}
	if len(form.ProcessedServiceCategory) > 0 {
		schedule.ServiceCategory = buildConcepts(form.ProcessedServiceCategory, constvars.FhirSystemServiceCategory, enums.ServiceCategory)
	}
	if len(form.ProcessedServiceType) > 0 {
		schedule.ServiceType = buildConcepts(form.ProcessedServiceType, constvars.FhirSystemServiceType, enums.ServiceType)
	}
	if len(form.ProcessedSpecialty) > 0 {
		schedule.Specialty = buildConcepts(form.ProcessedSpecialty, constvars.FhirSystemSpecialty, enums.Specialty)
	}
	if form.ProcessedPlanningStart != "" || form.ProcessedPlanningEnd != "" {
		schedule.PlanningHorizon = &fhir_dto.Period{Start: form.ProcessedPlanningStart, End: form.ProcessedPlanningEnd}
	}
	return schedule
}

func buildConcepts(codes []string, system string, enum enums.Enum) []fhir_dto.CodeableConcept {
	concepts := make([]fhir_dto.CodeableConcept, len(codes))
	for i, code := range codes {
		concepts[i] = utils.MakeCodeableConcept(system, code, enum.Label(code))
	}
	return concepts
}

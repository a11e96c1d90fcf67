package slots

import (
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/enums"
	"agenda-care-service/internal/pkg/fhir_dto"
	"agenda-care-service/internal/pkg/utils"
)

type SlotController struct{}

func NewSlotController() *SlotController {
	return &SlotController{}
}

func (c *SlotController) TransformShow(slot fhir_dto.Slot) responses.SlotShow {
	show := responses.SlotShow{Slot: slot}
	show.ProcessedSchedule = utils.ParseReferenceID(slot.Schedule)
	show.ProcessedServiceCategory = utils.CodePairs(slot.ServiceCategory)
	show.ProcessedStatus = enums.SlotStatus.Label(slot.Status)
	return show
}

func (c *SlotController) TransformList(slots []fhir_dto.Slot) []responses.SlotShow {
	shows := make([]responses.SlotShow, len(slots))
	for i, slot := range slots {
		shows[i] = c.TransformShow(slot)
	}
	return shows
}

func (c *SlotController) TransformCreate(form *requests.CreateSlot) fhir_dto.Slot {
	slot := fhir_dto.Slot{
		ResourceType: constvars.ResourceSlot,
		Status:       form.Status,
		Start:        form.Start,
		End:          form.End,
		Comment:      form.Comment,
	}
	if form.Schedule != "" {
		reference := utils.BuildReference(constvars.ResourceSchedule, form.Schedule)
		slot.Schedule = &reference
	}
	slot.ServiceCategory = buildCategories(form.ServiceCategory)
	return slot
}

func (c *SlotController) TransformEdit(form *requests.EditSlot) fhir_dto.Slot {
	slot := form.Slot
	slot.ResourceType = constvars.ResourceSlot
	if form.ProcessedSchedule != "" {
		reference := utils.BuildReference(constvars.ResourceSchedule, form.ProcessedSchedule)
		slot.Schedule = &reference
	}
	if categories := buildCategories(form.ProcessedServiceCategory); categories != nil {
		slot.ServiceCategory = categories
	}
	return slot
}

func buildCategories(codes []string) []fhir_dto.CodeableConcept {
	if len(codes) == 0 {
		return nil
	}
	concepts := make([]fhir_dto.CodeableConcept, len(codes))
	for i, code := range codes {
		concepts[i] = utils.MakeCodeableConcept(constvars.FhirSystemServiceCategory, code, enums.ServiceCategory.Label(code))
	}
	return concepts
}

package appointments

import (
	"context"
	"strings"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/enums"
	"agenda-care-service/internal/pkg/fhir_dto"
	"agenda-care-service/internal/pkg/utils"
)

// AppointmentController is the one controller whose transform can fail: the
// create/edit path fetches the referenced Slot to source start/end. The
// fetch error propagates unchanged.
type AppointmentController struct {
	slots contracts.SlotFhirClient
}

func NewAppointmentController(slots contracts.SlotFhirClient) *AppointmentController {
	return &AppointmentController{slots: slots}
}

func (c *AppointmentController) TransformShow(appointment fhir_dto.Appointment) responses.AppointmentShow {
	show := responses.AppointmentShow{Appointment: appointment}
	for _, participant := range appointment.Participant {
		if participant.Actor == nil {
			continue
		}
		switch {
		case strings.HasPrefix(participant.Actor.Reference, constvars.ResourcePractitioner+"/"):
			show.ProcessedPractitioner = utils.ParseReferenceID(participant.Actor)
		case strings.HasPrefix(participant.Actor.Reference, constvars.ResourcePatient+"/"):
			show.ProcessedPatient = utils.ParseReferenceID(participant.Actor)
		}
	}
	for _, slot := range appointment.Slot {
		if id := utils.ParseReferenceID(&slot); id != "" {
			show.ProcessedSlot = append(show.ProcessedSlot, id)
		}
	}
	show.ProcessedSpecialty = utils.CodePairs(appointment.Specialty)
	show.ProcessedStatus = enums.AppointmentStatus.Label(appointment.Status)
	return show
}

func (c *AppointmentController) TransformList(appointments []fhir_dto.Appointment) []responses.AppointmentShow {
	shows := make([]responses.AppointmentShow, len(appointments))
	for i, appointment := range appointments {
		shows[i] = c.TransformShow(appointment)
	}
	return shows
}

// TransformCreateAndEdit backs both the creation and the edit form. The
// participant list is rebuilt practitioner first, then patient; absent ones
// are omitted. Appointment time is always sourced from the referenced Slot,
// never entered independently.
func (c *AppointmentController) TransformCreateAndEdit(ctx context.Context, form *requests.AppointmentForm) (fhir_dto.Appointment, error) {
	appointment := form.Appointment
	appointment.ResourceType = constvars.ResourceAppointment

	if form.ProcessedPractitioner != "" || form.ProcessedPatient != "" {
		participants := make([]fhir_dto.Participant, 0, 2)
		if form.ProcessedPractitioner != "" {
			reference := utils.BuildReference(constvars.ResourcePractitioner, form.ProcessedPractitioner)
			participants = append(participants, fhir_dto.Participant{Actor: &reference})
		}
		if form.ProcessedPatient != "" {
			reference := utils.BuildReference(constvars.ResourcePatient, form.ProcessedPatient)
			participants = append(participants, fhir_dto.Participant{Actor: &reference})
		}
		appointment.Participant = participants
	}

	if len(form.ProcessedSpecialty) > 0 {
		concepts := make([]fhir_dto.CodeableConcept, len(form.ProcessedSpecialty))
		for i, code := range form.ProcessedSpecialty {
			concepts[i] = utils.MakeCodeableConcept(constvars.FhirSystemSpecialty, code, enums.Specialty.Label(code))
		}
		appointment.Specialty = concepts
	}

	if !form.ProcessedSlot.Empty() {
		slotID := form.ProcessedSlot.Values[0]
		appointment.Slot = []fhir_dto.Reference{utils.BuildReference(constvars.ResourceSlot, slotID)}
		slot, err := c.slots.FindSlotByID(ctx, slotID)
		if err != nil {
			return fhir_dto.Appointment{}, err
		}
		appointment.Start = slot.Start
		appointment.End = slot.End
	}

	return appointment, nil
}

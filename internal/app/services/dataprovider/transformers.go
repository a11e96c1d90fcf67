package dataprovider

import (
	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/app/services/core/appointments"
	"agenda-care-service/internal/app/services/core/locations"
	"agenda-care-service/internal/app/services/core/organizations"
	"agenda-care-service/internal/app/services/core/patients"
	"agenda-care-service/internal/app/services/core/practitioner_roles"
	"agenda-care-service/internal/app/services/core/schedules"
	"agenda-care-service/internal/app/services/core/slots"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

// typedTransformer bridges a resource controller's typed transforms to the
// raw-JSON surface of the data provider.
type typedTransformer[Wire any] struct {
	resourceType string
	show         func(Wire) any
}

func (t typedTransformer[Wire]) TransformShow(raw json.RawMessage) (any, error) {
	var wire Wire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, exceptions.ErrFHIRDecode(err, t.resourceType)
	}
	return t.show(wire), nil
}

func (t typedTransformer[Wire]) TransformList(raws []json.RawMessage) (any, error) {
	shows := make([]any, 0, len(raws))
	for _, raw := range raws {
		var wire Wire
		if err := json.Unmarshal(raw, &wire); err != nil {
			return nil, exceptions.ErrFHIRDecode(err, t.resourceType)
		}
		shows = append(shows, t.show(wire))
	}
	return shows, nil
}

// DefaultTransformers registers the seven controlled resource types. Anything
// else (Practitioner included) passes through the provider untransformed.
func DefaultTransformers(appointmentController *appointments.AppointmentController) map[string]contracts.ResourceTransformer {
	patientController := patients.NewPatientController()
	organizationController := organizations.NewOrganizationController()
	locationController := locations.NewLocationController()
	roleController := practitioner_roles.NewPractitionerRoleController()
	scheduleController := schedules.NewScheduleController()
	slotController := slots.NewSlotController()

	return map[string]contracts.ResourceTransformer{
		constvars.ResourcePatient: typedTransformer[fhir_dto.Patient]{
			resourceType: constvars.ResourcePatient,
			show:         func(wire fhir_dto.Patient) any { return patientController.TransformShow(wire) },
		},
		constvars.ResourceOrganization: typedTransformer[fhir_dto.Organization]{
			resourceType: constvars.ResourceOrganization,
			show:         func(wire fhir_dto.Organization) any { return organizationController.TransformShow(wire) },
		},
		constvars.ResourceLocation: typedTransformer[fhir_dto.Location]{
			resourceType: constvars.ResourceLocation,
			show:         func(wire fhir_dto.Location) any { return locationController.TransformShow(wire) },
		},
		constvars.ResourcePractitionerRole: typedTransformer[fhir_dto.PractitionerRole]{
			resourceType: constvars.ResourcePractitionerRole,
			show:         func(wire fhir_dto.PractitionerRole) any { return roleController.TransformShow(wire) },
		},
		constvars.ResourceSchedule: typedTransformer[fhir_dto.Schedule]{
			resourceType: constvars.ResourceSchedule,
			show:         func(wire fhir_dto.Schedule) any { return scheduleController.TransformShow(wire) },
		},
		constvars.ResourceSlot: typedTransformer[fhir_dto.Slot]{
			resourceType: constvars.ResourceSlot,
			show:         func(wire fhir_dto.Slot) any { return slotController.TransformShow(wire) },
		},
		constvars.ResourceAppointment: typedTransformer[fhir_dto.Appointment]{
			resourceType: constvars.ResourceAppointment,
			show:         func(wire fhir_dto.Appointment) any { return appointmentController.TransformShow(wire) },
		},
	}
}

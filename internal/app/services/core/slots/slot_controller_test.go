package slots

import (
	"testing"

	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotTransformCreate(t *testing.T) {
	controller := NewSlotController()

	t.Run("Schedule Becomes A Single Reference", func(t *testing.T) {
		slot := controller.TransformCreate(&requests.CreateSlot{
			Schedule:        "sch-1",
			Status:          constvars.FhirSlotStatusFree,
			Start:           "2024-03-04T09:00:00Z",
			End:             "2024-03-04T09:30:00Z",
			ServiceCategory: []string{"17", "34"},
		})

		require.NotNil(t, slot.Schedule)
		assert.Equal(t, "Schedule/sch-1", slot.Schedule.Reference)
		require.Len(t, slot.ServiceCategory, 2)
		assert.Equal(t, "17", slot.ServiceCategory[0].Coding[0].Code)
		assert.Equal(t, "Saúde Mental", slot.ServiceCategory[1].Coding[0].Display)
	})

	t.Run("Absent Schedule Stays Absent", func(t *testing.T) {
		slot := controller.TransformCreate(&requests.CreateSlot{Status: constvars.FhirSlotStatusBusy})
		assert.Nil(t, slot.Schedule)
		assert.Nil(t, slot.ServiceCategory)
	})
}

func TestSlotTransformShow(t *testing.T) {
	controller := NewSlotController()

	t.Run("Flattens Schedule And Status", func(t *testing.T) {
		scheduleRef := fhir_dto.Reference{Reference: "Schedule/sch-1"}
		show := controller.TransformShow(fhir_dto.Slot{
			ResourceType: constvars.ResourceSlot,
			Schedule:     &scheduleRef,
			Status:       constvars.FhirSlotStatusFree,
		})
		assert.Equal(t, "sch-1", show.ProcessedSchedule)
		assert.Equal(t, "Livre", show.ProcessedStatus)
	})

	t.Run("Unknown Status Flattens To Empty", func(t *testing.T) {
		show := controller.TransformShow(fhir_dto.Slot{Status: "weird"})
		assert.Empty(t, show.ProcessedStatus)
	})
}

func TestSlotTransformEdit(t *testing.T) {
	controller := NewSlotController()

	t.Run("Show Then Edit Without Changes Round-Trips", func(t *testing.T) {
		scheduleRef := fhir_dto.Reference{Reference: "Schedule/sch-1"}
		original := fhir_dto.Slot{
			ResourceType: constvars.ResourceSlot,
			ID:           "slot-1",
			Schedule:     &scheduleRef,
			Status:       constvars.FhirSlotStatusFree,
			Start:        "2024-03-04T09:00:00Z",
		}
		edited := controller.TransformEdit(&requests.EditSlot{Slot: original})
		assert.Equal(t, original, edited)
	})

	t.Run("Processed Schedule Rebuilds The Reference", func(t *testing.T) {
		edited := controller.TransformEdit(&requests.EditSlot{
			Slot:              fhir_dto.Slot{ID: "slot-1"},
			ProcessedSchedule: "sch-9",
		})
		assert.Equal(t, "Schedule/sch-9", edited.Schedule.Reference)
	})
}

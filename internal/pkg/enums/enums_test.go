package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoices(t *testing.T) {
	t.Run("Preserves Declaration Order", func(t *testing.T) {
		choices := Gender.Choices()

		assert.Len(t, choices, 4)
		assert.Equal(t, Choice{ID: "male", Name: "Masculino"}, choices[0])
		assert.Equal(t, Choice{ID: "female", Name: "Feminino"}, choices[1])
		assert.Equal(t, Choice{ID: "other", Name: "Outro"}, choices[2])
		assert.Equal(t, Choice{ID: "unknown", Name: "Desconhecido"}, choices[3])
	})

	t.Run("One Entry Per Code", func(t *testing.T) {
		for _, enum := range []Enum{Gender, SlotStatus, AppointmentStatus, Specialty, ServiceCategory, ServiceType, OrganizationType, LocationPhysicalType, DaysOfWeek, UserRole} {
			seen := make(map[string]bool)
			for _, choice := range enum {
				assert.False(t, seen[choice.ID], "duplicate code %s", choice.ID)
				assert.NotEmpty(t, choice.Name)
				seen[choice.ID] = true
			}
		}
	})

	t.Run("Returns Defensive Copy", func(t *testing.T) {
		choices := SlotStatus.Choices()
		choices[0].Name = "changed"

		assert.Equal(t, "Livre", SlotStatus.Label("free"))
	})
}

func TestLabel(t *testing.T) {
	t.Run("Known Code", func(t *testing.T) {
		assert.Equal(t, "Marcada", AppointmentStatus.Label("booked"))
		assert.Equal(t, "Cardiologia", Specialty.Label("002"))
	})

	t.Run("Unknown Code Yields Empty String", func(t *testing.T) {
		assert.Equal(t, "", AppointmentStatus.Label("nope"))
		assert.Equal(t, "", Specialty.Label(""))
	})
}

func TestContains(t *testing.T) {
	assert.True(t, DaysOfWeek.Contains("mon"))
	assert.False(t, DaysOfWeek.Contains("monday"))
}

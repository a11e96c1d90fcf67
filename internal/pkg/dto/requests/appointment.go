package requests

import "agenda-care-service/internal/pkg/fhir_dto"

// AppointmentForm backs both the creation and the edit form; the appointment
// controller has a single transform for the two.
type AppointmentForm struct {
	fhir_dto.Appointment
	ProcessedPractitioner string       `json:"processedPractitioner,omitempty"`
	ProcessedPatient      string       `json:"processedPatient,omitempty"`
	ProcessedSlot         StringOrList `json:"processedSlot,omitempty"`
	ProcessedSpecialty    []string     `json:"processedSpecialty,omitempty"`
}

package requests

import "agenda-care-service/internal/pkg/fhir_dto"

// AvailableTimeForm carries one weekly availability window; start and end are
// instants picked in the UI, reduced to wall-clock strings on the resource.
type AvailableTimeForm struct {
	DaysOfWeek []string `json:"daysOfWeek,omitempty"`
	Start      string   `json:"availableStartTime,omitempty"`
	End        string   `json:"availableEndTime,omitempty"`
}

type CreatePractitionerRole struct {
	Practitioner  string              `json:"practitioner,omitempty"`
	Organization  string              `json:"organization,omitempty"`
	Locations     []string            `json:"location,omitempty"`
	Specialties   []string            `json:"specialty,omitempty"`
	AvailableTime []AvailableTimeForm `json:"availableTime,omitempty"`
	Active        *bool               `json:"active,omitempty"`
}

type EditPractitionerRole struct {
	fhir_dto.PractitionerRole
	ProcessedPractitioner  string              `json:"processedPractitioner,omitempty"`
	ProcessedOrganization  string              `json:"processedOrganization,omitempty"`
	ProcessedLocations     []string            `json:"processedLocation,omitempty"`
	ProcessedSpecialties   []string            `json:"processedSpecialty,omitempty"`
	ProcessedAvailableTime []AvailableTimeForm `json:"processedAvailableTime,omitempty"`
}

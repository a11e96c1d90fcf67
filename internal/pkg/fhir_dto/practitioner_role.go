package fhir_dto

type PractitionerRole struct {
	ResourceType  string            `json:"resourceType"`
	ID            string            `json:"id,omitempty"`
	Meta          *Meta             `json:"meta,omitempty"`
	Identifier    []Identifier      `json:"identifier,omitempty"`
	Active        *bool             `json:"active,omitempty"`
	Period        *Period           `json:"period,omitempty"`
	Practitioner  *Reference        `json:"practitioner,omitempty"`
	Organization  *Reference        `json:"organization,omitempty"`
	Location      []Reference       `json:"location,omitempty"`
	Specialty     []CodeableConcept `json:"specialty,omitempty"`
	Code          []CodeableConcept `json:"code,omitempty"`
	Telecom       []ContactPoint    `json:"telecom,omitempty"`
	AvailableTime []AvailableTime   `json:"availableTime,omitempty"`
}

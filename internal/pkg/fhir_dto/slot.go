package fhir_dto

type Slot struct {
	ResourceType    string            `json:"resourceType"`
	ID              string            `json:"id,omitempty"`
	Meta            *Meta             `json:"meta,omitempty"`
	Identifier      []Identifier      `json:"identifier,omitempty"`
	ServiceCategory []CodeableConcept `json:"serviceCategory,omitempty"`
	Schedule        *Reference        `json:"schedule,omitempty"`
	Status          string            `json:"status,omitempty"`
	Start           string            `json:"start,omitempty"`
	End             string            `json:"end,omitempty"`
	Overbooked      bool              `json:"overbooked,omitempty"`
	Comment         string            `json:"comment,omitempty"`
}

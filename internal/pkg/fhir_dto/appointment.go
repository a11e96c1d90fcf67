package fhir_dto

type Appointment struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Meta         *Meta             `json:"meta,omitempty"`
	Identifier   []Identifier      `json:"identifier,omitempty"`
	Status       string            `json:"status,omitempty"`
	Specialty    []CodeableConcept `json:"specialty,omitempty"`
	Description  string            `json:"description,omitempty"`
	Start        string            `json:"start,omitempty"`
	End          string            `json:"end,omitempty"`
	Slot         []Reference       `json:"slot,omitempty"`
	Comment      string            `json:"comment,omitempty"`
	Participant  []Participant     `json:"participant,omitempty"`
}

type Participant struct {
	Type     []CodeableConcept `json:"type,omitempty"`
	Actor    *Reference        `json:"actor,omitempty"`
	Required string            `json:"required,omitempty"`
	Status   string            `json:"status,omitempty"`
}

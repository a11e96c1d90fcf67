package requests

import "agenda-care-service/internal/pkg/fhir_dto"

type CreateSlot struct {
	Schedule        string   `json:"schedule,omitempty"`
	Status          string   `json:"status,omitempty"`
	Start           string   `json:"start,omitempty"`
	End             string   `json:"end,omitempty"`
	ServiceCategory []string `json:"serviceCategory,omitempty"`
	Comment         string   `json:"comment,omitempty"`
}

type EditSlot struct {
	fhir_dto.Slot
	ProcessedSchedule        string   `json:"processedSchedule,omitempty"`
	ProcessedServiceCategory []string `json:"processedServiceCategory,omitempty"`
}

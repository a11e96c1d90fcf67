package requests

import "agenda-care-service/internal/pkg/fhir_dto"

type CreateSchedule struct {
	Actor           StringOrList `json:"actor,omitempty"`
	ServiceCategory StringOrList `json:"serviceCategory,omitempty"`
	ServiceType     StringOrList `json:"serviceType,omitempty"`
	Specialty       StringOrList `json:"specialty,omitempty"`
	PlanningStart   string       `json:"planningStart,omitempty"`
	PlanningEnd     string       `json:"planningEnd,omitempty"`
	Comment         string       `json:"comment,omitempty"`
	Active          *bool        `json:"active,omitempty"`
}

type EditSchedule struct {
	fhir_dto.Schedule
	ProcessedActor           string   `json:"processedActor,omitempty"`
	ProcessedServiceCategory []string `json:"processedServiceCategory,omitempty"`
	ProcessedServiceType     []string `json:"processedServiceType,omitempty"`
	ProcessedSpecialty       []string `json:"processedSpecialty,omitempty"`
	ProcessedPlanningStart   string   `json:"processedPlanningStart,omitempty"`
	ProcessedPlanningEnd     string   `json:"processedPlanningEnd,omitempty"`
}

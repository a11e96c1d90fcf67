package requests

import "agenda-care-service/internal/pkg/fhir_dto"

type CreateLocation struct {
	Name                 string             `json:"name,omitempty"`
	Status               string             `json:"status,omitempty"`
	Types                []string           `json:"type,omitempty"`
	PhysicalType         string             `json:"physicalType,omitempty"`
	ManagingOrganization string             `json:"managingOrganization,omitempty"`
	Phone                string             `json:"phone,omitempty"`
	Email                string             `json:"email,omitempty" validate:"omitempty,email"`
	Address              *fhir_dto.Address  `json:"address,omitempty"`
	Position             *fhir_dto.Position `json:"position,omitempty"`
}

type EditLocation struct {
	fhir_dto.Location
	ProcessedTypes                []string `json:"processedType,omitempty"`
	ProcessedPhysicalType         string   `json:"processedPhysicalType,omitempty"`
	ProcessedManagingOrganization string   `json:"processedManagingOrganization,omitempty"`
}

package requests

import "agenda-care-service/internal/pkg/fhir_dto"

type CreateOrganization struct {
	Name        string   `json:"name,omitempty"`
	Types       []string `json:"type,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	AddressLine string   `json:"addressLine,omitempty"`
	City        string   `json:"city,omitempty"`
	PostalCode  string   `json:"postalCode,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

type EditOrganization struct {
	fhir_dto.Organization
	ProcessedTypes []string `json:"processedType,omitempty"`
	ProcessedPhone string   `json:"processedPhone,omitempty"`
	ProcessedEmail string   `json:"processedEmail,omitempty"`
}

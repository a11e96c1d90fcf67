package requests

import "agenda-care-service/internal/pkg/fhir_dto"

// CreatePatient is the flat creation form. Absent optional fields stay absent
// on the resulting resource.
type CreatePatient struct {
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Gender        string `json:"gender,omitempty"`
	BirthDate     string `json:"birthDate,omitempty"`
	AddressLine   string `json:"addressLine,omitempty"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Photo         string `json:"photo,omitempty"`
	PhotoType     string `json:"photoType,omitempty"`
	Active        *bool  `json:"active,omitempty"`
	SNSIdentifier *string `json:"snsIdentifier,omitempty"`
}

// EditPatient is the edit form's working state: the resource as loaded plus
// the flattened processed fields the widgets bind to.
type EditPatient struct {
	fhir_dto.Patient
	ProcessedFirstName     string  `json:"processedFirstName,omitempty"`
	ProcessedLastName      string  `json:"processedLastName,omitempty"`
	ProcessedPhone         string  `json:"processedPhone,omitempty"`
	ProcessedEmail         string  `json:"processedEmail,omitempty"`
	ProcessedAddressLine   string  `json:"processedAddressLine,omitempty"`
	ProcessedCity          string  `json:"processedCity,omitempty"`
	ProcessedPostalCode    string  `json:"processedPostalCode,omitempty"`
	ProcessedPhoto         string  `json:"processedPhoto,omitempty"`
	ProcessedSNSIdentifier *string `json:"processedSnsIdentifier,omitempty"`
}

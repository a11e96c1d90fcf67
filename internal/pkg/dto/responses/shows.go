package responses

import (
	"agenda-care-service/internal/pkg/fhir_dto"
)

// Show records are the list/detail shapes the admin frontend consumes: the
// wire resource untouched, with flattened processed fields alongside it.

type PatientShow struct {
	fhir_dto.Patient
	ProcessedName          string `json:"processedName,omitempty"`
	ProcessedFirstName     string `json:"processedFirstName,omitempty"`
	ProcessedLastName      string `json:"processedLastName,omitempty"`
	ProcessedPhone         string `json:"processedPhone,omitempty"`
	ProcessedEmail         string `json:"processedEmail,omitempty"`
	ProcessedAddressLine   string `json:"processedAddressLine,omitempty"`
	ProcessedCity          string `json:"processedCity,omitempty"`
	ProcessedPostalCode    string `json:"processedPostalCode,omitempty"`
	ProcessedPhoto         string `json:"processedPhoto,omitempty"`
	ProcessedSNSIdentifier string `json:"processedSnsIdentifier,omitempty"`
}

type OrganizationShow struct {
	fhir_dto.Organization
	ProcessedType  []fhir_dto.CodeDisplay `json:"processedType,omitempty"`
	ProcessedPhone string                 `json:"processedPhone,omitempty"`
	ProcessedEmail string                 `json:"processedEmail,omitempty"`
}

type LocationShow struct {
	fhir_dto.Location
	ProcessedType                 []fhir_dto.CodeDisplay `json:"processedType,omitempty"`
	ProcessedPhysicalType         string                 `json:"processedPhysicalType,omitempty"`
	ProcessedManagingOrganization string                 `json:"processedManagingOrganization,omitempty"`
}

type PractitionerRoleShow struct {
	fhir_dto.PractitionerRole
	ProcessedPractitioner string                 `json:"processedPractitioner,omitempty"`
	ProcessedOrganization string                 `json:"processedOrganization,omitempty"`
	ProcessedLocations    []string               `json:"processedLocation,omitempty"`
	ProcessedSpecialty    []fhir_dto.CodeDisplay `json:"processedSpecialty,omitempty"`
}

type ScheduleShow struct {
	fhir_dto.Schedule
	ProcessedActor           string                 `json:"processedActor,omitempty"`
	ProcessedServiceCategory []fhir_dto.CodeDisplay `json:"processedServiceCategory,omitempty"`
	ProcessedServiceType     []fhir_dto.CodeDisplay `json:"processedServiceType,omitempty"`
	ProcessedSpecialty       []fhir_dto.CodeDisplay `json:"processedSpecialty,omitempty"`
	ProcessedPlanningStart   string                 `json:"processedPlanningStart,omitempty"`
	ProcessedPlanningEnd     string                 `json:"processedPlanningEnd,omitempty"`
}

type SlotShow struct {
	fhir_dto.Slot
	ProcessedSchedule        string                 `json:"processedSchedule,omitempty"`
	ProcessedServiceCategory []fhir_dto.CodeDisplay `json:"processedServiceCategory,omitempty"`
	ProcessedStatus          string                 `json:"processedStatus,omitempty"`
}

type AppointmentShow struct {
	fhir_dto.Appointment
	ProcessedPractitioner string                 `json:"processedPractitioner,omitempty"`
	ProcessedPatient      string                 `json:"processedPatient,omitempty"`
	ProcessedSlot         []string               `json:"processedSlot,omitempty"`
	ProcessedSpecialty    []fhir_dto.CodeDisplay `json:"processedSpecialty,omitempty"`
	ProcessedStatus       string                 `json:"processedStatus,omitempty"`
}

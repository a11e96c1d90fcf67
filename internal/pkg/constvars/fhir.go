package constvars

const (
	ResourcePatient          = "Patient"
	ResourcePractitioner     = "Practitioner"
	ResourcePractitionerRole = "PractitionerRole"
	ResourceSchedule         = "Schedule"
	ResourceSlot             = "Slot"
	ResourceAppointment      = "Appointment"
	ResourceOrganization     = "Organization"
	ResourceLocation         = "Location"
	ResourceBundle           = "Bundle"
)

const (
	FhirSlotStatusFree           = "free"
	FhirSlotStatusBusy           = "busy"
	FhirSlotStatusEnteredInError = "entered-in-error"
)

const (
	FhirAppointmentStatusProposed  = "proposed"
	FhirAppointmentStatusPending   = "pending"
	FhirAppointmentStatusBooked    = "booked"
	FhirAppointmentStatusArrived   = "arrived"
	FhirAppointmentStatusFulfilled = "fulfilled"
	FhirAppointmentStatusCancelled = "cancelled"
	FhirAppointmentStatusNoShow    = "noshow"
)

const (
	FhirTelecomSystemPhone = "phone"
	FhirTelecomSystemEmail = "email"
)

const (
	FhirSystemServiceCategory      = "http://terminology.hl7.org/CodeSystem/service-category"
	FhirSystemServiceType          = "http://terminology.hl7.org/CodeSystem/service-type"
	FhirSystemSpecialty            = "http://terminology.hl7.org/CodeSystem/specialty"
	FhirSystemOrganizationType     = "http://terminology.hl7.org/CodeSystem/organization-type"
	FhirSystemLocationPhysicalType = "http://terminology.hl7.org/CodeSystem/location-physical-type"
	FhirSystemLocationType         = "http://terminology.hl7.org/CodeSystem/v3-RoleCode"
)

// Business identifier system for the national health number. The value is the
// wire contract agreed with the resource API, misspelling included.
const FhirIdentifierSystemHealthID = "heathId"

// Clock format written into PractitionerRole.availableTime entries.
const FhirAvailableTimeLayout = "15:04"

package patients

import (
	"strings"

	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/dto/responses"
	"agenda-care-service/internal/pkg/fhir_dto"
	"agenda-care-service/internal/pkg/utils"
)

// PatientController maps between the flat admin forms and the nested Patient
// resource. Transforms never fail: absent nested data flattens to zero values
// and absent form inputs leave the resource untouched.
type PatientController struct{}

func NewPatientController() *PatientController {
	return &PatientController{}
}

func (c *PatientController) TransformShow(patient fhir_dto.Patient) responses.PatientShow {
	show := responses.PatientShow{Patient: patient}
	show.ProcessedName = utils.GetFullName(patient.Name)
	if len(patient.Name) > 0 {
		show.ProcessedFirstName = strings.Join(patient.Name[0].Given, " ")
		show.ProcessedLastName = patient.Name[0].Family
	}
	show.ProcessedEmail, show.ProcessedPhone = utils.GetEmailAndPhone(patient.Telecom)
	if len(patient.Address) > 0 {
		show.ProcessedAddressLine = strings.Join(patient.Address[0].Line, " ")
		show.ProcessedCity = patient.Address[0].City
		show.ProcessedPostalCode = patient.Address[0].PostalCode
	}
	show.ProcessedPhoto = utils.GetPhotoSource(patient.Photo)
	for _, identifier := range patient.Identifier {
		if identifier.System == constvars.FhirIdentifierSystemHealthID {
			show.ProcessedSNSIdentifier = identifier.Value
			break
		}
	}
	return show
}

func (c *PatientController) TransformList(patients []fhir_dto.Patient) []responses.PatientShow {
	shows := make([]responses.PatientShow, len(patients))
	for i, patient := range patients {
		shows[i] = c.TransformShow(patient)
	}
	return shows
}

func (c *PatientController) TransformCreate(form *requests.CreatePatient) fhir_dto.Patient {
	patient := fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Gender:       form.Gender,
		BirthDate:    form.BirthDate,
		Active:       form.Active,
	}
	if form.FirstName != "" || form.LastName != "" {
		name := fhir_dto.HumanName{Family: form.LastName}
		if form.FirstName != "" {
			name.Given = []string{form.FirstName}
		}
		patient.Name = []fhir_dto.HumanName{name}
	}
	if form.Phone != "" {
		patient.Telecom = utils.UpsertContactPoint(patient.Telecom, constvars.FhirTelecomSystemPhone, form.Phone)
	}
	if form.Email != "" {
		patient.Telecom = utils.UpsertContactPoint(patient.Telecom, constvars.FhirTelecomSystemEmail, form.Email)
	}
	if form.AddressLine != "" || form.City != "" || form.PostalCode != "" {
		address := fhir_dto.Address{City: form.City, PostalCode: form.PostalCode}
		if form.AddressLine != "" {
			address.Line = []string{form.AddressLine}
		}
		patient.Address = []fhir_dto.Address{address}
	}
	if form.Photo != "" {
		patient.Photo = []fhir_dto.Attachment{{Data: form.Photo, ContentType: form.PhotoType}}
	}
	if form.SNSIdentifier != nil && *form.SNSIdentifier != "" {
		patient.Identifier = []fhir_dto.Identifier{{
			System: constvars.FhirIdentifierSystemHealthID,
			Value:  *form.SNSIdentifier,
		}}
	}
	return patient
}

// TransformEdit rebuilds the nested fields from the edit form's processed
// working state. The result is the typed resource alone, so no processed
// field survives serialization.
func (c *PatientController) TransformEdit(form *requests.EditPatient) fhir_dto.Patient {
	patient := form.Patient
	patient.ResourceType = constvars.ResourcePatient
	if form.ProcessedFirstName != "" || form.ProcessedLastName != "" {
		name := fhir_dto.HumanName{Family: form.ProcessedLastName}
		if form.ProcessedFirstName != "" {
			name.Given = []string{form.ProcessedFirstName}
		}
		patient.Name = []fhir_dto.HumanName{name}
	}
	if form.ProcessedPhone != "" {
		patient.Telecom = utils.UpsertContactPoint(patient.Telecom, constvars.FhirTelecomSystemPhone, form.ProcessedPhone)
	}
	if form.ProcessedEmail != "" {
		patient.Telecom = utils.UpsertContactPoint(patient.Telecom, constvars.FhirTelecomSystemEmail, form.ProcessedEmail)
	}
	if form.ProcessedAddressLine != "" || form.ProcessedCity != "" || form.ProcessedPostalCode != "" {
		address := fhir_dto.Address{City: form.ProcessedCity, PostalCode: form.ProcessedPostalCode}
		if form.ProcessedAddressLine != "" {
			address.Line = []string{form.ProcessedAddressLine}
		}
		patient.Address = []fhir_dto.Address{address}
	}
	if form.ProcessedPhoto != "" {
		patient.Photo = []fhir_dto.Attachment{{Data: form.ProcessedPhoto}}
	}
	if form.ProcessedSNSIdentifier != nil && *form.ProcessedSNSIdentifier != "" {
		patient.Identifier = []fhir_dto.Identifier{{
			System: constvars.FhirIdentifierSystemHealthID,
			Value:  *form.ProcessedSNSIdentifier,
		}}
	}
	return patient
}

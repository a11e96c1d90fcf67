package utils

import (
	"strings"
	"time"

	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/fhir_dto"
)

// GetFullName joins given names and family of the first HumanName entry.
func GetFullName(names []fhir_dto.HumanName) string {
	if len(names) == 0 {
		return ""
	}
	parts := append([]string{}, names[0].Given...)
	if names[0].Family != "" {
		parts = append(parts, names[0].Family)
	}
	return strings.Join(parts, " ")
}

// GetEmailAndPhone picks the first telecom entry per system.
func GetEmailAndPhone(telecom []fhir_dto.ContactPoint) (email, phone string) {
	for _, contact := range telecom {
		switch contact.System {
		case constvars.FhirTelecomSystemEmail:
			if email == "" {
				email = contact.Value
			}
		case constvars.FhirTelecomSystemPhone:
			if phone == "" {
				phone = contact.Value
			}
		}
	}
	return email, phone
}

// UpsertContactPoint replaces the first entry for system, appending a new
// entry when none exists yet. Other systems stay untouched.
func UpsertContactPoint(telecom []fhir_dto.ContactPoint, system, value string) []fhir_dto.ContactPoint {
	for i := range telecom {
		if telecom[i].System == system {
			telecom[i].Value = value
			return telecom
		}
	}
	return append(telecom, fhir_dto.ContactPoint{System: system, Value: value})
}

// GetHomeAddress formats the first address as "line, postalCode city".
func GetHomeAddress(addresses []fhir_dto.Address) string {
	if len(addresses) == 0 {
		return ""
	}
	address := addresses[0]
	parts := make([]string, 0, 2)
	if line := strings.Join(address.Line, " "); line != "" {
		parts = append(parts, line)
	}
	if locality := strings.TrimSpace(address.PostalCode + " " + address.City); locality != "" {
		parts = append(parts, locality)
	}
	return strings.Join(parts, ", ")
}

// GetPhotoSource prefers inline base64 data over the URL of the first photo.
func GetPhotoSource(photos []fhir_dto.Attachment) string {
	if len(photos) == 0 {
		return ""
	}
	if photos[0].Data != "" {
		return photos[0].Data
	}
	return photos[0].Url
}

// FormatClockTime reduces an RFC3339 instant to the hour:minute wall clock.
// Values already in clock form, or unparseable ones, pass through unchanged.
func FormatClockTime(instant string) string {
	if instant == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, instant)
	if err != nil {
		return instant
	}
	return parsed.Format(constvars.FhirAvailableTimeLayout)
}

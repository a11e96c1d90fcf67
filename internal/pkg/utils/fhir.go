package utils

import (
	"fmt"
	"strings"

	"agenda-care-service/internal/pkg/enums"
	"agenda-care-service/internal/pkg/fhir_dto"
)

// MakeCodeableConcept always populates coding[0] from its three inputs and
// mirrors the display into the top-level text. Callers skip the call entirely
// when the value is absent.
func MakeCodeableConcept(system, code, display string) fhir_dto.CodeableConcept {
	return fhir_dto.CodeableConcept{
		Coding: []fhir_dto.Coding{
			{System: system, Code: code, Display: display},
		},
		Text: display,
	}
}

// CodeToLabel maps each coding code through the enum, falling back to the raw
// code when the enum has no entry, and joins the results with ", ".
func CodeToLabel(concept *fhir_dto.CodeableConcept, enum enums.Enum) string {
	if concept == nil {
		return ""
	}
	labels := make([]string, 0, len(concept.Coding))
	for _, coding := range concept.Coding {
		label := enum.Label(coding.Code)
		if label == "" {
			label = coding.Code
		}
		if label != "" {
			labels = append(labels, label)
		}
	}
	return strings.Join(labels, ", ")
}

// CodeListToLabel is CodeToLabel flattened over a list of concepts.
func CodeListToLabel(concepts []fhir_dto.CodeableConcept, enum enums.Enum) string {
	labels := make([]string, 0, len(concepts))
	for i := range concepts {
		if label := CodeToLabel(&concepts[i], enum); label != "" {
			labels = append(labels, label)
		}
	}
	return strings.Join(labels, ", ")
}

// DisplayConcept resolves a human-readable value with the precedence
// text, first coding display, first coding code.
func DisplayConcept(concept *fhir_dto.CodeableConcept) string {
	if concept == nil {
		return ""
	}
	if concept.Text != "" {
		return concept.Text
	}
	if len(concept.Coding) > 0 {
		if concept.Coding[0].Display != "" {
			return concept.Coding[0].Display
		}
		return concept.Coding[0].Code
	}
	return ""
}

func DisplayConcepts(concepts []fhir_dto.CodeableConcept) string {
	labels := make([]string, 0, len(concepts))
	for i := range concepts {
		if label := DisplayConcept(&concepts[i]); label != "" {
			labels = append(labels, label)
		}
	}
	return strings.Join(labels, ", ")
}

func BuildReference(resourceType, id string) fhir_dto.Reference {
	return fhir_dto.Reference{
		Reference: fmt.Sprintf("%s/%s", resourceType, id),
	}
}

// ParseReferenceID returns the id segment of a "ResourceType/id" reference.
// A nil or malformed reference yields "" rather than an error.
func ParseReferenceID(ref *fhir_dto.Reference) string {
	if ref == nil {
		return ""
	}
	parts := strings.Split(ref.Reference, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// CodePairs projects a concept list into flat {code, display} pairs for the
// form frameworks, taking coding[0] of each concept.
func CodePairs(concepts []fhir_dto.CodeableConcept) []fhir_dto.CodeDisplay {
	pairs := make([]fhir_dto.CodeDisplay, 0, len(concepts))
	for _, concept := range concepts {
		if len(concept.Coding) == 0 {
			continue
		}
		pairs = append(pairs, fhir_dto.CodeDisplay{
			Code:    concept.Coding[0].Code,
			Display: concept.Coding[0].Display,
		})
	}
	return pairs
}

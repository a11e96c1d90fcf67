package exceptions

import (
	"fmt"
	"strings"

	"agenda-care-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required": "é obrigatório",
	"email":    "tem de ser um email válido",
	"min":      "tem de ter pelo menos %s caracteres",
	"max":      "tem no máximo %s caracteres",
	"oneof":    "tem de ser um de [%s]",
	"uuid":     "tem de ser um UUID válido",
	"numeric":  "tem de ser numérico",
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	message, ok := validationMessages[firstErr.Tag()]
	if !ok {
		message = "é inválido"
	}
	if strings.Contains(message, "%s") {
		param := firstErr.Param()
		if firstErr.Tag() == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		message = fmt.Sprintf(message, param)
	}
	return fmt.Sprintf("O campo %s %s", fieldName, message)
}

package httperr

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FromBinding converts a gin binding/validation failure into a ValidationError
// carrying one message per offending field.
func FromBinding(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrValidation("invalid_request", "Dados inválidos.", err.Error())
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldMessage(fe))
	}
	return ErrValidation("validation_error", "Dados inválidos.", details...)
}

func FieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "max":
		return fmt.Sprintf("%s não pode ter mais que %s caracteres", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s deve ser no mínimo %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um de: %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s deve ser um email válido", field)
	case "timeslot":
		return fmt.Sprintf("%s deve estar no formato HH:MM", field)
	default:
		return fmt.Sprintf("%s é inválido (%s)", field, fe.Tag())
	}
}

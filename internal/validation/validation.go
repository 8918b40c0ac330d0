package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldViolation describe una regla incumplida en un campo concreto
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Check valida una estructura contra sus tags `validate` y devuelve
// la lista de violaciones. Lista vacía (nil) significa entrada válida.
func Check(v interface{}) []FieldViolation {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: el valor no era una estructura
		return []FieldViolation{{Field: "_", Rule: "invalid"}}
	}

	violations := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, FieldViolation{
			Field: fieldName(fe),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return violations
}

// fieldName recorta el prefijo del tipo: "OrderInput.Email" -> "email"
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		ns = ns[idx+1:]
	}
	if ns == "" {
		return fe.Field()
	}
	return strings.ToLower(ns[:1]) + ns[1:]
}

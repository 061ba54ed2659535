package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate valida los DTOs de entrada vía tags `validate` (reemplazo
// explícito de los decoradores class-validator del servicio original).
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct devuelve el primer fallo de validación como mensaje legible.
func checkStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("campo %s inválido (regla %s)", fe.Field(), fe.Tag())
	}
	return err
}

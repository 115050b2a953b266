package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ougirez/kisan/internal/pkg/constants"
)

type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

// Validate maps any validation failure onto a 400 so controllers can just
// `if err := ctx.Validate(req); err != nil { return err }`.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return constants.NewCodedError(err.Error(), http.StatusBadRequest)
	}
	return nil
}

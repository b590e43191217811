package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations installs binding-level validations on gin's
// validator engine. Must run before the first request is bound.
func RegisterCustomValidations() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("positivedecimal", validatePositiveDecimal)
	}
	return nil
}

// validatePositiveDecimal rejects zero and negative amounts at the binding
// layer, before the gate sees them.
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	amount, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return amount.IsPositive()
}

package validator

import (
	"github.com/go-playground/validator/v10"

	"go-warehouse-api/internal/model"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Solde is an optional discounted price: when present it must be
	// positive and strictly below the regular price.
	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		product := sl.Current().Interface().(model.Product)
		if product.Solde == nil {
			return
		}
		if *product.Solde <= 0 || *product.Solde >= product.Price {
			sl.ReportError(product.Solde, "Solde", "solde", "solde_lt_price", "")
		}
	}, model.Product{})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

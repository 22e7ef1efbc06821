package middleware

import (
	"github.com/SscSPs/shop_pos_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain enum tags used in request bindings.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return domain.PaymentMethod(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("saletype", func(fl validator.FieldLevel) bool {
		return domain.SaleType(fl.Field().String()).IsValid()
	})
}

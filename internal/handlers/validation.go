package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/service"
)

// RegisterValidators adds the domain binding tags to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("refund_reason", validRefundReason); err != nil {
		return err
	}
	return v.RegisterValidation("iso_currency", validCurrencyCode)
}

func validRefundReason(fl validator.FieldLevel) bool {
	return models.RefundReason(fl.Field().String()).Valid()
}

func validCurrencyCode(fl validator.FieldLevel) bool {
	return service.ValidateCurrency(fl.Field().String()) == nil
}

package dto

import (
	"errors"
	"strings"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/pkg/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("gaps_operation", validateOperation)
	}
}

// validateOperation accepts only names from the gateway vocabulary.
func validateOperation(fl validator.FieldLevel) bool {
	_, ok := domain.ParseOperation(fl.Field().String())
	return ok
}

// BindingError translates a gin binding failure into an AppError naming the
// first offending field. Anything that is not a validation failure (broken
// JSON, wrong types, oversized body) is a malformed envelope.
func BindingError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.ErrMalformedEnvelope(err)
	}

	fe := verrs[0]
	field := jsonName(fe.Field())
	switch fe.Tag() {
	case "required":
		return apperror.ErrMissingField(field)
	case "gaps_operation":
		return apperror.ErrUnknownOperation(fe.Value().(string))
	default:
		return apperror.ErrInvalidField(field, fe.Tag())
	}
}

// jsonName lower-cases the first rune so Go field names match the wire
// names used by the relay ("Endpoint" -> "endpoint", "IsTest" -> "isTest").
func jsonName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"gaps-gateway/internal/core/domain"
	"gaps-gateway/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator that reports json field names and knows
// the "acctno" rule (exactly 10 ASCII digits).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("acctno", func(fl validator.FieldLevel) bool {
		return domain.IsAccountNumber(fl.Field().String())
	})
	return v
}

// validateTransaction maps the first failing rule to a validation AppError.
// index < 0 means a single instruction; otherwise the field is prefixed with
// its batch position.
func validateTransaction(v *validator.Validate, tx domain.TransactionDetails, index int) error {
	err := v.Struct(tx)
	if err == nil {
		return checkTransactionText(tx, index)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.ErrInvalidField("transaction", err.Error())
	}

	fe := verrs[0]
	field := fe.Field()
	if index >= 0 {
		field = fmt.Sprintf("transactions[%d].%s", index, field)
	}

	switch fe.Tag() {
	case "required":
		return apperror.ErrMissingField(field)
	case "acctno":
		return apperror.ErrInvalidAccountNumber(field)
	default:
		return apperror.ErrInvalidField(field, fe.Tag())
	}
}

func checkTransactionText(tx domain.TransactionDetails, index int) error {
	for _, f := range tx.Fields() {
		if utf8.ValidString(f.Value) {
			continue
		}
		field := f.Name
		if index >= 0 {
			field = fmt.Sprintf("transactions[%d].%s", index, field)
		}
		return apperror.ErrInvalidField(field, "utf8")
	}
	return nil
}

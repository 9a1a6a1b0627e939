package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"finance-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(14,2).
const moneyScale = 2

var moneyLimit = decimal.New(1, 12)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "query"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
		_ = validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			c, ok := fl.Field().Interface().(models.TransactionCategory)
			return ok && c.Valid()
		})
		_ = validate.RegisterValidation("money", func(fl validator.FieldLevel) bool {
			d, ok := fl.Field().Interface().(decimal.Decimal)
			return ok && d.Equal(d.Truncate(moneyScale)) && d.Abs().LessThan(moneyLimit)
		})
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// Validate checks the struct tags of a request.
func Validate(req interface{}) error {
	return validatorInstance().Struct(req)
}

// ValidationDetails turns a validator error into client-facing messages.
func ValidationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, describe(fe))
	}
	return details
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "money":
		return fmt.Sprintf("%s must have at most %d decimal places and be less than %s in magnitude",
			field, moneyScale, moneyLimit.String())
	case "category":
		names := make([]string, 0, len(models.Categories()))
		for _, c := range models.Categories() {
			names = append(names, string(c))
		}
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

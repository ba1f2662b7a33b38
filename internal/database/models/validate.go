package models

import (
	stderrors "errors"
	"fmt"
	"strings"

	apperrors "product-catalog-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the declarative constraints of an entity before it is
// written. Failures are reported as constraint violations.
func Validate(entity string, v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return apperrors.NewConstraintViolationError(entity, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return apperrors.NewConstraintViolationError(entity, strings.Join(msgs, "; "))
}

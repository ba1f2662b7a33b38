package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

// ConstraintViolationError represents a write rejected by a declared constraint:
// a missing required field, an oversized value, a duplicate pair or a dangling reference
type ConstraintViolationError struct {
	Entity  string
	Message string
}

func (e *ConstraintViolationError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s constraint violation: %s", e.Entity, e.Message)
	}
	return fmt.Sprintf("constraint violation: %s", e.Message)
}

// Is enables errors.Is() comparison for ConstraintViolationError
func (e *ConstraintViolationError) Is(target error) bool {
	t, ok := target.(*ConstraintViolationError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

// ValidationError represents a malformed request
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrProductNotFound      = &NotFoundError{Entity: "product"}
	ErrTenantNotFound       = &NotFoundError{Entity: "tenant"}
	ErrEnvironmentNotFound  = &NotFoundError{Entity: "environment"}
	ErrAwsAccountNotFound   = &NotFoundError{Entity: "aws account"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrSubscriptionNotFound = &NotFoundError{Entity: "tenant-product subscription"}
	ErrActivationNotFound   = &NotFoundError{Entity: "tenant-component activation"}
)

// Request Errors
var (
	ErrIDMismatch = &ValidationError{Field: "id", Message: "body id does not match path id"}
	ErrInvalidID  = &ValidationError{Field: "id", Message: "must be a positive integer"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConstraintViolation checks if an error is a ConstraintViolationError
func IsConstraintViolation(err error) bool {
	var cvErr *ConstraintViolationError
	return errors.As(err, &cvErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for an entity and identity
func NewNotFoundError(entity string, id uint) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewConstraintViolationError creates a new ConstraintViolationError
func NewConstraintViolationError(entity, message string) error {
	return &ConstraintViolationError{Entity: entity, Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeLeadNotFound = "LEAD001"
	ErrCodeValidation   = "LEAD002"
)

// Errors
var (
	ErrLeadNotFound  = errors.New("lead not found")
	ErrEmailMissing  = errors.New("email is required")
	ErrSourceMissing = errors.New("source is required")
)

// LeadError custom error type
type LeadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LeadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *LeadError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewLeadNotFoundError() *LeadError {
	return &LeadError{
		Code:    ErrCodeLeadNotFound,
		Message: "Lead not found",
		Err:     ErrLeadNotFound,
	}
}

func NewValidationError(err error) *LeadError {
	return &LeadError{
		Code:    ErrCodeValidation,
		Message: err.Error(),
		Err:     err,
	}
}

package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCompanyNotFound = "COMP001"
	ErrCodeValidation      = "COMP002"
)

var ErrCompanyNotFound = errors.New("company not found")

// CompanyError custom error type
type CompanyError struct {
	Code    string
	Message string
	Err     error
}

func (e *CompanyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CompanyError) Unwrap() error {
	return e.Err
}

func NewCompanyNotFoundError() *CompanyError {
	return &CompanyError{
		Code:    ErrCodeCompanyNotFound,
		Message: "Company not found",
		Err:     ErrCompanyNotFound,
	}
}

func NewValidationError(err error) *CompanyError {
	return &CompanyError{
		Code:    ErrCodeValidation,
		Message: err.Error(),
		Err:     err,
	}
}

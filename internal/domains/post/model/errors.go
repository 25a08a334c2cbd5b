package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePostNotFound = "POST001"
	ErrCodeSlugTaken    = "POST002"
	ErrCodeValidation   = "POST003"
)

// Errors
var (
	ErrPostNotFound = errors.New("post not found")
	ErrSlugTaken    = errors.New("slug already in use")
)

// PostError custom error type
type PostError struct {
	Code    string
	Message string
	Err     error
}

func (e *PostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PostError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewPostNotFoundError() *PostError {
	return &PostError{
		Code:    ErrCodePostNotFound,
		Message: "Post not found",
		Err:     ErrPostNotFound,
	}
}

func NewSlugTakenError(slug string) *PostError {
	return &PostError{
		Code:    ErrCodeSlugTaken,
		Message: fmt.Sprintf("A post with slug %q already exists", slug),
		Err:     ErrSlugTaken,
	}
}

func NewValidationError(err error) *PostError {
	return &PostError{
		Code:    ErrCodeValidation,
		Message: err.Error(),
		Err:     err,
	}
}

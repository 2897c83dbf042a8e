package common

import "errors"

// Domain error taxonomy. Handlers map each kind to a distinct HTTP status,
// so services never leak transport concerns.

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(message string) error {
	return &NotFoundError{Message: message}
}

// BusinessError is a domain rule violation on otherwise valid input:
// out-of-range score, duplicate list membership, following yourself.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

func NewBusinessError(message string) error {
	return &BusinessError{Message: message}
}

type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

func NewPermissionError(message string) error {
	return &PermissionError{Message: message}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsBusinessError(err error) bool {
	var target *BusinessError
	return errors.As(err, &target)
}

func IsPermissionError(err error) bool {
	var target *PermissionError
	return errors.As(err, &target)
}

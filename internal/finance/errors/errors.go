package errors

import (
	"errors"
	"fmt"
)

// ValidationError covers missing required fields and non-positive amounts.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

// NotFoundError is returned when an id lookup misses.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Msg: msg}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	return errors.As(err, &notFoundError)
}

// ConflictError is returned when a write collides with existing state,
// e.g. a duplicate email on sign-up or a double sign-in.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	return errors.As(err, &conflictError)
}

// StoreError wraps an underlying persistence failure. Callers get a generic
// message; the wrapped error is kept for logging.
type StoreError struct {
	Msg string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(msg string, err error) error {
	return &StoreError{Msg: msg, Err: err}
}

func IsStoreError(err error) bool {
	var storeError *StoreError
	return errors.As(err, &storeError)
}

var (
	ErrIncomeNotFound  = NewNotFoundError("Income not found")
	ErrExpenseNotFound = NewNotFoundError("Expense not found")
	ErrBudgetNotFound  = NewNotFoundError("Budget not found")
)

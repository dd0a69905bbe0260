// Package errs provides the standardized error types used across the
// application. Each error follows the same pattern: a sentinel variable for
// errors.Is classification, a struct carrying details, constructors with and
// without a cause, and Error/Unwrap methods.
//
// The HTTP adapter maps sentinels onto status codes, so every error raised by
// the domain or application layer should be built from this package.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrObjectNotFound indicates a referenced entity is absent from storage.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a supplied value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates a value fell outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrProductUnavailable indicates an ordered product is flagged unavailable.
	ErrProductUnavailable = errors.New("product is unavailable")

	// ErrInsufficientStock indicates the requested quantity exceeds stock on hand.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidUnit indicates the order item named a unit other than Kg or Piece.
	ErrInvalidUnit = errors.New("unit is invalid")

	// ErrUnitNotSupported indicates the product carries no price for the requested unit.
	ErrUnitNotSupported = errors.New("unit is not supported by product")

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates an authenticated actor lacks entitlement for the
	// operation (wrong owner, unapproved agent, foreign order).
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates a uniqueness conflict such as a duplicate order
	// number or an already-registered email.
	ErrConflict = errors.New("conflict")
)

// sanitize strips newlines from values interpolated into error messages so a
// single log line stays a single line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError reports an absent entity, identifying the lookup
// parameter and the identifier that missed.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StockError reports an order-item validation failure. ProductName identifies
// the offending product in client-facing messages; Reason is one of the stock
// sentinels (ErrProductUnavailable, ErrInsufficientStock, ErrInvalidUnit,
// ErrUnitNotSupported).
type StockError struct {
	ProductName string
	Reason      error
	Detail      string
}

func NewStockError(productName string, reason error, detail string) *StockError {
	return &StockError{ProductName: productName, Reason: reason, Detail: detail}
}

func (e *StockError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Reason, sanitize(e.ProductName), sanitize(e.Detail))
	}
	return fmt.Sprintf("%s: %s", e.Reason, sanitize(e.ProductName))
}

func (e *StockError) Unwrap() error {
	return e.Reason
}

// ForbiddenError reports an entitlement failure for an authenticated actor.
type ForbiddenError struct {
	Detail string
}

func NewForbiddenError(detail string) *ForbiddenError {
	return &ForbiddenError{Detail: detail}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Detail)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError reports a uniqueness conflict.
type ConflictError struct {
	Detail string
	Cause  error
}

func NewConflictError(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

func NewConflictErrorWithCause(detail string, cause error) *ConflictError {
	return &ConflictError{Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Detail)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

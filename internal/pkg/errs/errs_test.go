package errs_test

import (
	"errors"
	"testing"

	"veggo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", "123")

		assert.Equal(t, "productId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("productId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lat", 150, -90, 90)

		assert.Equal(t, "value is invalid: 150 is lat, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize_strips_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("username")

	assert.Equal(t, "value is required: username", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestStockError(t *testing.T) {
	t.Run("insufficient_stock_names_product", func(t *testing.T) {
		err := errs.NewStockError("Tomato", errs.ErrInsufficientStock, "available: 1.5 Kg")

		assert.Equal(t, "insufficient stock: Tomato (available: 1.5 Kg)", err.Error())
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	})

	t.Run("unavailable_without_detail", func(t *testing.T) {
		err := errs.NewStockError("Okra", errs.ErrProductUnavailable, "")

		assert.Equal(t, "product is unavailable: Okra", err.Error())
		assert.ErrorIs(t, err, errs.ErrProductUnavailable)
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("order belongs to another user")

	assert.Equal(t, "forbidden: order belongs to another user", err.Error())
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestConflictError(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := errs.NewConflictErrorWithCause("order number", cause)

	assert.Contains(t, err.Error(), "conflict: order number")
	assert.ErrorIs(t, err, errs.ErrConflict)
}

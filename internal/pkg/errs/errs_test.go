package errs_test

import (
	"errors"
	"testing"

	"courierapp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("backend returned 404")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: backend returned 404)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("should match sentinel via errors.Is", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("price")

		assert.Equal(t, "price", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: price", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("price", cause)

		assert.Equal(t, "price", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: price (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("lat", 95.0, -90.0, 90.0)

		assert.Equal(t, "lat", err.ParamName)
		assert.Equal(t, 95.0, err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 95 is lat, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("courierId")

		assert.Equal(t, "courierId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: courierId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("courierId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: courierId (cause: missing field)", err.Error())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("refunded")

		assert.Equal(t, "refunded", err.State)
		assert.Equal(t, "state is invalid: refunded", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("not in the status enumeration")
		err := errs.NewInvalidStateErrorWithCause("refunded", cause)

		assert.Equal(t, "state is invalid: refunded (cause: not in the status enumeration)", err.Error())
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should sanitize newlines in state", func(t *testing.T) {
		err := errs.NewInvalidStateError("bad\nstate")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestUnauthorizedError(t *testing.T) {
	t.Run("NewUnauthorizedError", func(t *testing.T) {
		err := errs.NewUnauthorizedError("start")

		assert.Equal(t, "start", err.Action)
		assert.Equal(t, "action is not permitted: start", err.Error())
		assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
	})

	t.Run("NewUnauthorizedErrorWithCause", func(t *testing.T) {
		cause := errors.New("viewer is not the assigned courier")
		err := errs.NewUnauthorizedErrorWithCause("complete", cause)

		assert.Equal(t,
			"action is not permitted: complete (cause: viewer is not the assigned courier)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestRequestFailedError(t *testing.T) {
	t.Run("NewRequestFailedError", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewRequestFailedError("update order status", cause)

		assert.Equal(t, "update order status", err.Operation)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "request failed: update order status (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrRequestFailed, err.Unwrap())
	})

	t.Run("should format without cause", func(t *testing.T) {
		err := errs.NewRequestFailedError("fetch orders", nil)
		assert.Equal(t, "request failed: fetch orders", err.Error())
	})
}

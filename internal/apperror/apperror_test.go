package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"silktouch/internal/apperror"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(apperror.NotFound("order not found")))
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(errors.New("boom")))

	wrapped := fmt.Errorf("loading cart: %w", apperror.Conflict("user already exists"))
	assert.True(t, apperror.Is(wrapped, apperror.KindConflict))
	assert.False(t, apperror.Is(nil, apperror.KindConflict))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperror.Internal("could not load products", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "could not load products", err.Message)
}

func TestValidationFields(t *testing.T) {
	err := apperror.Validation("Validation failed", map[string]string{"price": "is required"})
	assert.Equal(t, "is required", err.Fields["price"])
	assert.Equal(t, "Validation failed", err.Error())
}

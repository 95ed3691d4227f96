package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFound("patient not found")
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestErrorsIs(t *testing.T) {
	sentinel := Conflict("national id already registered")
	wrapped := fmt.Errorf("create patient: %w", sentinel)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.True(t, errors.Is(wrapped, New(KindConflict, "")))
	assert.False(t, errors.Is(wrapped, New(KindNotFound, "")))
	assert.False(t, errors.Is(wrapped, Conflict("portal account already exists")))
}

func TestValidationFormatsMessage(t *testing.T) {
	err := Validation("invalid %s: %q", "status", "pending")
	assert.Equal(t, `invalid status: "pending"`, err.Error())
	assert.True(t, Is(err, KindValidation))
}

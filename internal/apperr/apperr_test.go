package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(CodeIO, "op", nil))
}

func TestCodeOf(t *testing.T) {
	err := Wrap(CodeConnectivity, "client.New", errors.New("dial refused"))
	assert.Equal(t, CodeConnectivity, CodeOf(err))
	assert.True(t, Is(err, CodeConnectivity))
	assert.False(t, Is(err, CodeIO))

	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.Equal(t, Code(""), CodeOf(nil))
}

func TestCodeSurvivesWrapping(t *testing.T) {
	inner := New(CodeValidation, "manager.Generate", "count must be non-negative")
	outer := fmt.Errorf("ensure: %w", inner)
	assert.Equal(t, CodeValidation, CodeOf(outer))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(CodeIO, "store.Save", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "IO_ERROR")
	assert.Contains(t, err.Error(), "store.Save")
}

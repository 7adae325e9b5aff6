package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	t.Run("message with wrapped error", func(t *testing.T) {
		err := NewUserError("could not open database", ErrPersistence)
		assert.Equal(t, "could not open database: persistence failed", err.Error())
		assert.True(t, errors.Is(err, ErrPersistence))
	})

	t.Run("message only", func(t *testing.T) {
		err := NewUserError("something went wrong", nil)
		assert.Equal(t, "something went wrong", err.Error())
	})
}

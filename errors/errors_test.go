package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("empty collection has no error", func(t *testing.T) {
		t.Parallel()

		var c Collection

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
		require.NoError(t, c.GetError())
	})

	t.Run("nil errors are ignored", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
		require.NoError(t, c.GetError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		var c Collection

		err := fmt.Errorf("%w: a.b", ErrBadType)
		c.Add(err)

		assert.Equal(t, 1, c.Len())
		assert.Equal(t, err, c.GetError())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(fmt.Errorf("%w: x", ErrBadType))
		c.Add(nil)
		c.Add(fmt.Errorf("%w: y", ErrMismatchedKeys))

		err := c.GetError()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadType)
		assert.ErrorIs(t, err, ErrMismatchedKeys)
		assert.Equal(t, 2, c.Len())
	})
}

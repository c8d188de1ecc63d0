//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"homestay-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("marked error matches the sentinel", func(t *testing.T) {
		err := errs.Mark(errors.New("cause"), sentinel)
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("cause message survives the mark", func(t *testing.T) {
		err := errs.Mark(errors.New("connection refused"), sentinel)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		other := errs.New("other")
		err := errs.Mark(errors.New("cause"), sentinel)
		assert.False(t, errs.Is(err, other))
	})
}

func TestIsSeesWrappedErrors(t *testing.T) {
	sentinel := errs.New("sentinel")
	err := errs.Wrap(sentinel, "outer")
	assert.True(t, errs.Is(err, sentinel))
}

//go:build unit

package password_test

import (
	"testing"

	"homestay-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		hashed, err := password.Hash("correct horse battery staple")
		require.NoError(t, err)
		assert.NoError(t, password.Verify(hashed, "correct horse battery staple"))
	})

	t.Run("wrong password", func(t *testing.T) {
		hashed, err := password.Hash("password123")
		require.NoError(t, err)
		assert.ErrorIs(t, password.Verify(hashed, "password124"), password.ErrMismatch)
	})

	t.Run("empty inputs never verify", func(t *testing.T) {
		assert.ErrorIs(t, password.Verify("", "password123"), password.ErrMismatch)
		assert.ErrorIs(t, password.Verify("some-hash", ""), password.ErrMismatch)
	})

	t.Run("empty password is not hashable", func(t *testing.T) {
		_, err := password.Hash("")
		assert.ErrorIs(t, err, password.ErrEmptyPassword)
	})
}

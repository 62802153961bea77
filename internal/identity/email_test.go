package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEmail(t *testing.T) {
	t.Parallel()

	t.Run("missing email", func(t *testing.T) {
		t.Parallel()
		res := CheckEmail("")
		assert.False(t, res.Provided)
		assert.False(t, res.Valid)
		assert.Equal(t, "No email provided", res.Error)
	})

	t.Run("invalid format is suspicious", func(t *testing.T) {
		t.Parallel()
		res := CheckEmail("not-an-email")
		assert.True(t, res.Provided)
		assert.False(t, res.Valid)
		assert.True(t, res.IsSuspicious)
	})

	t.Run("normal corporate address", func(t *testing.T) {
		t.Parallel()
		res := CheckEmail("jane.doe@acme-corp.com")
		assert.True(t, res.Valid)
		assert.Equal(t, "acme-corp.com", res.Domain)
		assert.False(t, res.IsDisposable)
		assert.False(t, res.IsSuspicious)
		assert.False(t, res.IsFreeProvider)
	})

	t.Run("free provider", func(t *testing.T) {
		t.Parallel()
		res := CheckEmail("jane@gmail.com")
		assert.True(t, res.Valid)
		assert.True(t, res.IsFreeProvider)
	})

	t.Run("disposable domain", func(t *testing.T) {
		t.Parallel()
		res := CheckEmail("jane@mailinator.com")
		assert.True(t, res.IsDisposable)
		assert.Contains(t, res.Flags, "Disposable email domain")
	})

	t.Run("suspicious patterns", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			email string
			desc  string
		}{
			{"12345@example.com", "starts with digits"},
			{"jane@123.example", "numeric domain start"},
			{"abcdefghijklmnopqrstuv@example.com", "long random local part"},
		}
		for _, tc := range cases {
			res := CheckEmail(tc.email)
			assert.True(t, res.IsSuspicious, tc.desc)
			assert.NotEmpty(t, res.Flags, tc.desc)
		}
	})
}

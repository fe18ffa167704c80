package password_test

import (
	"testing"

	"airwave/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	hash, err := password.Hash("night-shift-42")
	require.NoError(t, err)
	assert.NotEqual(t, "night-shift-42", hash)

	other, err := password.Hash("night-shift-42")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)

	_, err = password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("night-shift-42")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "matching password", password: "night-shift-42", hash: hash},
		{name: "wrong password", password: "day-shift", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "night-shift-42", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Error(t, password.Verify("night-shift-42", "not-a-bcrypt-hash"))
}

package dto_test

import (
	"testing"

	"airwave/infras/jwt"
	"airwave/internal/domains/auth/model/dto"
	"airwave/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	t.Run("registers a listener", func(t *testing.T) {
		req := dto.RegisterRequest{Email: "Nova@Airwave.fm", Password: "secret123", DisplayName: " DJ Nova "}

		user := req.ToUserModel("hash")

		require.NotEmpty(t, user.ID)
		assert.Equal(t, "nova@airwave.fm", user.Email)
		assert.Equal(t, "DJ Nova", user.DisplayName)
		assert.Equal(t, constant.RoleUser, user.Role)
		assert.Equal(t, "hash", user.Password)
		assert.True(t, user.Active)
		assert.Equal(t, constant.ContextGuest, user.CreatedBy)
	})

	t.Run("display name from email", func(t *testing.T) {
		req := dto.RegisterRequest{Email: "night.owl@airwave.fm"}

		assert.Equal(t, "night.owl", req.ToUserModel("hash").DisplayName)
	})
}

func TestTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.TokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, response)
}

package dto

import (
	"strings"
	"time"

	"airwave/infras/jwt"
	userModel "airwave/internal/domains/user/model"
	"airwave/shared/constant"
	gModel "airwave/shared/model"
	"airwave/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"omitempty,min=2,max=50"`
}

// ToUserModel builds a listener account. The display name falls back to the
// local part of the email.
func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	displayName := strings.TrimSpace(r.DisplayName)
	if displayName == constant.Empty {
		displayName, _, _ = strings.Cut(r.Email, "@")
	}

	now := timezone.Now()

	return userModel.User{
		ID:          uuid.NewString(),
		Email:       strings.ToLower(r.Email),
		Password:    hashedPassword,
		DisplayName: displayName,
		Role:        constant.RoleUser,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	t.AccessToken = tokenPair.AccessToken
	t.RefreshToken = tokenPair.RefreshToken
	t.TokenType = tokenPair.TokenType
	t.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

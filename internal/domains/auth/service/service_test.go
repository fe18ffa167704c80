package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"airwave/infras/jwt"
	jwtMocks "airwave/infras/jwt/mocks"
	"airwave/infras/otel/mocks"
	"airwave/internal/domains/auth/model/dto"
	"airwave/internal/domains/auth/service"
	userMocks "airwave/internal/domains/user/mocks"
	userModel "airwave/internal/domains/user/model"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	"airwave/shared/failure"
	"airwave/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo *userMocks.MockUser
	jwt  *jwtMocks.MockJWT
	svc  service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo: userMocks.NewMockUser(ctrl),
		jwt:  jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.repo, mocks.NewOtel(), f.jwt)

	return f
}

func failureCode(err error) int {
	var f *failure.Failure
	if errors.As(err, &f) {
		return f.Code
	}

	return 0
}

func storedUser(t *testing.T, active bool) userModel.User {
	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	return userModel.User{
		ID:          "u1",
		Email:       "nova@airwave.fm",
		Password:    hash,
		DisplayName: "DJ Nova",
		Role:        constant.RoleHost,
		Active:      active,
	}
}

var tokens = &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates a listener", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u userModel.User) error {
				assert.Equal(t, constant.RoleUser, u.Role)
				assert.NoError(t, password.Verify("secret123", u.Password))

				return nil
			})

		res, err := f.svc.Register(context.Background(), dto.RegisterRequest{Email: "new@airwave.fm", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "new", res.DisplayName)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(context.Background(), dto.RegisterRequest{Email: "nova@airwave.fm", Password: "secret123"})
		assert.Equal(t, http.StatusConflict, failureCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		setupMock func(t *testing.T, f fixture)
		wantCode  int
	}{
		{
			name:     "issues tokens with the account role",
			password: "secret123",
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, true), nil)
				f.jwt.EXPECT().
					GenerateTokenPair(jwt.Identity{UserID: "u1", Email: "nova@airwave.fm", Name: "DJ Nova", Role: constant.RoleHost}).
					Return(tokens, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "last login failure does not block sign in",
			password: "secret123",
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, true), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokens, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
		},
		{
			name:     "unknown email",
			password: "secret123",
			setupMock: func(_ *testing.T, f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, true), nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "deactivated account",
			password: "secret123",
			setupMock: func(t *testing.T, f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, false), nil)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(t, f)

			res, err := f.svc.Login(context.Background(), dto.LoginRequest{Email: "Nova@airwave.fm", Password: tt.password})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failureCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "Bearer", res.TokenType)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("reloads the role", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(&jwt.Claims{UserID: "u1", Role: constant.RoleUser}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, true), nil)
		f.jwt.EXPECT().
			GenerateTokenPair(gomock.Any()).
			DoAndReturn(func(identity jwt.Identity) (*jwt.TokenPair, error) {
				assert.Equal(t, constant.RoleHost, identity.Role)

				return tokens, nil
			})

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
		require.NoError(t, err)
		assert.Equal(t, "refresh", res.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().ValidateToken("bad", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
		assert.Equal(t, http.StatusUnauthorized, failureCode(err))
	})

	t.Run("deactivated account", func(t *testing.T) {
		f := newFixture(t)
		f.jwt.EXPECT().ValidateToken(gomock.Any(), gomock.Any()).Return(&jwt.Claims{UserID: "u1"}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, false), nil)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
		assert.Equal(t, http.StatusUnauthorized, failureCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u1")

	t.Run("stores the new hash", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, true), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
				hash, ok := fields[userModel.FieldPassword].(string)
				require.True(t, ok)
				assert.NoError(t, password.Verify("brand-new-pass", hash))
				assert.Equal(t, "u1", fields[constant.FieldModifiedBy])
				assert.Equal(t, "u1", filter.Filters[0].(gDto.Filter).Value)

				return nil
			})

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "secret123", NewPassword: "brand-new-pass"})
		require.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser(t, true), nil)

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "brand-new-pass"})
		assert.Equal(t, http.StatusBadRequest, failureCode(err))
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "brand-new-pass"})
		assert.Equal(t, http.StatusUnauthorized, failureCode(err))
	})
}

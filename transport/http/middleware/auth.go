package middleware

import (
	"context"
	"errors"
	"net/http"

	"airwave/config"
	"airwave/infras/jwt"
	"airwave/infras/otel"
	"airwave/permissions"
	"airwave/shared/constant"
	"airwave/shared/failure"
	"airwave/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// internalCallKey marks requests authenticated by the service API key.
type internalCallKey struct{}

func isInternalCall(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallKey{}).(bool)

	return internal
}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

var tokenFailures = []struct {
	cause   error
	message string
}{
	{cause: jwt.ErrExpiredToken, message: "Token has expired"},
	{cause: jwt.ErrInvalidClaim, message: "Invalid token claims"},
}

// Auth validates the bearer token and stores the caller identity in the context.
// Public routes let anonymous callers through but still read a token when one
// is sent, so a signed-in listener keeps their role there.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, permission := m.findPermission(r)

		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.route":      route,
			"http.method":     r.Method,
		})

		public := permission.Skip || isInternalCall(r.Context())

		ctx, err := m.identify(r.Context(), r.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil && !public {
			scope.TraceError(err)
			scope.End()
			response.WithError(w, err)

			return
		}

		scope.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identify returns ctx carrying the token's identity, or ctx unchanged and a 401.
func (m *authRoleImpl) identify(ctx context.Context, header string) (context.Context, error) {
	if header == constant.Empty {
		return ctx, failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return ctx, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(token, jwt.AccessToken)
	if err != nil {
		for _, tf := range tokenFailures {
			if errors.Is(err, tf.cause) {
				return ctx, failure.Unauthorized(tf.message)
			}
		}

		return ctx, failure.Unauthorized("Invalid token")
	}

	if claims.UserID == constant.Empty || claims.Email == constant.Empty {
		log.Error().Str("token_id", claims.TokenID).Msg("JWT claims are missing the user id or email")

		return ctx, failure.Unauthorized("Invalid token claims")
	}

	for key, value := range map[any]string{
		constant.ContextKeyUserID:    claims.UserID,
		constant.ContextKeyUserEmail: claims.Email,
		constant.ContextKeyUserName:  claims.Name,
		constant.ContextKeyUserRole:  claims.Role,
		constant.ContextKeyTokenID:   claims.TokenID,
	} {
		ctx = context.WithValue(ctx, key, value)
	}

	return ctx, nil
}

// RBAC checks the caller role against the roles listed for the route. It
// runs after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if isInternalCall(ctx) {
			scope.End()
			next.ServeHTTP(w, r)

			return
		}

		if m.permission == nil {
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(w, failure.ForbiddenError)

			return
		}

		_, permission := m.findPermission(r)
		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !m.permission.Skip && !permission.Allows(role) {
			scope.TraceError(failure.ForbiddenError)
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
			})
			scope.End()
			response.WithError(w, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(w, r)
	})
}

// APIKey marks requests carrying the configured service key as internal calls.
// Requests without the header continue as regular clients.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		key := r.Header.Get(constant.RequestHeaderAPIKey)
		if key == constant.Empty {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == constant.Empty || key != m.cfg.App.APIKey {
			scope.TraceError(failure.ForbiddenError)
			scope.End()
			response.WithError(w, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), internalCallKey{}, true)))
	})
}

// findPermission resolves the route pattern of the request and its permission entry.
func (m *authRoleImpl) findPermission(r *http.Request) (string, permissions.Permission) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return r.URL.Path, permissions.Permission{}
	}

	route := rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)

	if m.permission == nil {
		return route, permissions.Permission{}
	}

	return route, m.permission.FindPermissions(route, r.Method)
}

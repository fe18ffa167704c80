package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"airwave/config"
	"airwave/infras/jwt"
	"airwave/infras/otel/mocks"
	"airwave/permissions"
	"airwave/shared/cache"
	"airwave/shared/constant"
	"airwave/shared/metrics"
	"airwave/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "airwave"
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func newAppMiddleware(t *testing.T, cfg *config.Config) (middleware.AppMiddleware, *metrics.Metrics, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	m := metrics.New("test", prometheus.NewRegistry())

	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache.NewRedisCache(client, mocks.NewOtel()), m), m, server
}

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app, _, server := newAppMiddleware(t, cfg)
	handler := app.RateLimit()(http.HandlerFunc(ok))

	codes := make([]int, 0, 3)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/stations", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 172.16.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	keys := server.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "10.0.0.1")
	assert.Positive(t, server.TTL(keys[0]))

	t.Run("redis down lets requests through", func(t *testing.T) {
		server.Close()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stations", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	app, m, _ := newAppMiddleware(t, testConfig())

	router := chi.NewRouter()
	router.Use(app.Metrics)
	router.Get("/v1/bookings/{id}", ok)

	for _, id := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/bookings/"+id, nil))
	}

	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func newAuthRouter(t *testing.T) (http.Handler, jwt.JWT) {
	t.Helper()

	cfg := testConfig()
	jwtService := jwt.New(cfg)

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/stations", Method: http.MethodGet, Skip: true},
			{Path: "/v1/users/{id}", Method: http.MethodDelete, Permissions: []string{constant.RoleAdmin}},
		},
	}

	auth := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), perms, cfg)

	echoRole := func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		name, _ := r.Context().Value(constant.ContextKeyUserName).(string)

		w.Header().Set("X-Role", role)
		w.Header().Set("X-Name", name)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Group(func(api chi.Router) {
		api.Use(auth.APIKey, auth.Auth, auth.RBAC)
		api.Route("/v1", func(v1 chi.Router) {
			v1.Route("/stations", func(r chi.Router) {
				r.Get("/", echoRole)
			})
			v1.Route("/users", func(r chi.Router) {
				r.Get("/{id}", echoRole)
				r.Delete("/{id}", echoRole)
			})
		})
	})

	return router, jwtService
}

func bearer(t *testing.T, svc jwt.JWT, role string) string {
	t.Helper()

	pair, err := svc.GenerateTokenPair(jwt.Identity{UserID: "u1", Email: "dj@airwave.fm", Name: "DJ Nova", Role: role})
	require.NoError(t, err)

	return "Bearer " + pair.AccessToken
}

func TestAuthAndRBAC(t *testing.T) {
	router, svc := newAuthRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		header   map[string]string
		wantCode int
		wantRole string
	}{
		{name: "public route as guest", method: http.MethodGet, path: "/v1/stations", wantCode: http.StatusOK},
		{
			name:     "public route keeps the signed-in role",
			method:   http.MethodGet,
			path:     "/v1/stations",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, svc, constant.RoleHost)},
			wantCode: http.StatusOK,
			wantRole: constant.RoleHost,
		},
		{name: "private route without token", method: http.MethodGet, path: "/v1/users/u2", wantCode: http.StatusUnauthorized},
		{
			name:     "malformed header",
			method:   http.MethodGet,
			path:     "/v1/users/u2",
			header:   map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "any role on an unlisted route",
			method:   http.MethodGet,
			path:     "/v1/users/u2",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, svc, constant.RoleUser)},
			wantCode: http.StatusOK,
			wantRole: constant.RoleUser,
		},
		{
			name:     "role not allowed",
			method:   http.MethodDelete,
			path:     "/v1/users/u2",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, svc, constant.RoleHost)},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "admin allowed",
			method:   http.MethodDelete,
			path:     "/v1/users/u2",
			header:   map[string]string{constant.RequestHeaderAuthorization: bearer(t, svc, constant.RoleAdmin)},
			wantCode: http.StatusOK,
			wantRole: constant.RoleAdmin,
		},
		{
			name:     "internal api key skips auth",
			method:   http.MethodDelete,
			path:     "/v1/users/u2",
			header:   map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodGet,
			path:     "/v1/stations",
			header:   map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequestWithContext(context.Background(), tt.method, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRole, rec.Header().Get("X-Role"))

			if tt.wantRole != constant.Empty {
				assert.Equal(t, "DJ Nova", rec.Header().Get("X-Name"))
			}
		})
	}
}

package permissions_test

import (
	"net/http"
	"testing"

	"airwave/permissions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	login := data.FindPermissions("/v1/auth/login", http.MethodPost)
	assert.True(t, login.Skip)

	approve := data.FindPermissions("/v1/bookings/{id}/approve", http.MethodPost)
	assert.Equal(t, []string{"admin"}, approve.Permissions)
}

func TestFindPermissions_TrailingSlash(t *testing.T) {
	data := permissions.PermissionData{
		Endpoints: []permissions.Permission{{Path: "/v1/tracks", Method: http.MethodGet, Skip: true}},
	}

	assert.True(t, data.FindPermissions("/v1/tracks/", http.MethodGet).Skip)
	assert.True(t, data.FindPermissions("/v1/tracks", http.MethodGet).Skip)
	assert.False(t, data.FindPermissions("/v1/tracks", http.MethodPost).Skip)
	assert.False(t, data.FindPermissions("/", http.MethodGet).Skip)
}

func TestAllows(t *testing.T) {
	adminOnly := permissions.Permission{Permissions: []string{"admin"}}

	assert.True(t, adminOnly.Allows("admin"))
	assert.False(t, adminOnly.Allows("host"))
	assert.False(t, adminOnly.Allows(""))
	assert.True(t, permissions.Permission{}.Allows(""))
	assert.True(t, permissions.Permission{Skip: true, Permissions: []string{"admin"}}.Allows("user"))
}

func TestParse(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/player","method":"GET","permissions":["user"]}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"user"}, data.FindPermissions("/v1/player", http.MethodGet).Permissions)

	_, err = permissions.Parse([]byte(`{"endpoints":`))
	assert.Error(t, err)
}

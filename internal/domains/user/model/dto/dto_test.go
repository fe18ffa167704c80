package dto_test

import (
	"testing"

	"airwave/internal/domains/user/model"
	"airwave/internal/domains/user/model/dto"
	"airwave/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	req := dto.CreateUserRequest{Email: "nova@airwave.fm", Password: "secret123", DisplayName: "DJ Nova"}

	user := req.ToModel("admin-1", "hashed")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "hashed", user.Password)
	assert.Equal(t, constant.RoleUser, user.Role)
	assert.True(t, user.Active)
	assert.Equal(t, "admin-1", user.CreatedBy)

	req.Role = constant.RoleHost
	assert.Equal(t, constant.RoleHost, req.ToModel("admin-1", "hashed").Role)
}

func TestUpdateRequests_IsEmpty(t *testing.T) {
	bio := "deep house since 98"
	active := false

	assert.True(t, dto.UpdateUserRequest{}.IsEmpty())
	assert.False(t, dto.UpdateUserRequest{Active: &active}.IsEmpty())
	assert.True(t, dto.UpdateProfileRequest{}.IsEmpty())
	assert.False(t, dto.UpdateProfileRequest{Bio: &bio}.IsEmpty())
}

func TestGetUsersResponse_FromModels(t *testing.T) {
	var res dto.GetUsersResponse
	res.FromModels([]model.User{{ID: "u1", Role: constant.RoleHost}, {ID: "u2"}}, 2, 10)

	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, constant.RoleHost, res.Users[0].Role)
}

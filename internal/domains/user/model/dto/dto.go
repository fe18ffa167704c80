package dto

import (
	"time"

	"airwave/internal/domains/user/model"
	"airwave/shared"
	"airwave/shared/constant"
	gDto "airwave/shared/dto"
	gModel "airwave/shared/model"
	"airwave/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=50"`
	Role        string `json:"role"         validate:"omitempty,oneof=admin host user"`
}

func (r *CreateUserRequest) ToModel(actor string, hashedPassword string) model.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleUser
	}

	return model.User{
		ID:          uuid.NewString(),
		Email:       r.Email,
		Password:    hashedPassword,
		DisplayName: r.DisplayName,
		Role:        role,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

// UpdateUserRequest is the admin edit of an account.
type UpdateUserRequest struct {
	DisplayName string  `db:"display_name" json:"display_name" validate:"omitempty,min=2,max=50"`
	Bio         *string `db:"bio"          json:"bio"          validate:"omitempty,max=500"`
	Active      *bool   `db:"active"       json:"active"`
}

func (r UpdateUserRequest) IsEmpty() bool {
	return r.DisplayName == constant.Empty && r.Bio == nil && r.Active == nil
}

// UpdateProfileRequest is the self-service edit of an account.
type UpdateProfileRequest struct {
	DisplayName string  `db:"display_name" json:"display_name" validate:"omitempty,min=2,max=50"`
	Bio         *string `db:"bio"          json:"bio"          validate:"omitempty,max=500"`
	AvatarURL   *string `db:"avatar_url"   json:"avatar_url"   validate:"omitempty,url"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.DisplayName == constant.Empty && r.Bio == nil && r.AvatarURL == nil
}

type SetRoleRequest struct {
	Role string `db:"role" json:"role" validate:"required,oneof=admin host user"`
}

type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	Bio         *string    `json:"bio,omitempty"`
	AvatarURL   *string    `json:"avatar_url,omitempty"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	Active      bool       `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.DisplayName = model.DisplayName
	r.Role = model.Role
	r.Bio = model.Bio
	r.AvatarURL = model.AvatarURL
	r.LastLogin = model.LastLogin
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

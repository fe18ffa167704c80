package model

import (
	"time"

	"airwave/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldRole        = "role"
	FieldBio         = "bio"
	FieldAvatarURL   = "avatar_url"
	FieldLastLogin   = "last_login"
	FieldActive      = "active"
)

// User is an account. DisplayName is what listeners see in chat and on host bookings.
type User struct {
	ID          string     `db:"id"`
	Email       string     `db:"email"`
	Password    string     `db:"password"`
	DisplayName string     `db:"display_name"`
	Role        string     `db:"role"`
	Bio         *string    `db:"bio"`
	AvatarURL   *string    `db:"avatar_url"`
	LastLogin   *time.Time `db:"last_login"`
	Active      bool       `db:"active"`
	model.Metadata
}

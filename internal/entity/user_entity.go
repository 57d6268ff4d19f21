package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// ParseUserRole maps a raw string onto the closed role enum.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case UserRoleUser, UserRoleAdmin:
		return UserRole(s), true
	}
	return "", false
}

type User struct {
	Id           uuid.UUID
	Name         string
	Email        string
	PasswordHash *string // nil for OAuth-only accounts
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

package domain

import (
	"context"
	"time"
)

type Profile struct {
	ID          string
	Email       string
	FullName    string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProfileRepository interface {
	GetProfileByID(ctx context.Context, userID string) (*Profile, error)
	GetProfilesByIDs(ctx context.Context, userIDs []string) (map[string]*Profile, error)
	UpdateProfile(ctx context.Context, userID, fullName, phoneNumber string) error
}

type UserRoleRepository interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

const RoleAdmin = "admin"

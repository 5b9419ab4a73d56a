package models

import "time"

type ProfileModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Email       string `gorm:"index"`
	FullName    string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProfileModel) TableName() string {
	return "profiles"
}

package models

import "time"

type UserRoleModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"type:uuid;index:idx_user_role,unique"`
	Role      string `gorm:"index:idx_user_role,unique"`
	CreatedAt time.Time
}

func (UserRoleModel) TableName() string {
	return "user_roles"
}

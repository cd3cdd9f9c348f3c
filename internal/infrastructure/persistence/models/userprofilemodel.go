package models

import "gorm.io/datatypes"

type UserProfileModel struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      string         `gorm:"uniqueIndex;size:36;not null"`
	Email       string         `gorm:"size:255;not null"`
	Role        string         `gorm:"size:20;not null"`
	Permissions datatypes.JSON `gorm:"not null"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (UserProfileModel) TableName() string {
	return "user_profiles"
}

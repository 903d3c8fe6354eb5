package models

import (
	"gorm.io/gorm"
)

// UserColor is a custom palette entry. Name is the internal identifier,
// unique per owner; Nickname is the user-facing label.
type UserColor struct {
	gorm.Model
	UserID   uint   `gorm:"not null;uniqueIndex:idx_user_color_name" json:"user_id"`
	Name     string `gorm:"not null;uniqueIndex:idx_user_color_name" json:"name"`
	Nickname string `json:"nickname"`
	HexColor string `gorm:"not null" json:"hex_color"`
}

package models

import (
	"gorm.io/gorm"
)

// ViewState holds one user's zoom and pan for one board. One row per
// (user, board) pair, upserted on every update.
type ViewState struct {
	gorm.Model
	UserID  uint    `gorm:"not null;uniqueIndex:idx_user_board" json:"user_id"`
	BoardID uint    `gorm:"not null;uniqueIndex:idx_user_board" json:"board_id"`
	Zoom    float64 `gorm:"default:1" json:"zoom"`
	PanX    float64 `gorm:"default:0" json:"pan_x"`
	PanY    float64 `gorm:"default:0" json:"pan_y"`
}

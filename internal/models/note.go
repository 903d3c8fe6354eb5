package models

import (
	"gorm.io/gorm"
)

// Note is a sticky note pinned to a board. Position is real-valued with
// the origin at the top-left corner; z_index orders stacking and is not
// required to be unique.
type Note struct {
	gorm.Model
	BoardID     uint    `gorm:"not null;index" json:"board_id"`
	Content     string  `json:"content"`
	Image       *string `json:"image"`
	Link        *string `json:"link"`
	Color       string  `gorm:"default:'yellow'" json:"color"`
	X           float64 `gorm:"default:0" json:"x"`
	Y           float64 `gorm:"default:0" json:"y"`
	Width       float64 `gorm:"default:200" json:"width"`
	Height      float64 `gorm:"default:200" json:"height"`
	GroupID     *string `json:"group_id"`
	ZIndex      int     `gorm:"default:0" json:"z_index"`
	CreatedByID uint    `gorm:"not null" json:"created_by_id"`

	CreatedBy User        `gorm:"foreignKey:CreatedByID" json:"-"`
	Images    []NoteImage `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

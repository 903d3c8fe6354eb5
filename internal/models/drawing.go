package models

import (
	"gorm.io/gorm"
)

// Drawing is one freehand stroke on a board. PathData is opaque
// serialized stroke geometry produced by the client.
type Drawing struct {
	gorm.Model
	BoardID     uint    `gorm:"not null;index" json:"board_id"`
	PathData    string  `gorm:"not null" json:"path_data"`
	Color       string  `gorm:"default:'black'" json:"color"`
	StrokeWidth float64 `gorm:"default:2" json:"stroke_width"`
	CreatedByID uint    `gorm:"not null" json:"created_by_id"`

	CreatedBy User `gorm:"foreignKey:CreatedByID" json:"-"`
}

package models

import (
	"gorm.io/gorm"
)

// NoteImage is one entry of a note's image gallery. The note's single
// Image field predates the gallery and is kept alongside it.
type NoteImage struct {
	gorm.Model
	NoteID   uint   `gorm:"not null;index" json:"note_id"`
	ImageURL string `gorm:"not null" json:"image_url"`
	Order    int    `gorm:"default:0" json:"order"`
}

package models

import (
	"gorm.io/gorm"
)

// Board is a whiteboard canvas. The owner reference is set at creation
// and never changes; the owner's rights are implicit and not stored as
// an access row.
type Board struct {
	gorm.Model
	Name            string `gorm:"not null" json:"name"`
	OwnerID         uint   `gorm:"not null" json:"owner_id"`
	BackgroundColor string `gorm:"default:'#FFFFFF'" json:"background_color"`

	Owner        User          `gorm:"foreignKey:OwnerID" json:"-"`
	Notes        []Note        `gorm:"constraint:OnDelete:CASCADE" json:"notes,omitempty"`
	Drawings     []Drawing     `gorm:"constraint:OnDelete:CASCADE" json:"drawings,omitempty"`
	AccessRights []BoardAccess `gorm:"constraint:OnDelete:CASCADE" json:"access_rights,omitempty"`
	ViewStates   []ViewState   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

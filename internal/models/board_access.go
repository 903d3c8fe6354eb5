package models

import (
	"gorm.io/gorm"
)

const (
	RoleView  = "view"
	RoleEdit  = "edit"
	RoleAdmin = "admin"
)

// BoardAccess maps a user to a board with a role. At most one row per
// (board, user) pair; grants overwrite the existing row.
type BoardAccess struct {
	gorm.Model
	BoardID uint   `gorm:"not null;uniqueIndex:idx_board_user" json:"board_id"`
	UserID  uint   `gorm:"not null;uniqueIndex:idx_board_user" json:"user_id"`
	Role    string `gorm:"not null;default:'view'" json:"role"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleView, RoleEdit, RoleAdmin:
		return true
	}
	return false
}

func RoleAllowsMutation(role string) bool {
	return role == RoleEdit || role == RoleAdmin
}

func (access *BoardAccess) ToBoardAccessResponse() *BoardAccessResponse {
	return &BoardAccessResponse{
		ID:        access.ID,
		BoardID:   access.BoardID,
		User:      *access.User.ToUserResponse(),
		Role:      access.Role,
		CreatedAt: access.CreatedAt,
	}
}

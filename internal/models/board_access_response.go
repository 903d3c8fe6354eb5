package models

import "time"

type BoardAccessResponse struct {
	ID        uint         `json:"id"`
	BoardID   uint         `json:"board_id"`
	User      UserResponse `json:"user"`
	Role      string       `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

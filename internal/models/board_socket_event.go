package models

import (
	"encoding/json"
)

// BoardSocketEvent is the frame relayed between clients viewing the same
// board. Payload is opaque to the relay; only the envelope is read.
type BoardSocketEvent struct {
	Event    string `json:"event"`
	BoardID  uint   `json:"board_id"`
	SenderID uint   `json:"sender_id"`
	// SenderConnId identifies the originating connection, so sender
	// exclusion works even when the sender has several tabs open.
	SenderConnId string          `json:"sender_conn_id,omitempty"`
	Payload      json.RawMessage `json:"payload"`
}

package models

import (
	"log"
	"sync"
)

// SocketConn is the subset of *websocket.Conn the hub needs. Tests swap
// in fakes; production always passes gorilla connections.
type SocketConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// BoardClient is one live connection. ConnId distinguishes multiple
// connections held by the same user, so membership changes target the
// connection, never the user.
type BoardClient struct {
	Conn   SocketConn
	UserId uint
	ConnId string
}

// BoardHub is the registry of live connections grouped by board id.
// Membership changes and fan-out iterate under the same lock, so a
// client disconnecting mid-broadcast never corrupts the group slice.
type BoardHub struct {
	mu sync.Mutex
	// [board_id] => []*BoardClient
	Boards map[uint][]*BoardClient
}

func NewBoardHub() *BoardHub {
	return &BoardHub{
		Boards: make(map[uint][]*BoardClient),
	}
}

func (hub *BoardHub) Join(boardId uint, client *BoardClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if _, ok := hub.Boards[boardId]; !ok {
		hub.Boards[boardId] = []*BoardClient{}
	}
	for _, member := range hub.Boards[boardId] {
		if member.Conn == client.Conn {
			return
		}
	}
	hub.Boards[boardId] = append(hub.Boards[boardId], client)
}

// Leave deregisters a single connection. The same user's other
// connections on the board stay registered.
func (hub *BoardHub) Leave(boardId uint, conn SocketConn) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	hub.removeClient(boardId, conn)
}

// Broadcast fans an event out to every member of the board's group.
// excludeConnId "" means nobody is excluded. Members whose connection
// fails the write are closed and dropped; delivery to the rest
// continues.
func (hub *BoardHub) Broadcast(boardId uint, event *BoardSocketEvent, excludeConnId string) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	clients, ok := hub.Boards[boardId]
	if !ok {
		return
	}
	var dead []SocketConn
	for _, client := range clients {
		if excludeConnId != "" && client.ConnId == excludeConnId {
			continue
		}
		if err := client.Conn.WriteJSON(event); err != nil {
			log.Printf("Error writing json: %v", err)
			if err := client.Conn.Close(); err != nil {
				log.Printf("Error closing connection: %v", err)
			}
			dead = append(dead, client.Conn)
		}
	}
	for _, conn := range dead {
		hub.removeClient(boardId, conn)
	}
}

func (hub *BoardHub) MemberCount(boardId uint) int {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	return len(hub.Boards[boardId])
}

func (hub *BoardHub) CloseAll() {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	for boardId, clients := range hub.Boards {
		for _, client := range clients {
			if err := client.Conn.Close(); err != nil {
				log.Printf("Error closing connection: %v", err)
			}
		}
		delete(hub.Boards, boardId)
	}
}

// Caller must hold hub.mu.
func (hub *BoardHub) removeClient(boardId uint, conn SocketConn) {
	for i, client := range hub.Boards[boardId] {
		if client.Conn == conn {
			hub.Boards[boardId] = append(hub.Boards[boardId][:i], hub.Boards[boardId][i+1:]...)
			break
		}
	}
	// Empty groups are dropped; they reappear on the next join.
	if len(hub.Boards[boardId]) == 0 {
		delete(hub.Boards, boardId)
	}
}

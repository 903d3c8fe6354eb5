package models_test

import (
	"errors"
	"fmt"
	"testing"

	"collabBoard/internal/enums"
	"collabBoard/internal/models"

	"github.com/stretchr/testify/assert"
)

// fakeConn records everything written to it and can be made to fail.
type fakeConn struct {
	written []interface{}
	failing bool
	closed  bool
}

func (fc *fakeConn) WriteJSON(v interface{}) error {
	if fc.failing {
		return errors.New("write failed")
	}
	fc.written = append(fc.written, v)
	return nil
}

func (fc *fakeConn) Close() error {
	fc.closed = true
	return nil
}

var connSeq int

func join(hub *models.BoardHub, boardId, userId uint) *fakeConn {
	conn := &fakeConn{}
	connSeq++
	hub.Join(boardId, &models.BoardClient{
		Conn:   conn,
		UserId: userId,
		ConnId: fmt.Sprintf("conn-%d", connSeq),
	})
	return conn
}

func TestBroadcast_ReachesAllGroupMembers(t *testing.T) {
	hub := models.NewBoardHub()
	alice := join(hub, 1, 10)
	bob := join(hub, 1, 20)

	event := &models.BoardSocketEvent{Event: enums.SOCKET_EVENT_NOTE_CREATED, BoardID: 1, SenderID: 10}
	hub.Broadcast(1, event, "")

	assert.Len(t, alice.written, 1)
	assert.Len(t, bob.written, 1)
}

func TestBroadcast_DoesNotCrossBoards(t *testing.T) {
	hub := models.NewBoardHub()
	member := join(hub, 1, 10)
	outsider := join(hub, 2, 20)

	hub.Broadcast(1, &models.BoardSocketEvent{BoardID: 1}, "")

	assert.Len(t, member.written, 1)
	assert.Empty(t, outsider.written)
}

func TestBroadcast_ExcludesSendingConnectionWhenAsked(t *testing.T) {
	hub := models.NewBoardHub()
	sender := &fakeConn{}
	hub.Join(1, &models.BoardClient{Conn: sender, UserId: 10, ConnId: "sender-tab"})
	receiver := join(hub, 1, 20)

	event := &models.BoardSocketEvent{Event: enums.SOCKET_EVENT_CURSOR_MOVED, BoardID: 1, SenderID: 10, SenderConnId: "sender-tab"}
	hub.Broadcast(1, event, "sender-tab")

	assert.Empty(t, sender.written)
	assert.Len(t, receiver.written, 1)
}

func TestBroadcast_ExcludesOnlySendingTabOfUser(t *testing.T) {
	hub := models.NewBoardHub()
	firstTab := &fakeConn{}
	secondTab := &fakeConn{}
	hub.Join(1, &models.BoardClient{Conn: firstTab, UserId: 10, ConnId: "tab-1"})
	hub.Join(1, &models.BoardClient{Conn: secondTab, UserId: 10, ConnId: "tab-2"})

	hub.Broadcast(1, &models.BoardSocketEvent{BoardID: 1, SenderID: 10, SenderConnId: "tab-2"}, "tab-2")

	assert.Len(t, firstTab.written, 1)
	assert.Empty(t, secondTab.written)
}

func TestBroadcast_DropsDeadConnectionsAndContinues(t *testing.T) {
	hub := models.NewBoardHub()
	dead := &fakeConn{failing: true}
	hub.Join(1, &models.BoardClient{Conn: dead, UserId: 10, ConnId: "dead"})
	alive := join(hub, 1, 20)

	hub.Broadcast(1, &models.BoardSocketEvent{BoardID: 1}, "")

	assert.True(t, dead.closed)
	assert.Len(t, alive.written, 1)
	assert.Equal(t, 1, hub.MemberCount(1))
}

func TestLeave_StopsDelivery(t *testing.T) {
	hub := models.NewBoardHub()
	conn := join(hub, 1, 10)
	join(hub, 1, 20)

	hub.Leave(1, conn)
	hub.Broadcast(1, &models.BoardSocketEvent{BoardID: 1}, "")

	assert.Empty(t, conn.written)
	assert.Equal(t, 1, hub.MemberCount(1))
}

func TestLeave_RemovesOnlyTheDisconnectedTab(t *testing.T) {
	hub := models.NewBoardHub()
	firstTab := join(hub, 1, 10)
	secondTab := join(hub, 1, 10)

	hub.Leave(1, secondTab)
	hub.Broadcast(1, &models.BoardSocketEvent{BoardID: 1}, "")

	assert.Len(t, firstTab.written, 1)
	assert.Empty(t, secondTab.written)
	assert.Equal(t, 1, hub.MemberCount(1))
}

func TestLeave_LastMemberDropsGroup(t *testing.T) {
	hub := models.NewBoardHub()
	conn := join(hub, 1, 10)

	hub.Leave(1, conn)

	assert.Equal(t, 0, hub.MemberCount(1))
	assert.NotContains(t, hub.Boards, uint(1))
}

func TestJoin_SameConnectionOnlyOnce(t *testing.T) {
	hub := models.NewBoardHub()
	conn := &fakeConn{}
	client := &models.BoardClient{Conn: conn, UserId: 10, ConnId: "only"}
	hub.Join(1, client)
	hub.Join(1, client)

	assert.Equal(t, 1, hub.MemberCount(1))
}

func TestCloseAll_ClosesEveryConnection(t *testing.T) {
	hub := models.NewBoardHub()
	a := join(hub, 1, 10)
	b := join(hub, 2, 20)

	hub.CloseAll()

	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.Empty(t, hub.Boards)
}

package enums

const (
	SOCKET_EVENT_BOARD_UPDATED   = "board_updated"
	SOCKET_EVENT_NOTE_CREATED    = "note_created"
	SOCKET_EVENT_NOTE_UPDATED    = "note_updated"
	SOCKET_EVENT_NOTE_DELETED    = "note_deleted"
	SOCKET_EVENT_DRAWING_CREATED = "drawing_created"
	SOCKET_EVENT_DRAWING_DELETED = "drawing_deleted"
	SOCKET_EVENT_CURSOR_MOVED    = "cursor_moved"
)

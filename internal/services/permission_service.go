package services

import (
	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/interfaces"
	"collabBoard/internal/models"
)

// PermissionService answers "may this user perform this action on this
// entity". Permission is always decided at board granularity: child
// entities resolve to their owning board first. The service holds no
// state of its own, so a revoked access takes effect on the very next
// check.
type PermissionService struct {
	boards   interfaces.BoardStore
	notes    interfaces.NoteStore
	drawings interfaces.DrawingStore
}

func NewPermissionService(
	boards interfaces.BoardStore,
	notes interfaces.NoteStore,
	drawings interfaces.DrawingStore,
) *PermissionService {
	return &PermissionService{
		boards:   boards,
		notes:    notes,
		drawings: drawings,
	}
}

// AuthorizeBoard returns nil when the user may perform the action on
// the board. The owner may do anything; otherwise the access row
// decides: any role grants read, only edit and admin grant mutation.
func (ps *PermissionService) AuthorizeBoard(userId, boardId uint, action enums.Action) error {
	if userId == 0 {
		return errs.ErrUnauthorized
	}

	board, err := ps.boards.GetBoardByID(boardId)
	if err != nil {
		return err
	}

	if board.OwnerID == userId {
		return nil
	}

	access, err := ps.boards.GetAccess(boardId, userId)
	if err != nil {
		return err
	}
	if access == nil {
		return errs.ErrPermissionDenied
	}

	if action == enums.ActionRead {
		return nil
	}
	if models.RoleAllowsMutation(access.Role) {
		return nil
	}
	return errs.ErrPermissionDenied
}

func (ps *PermissionService) AuthorizeNote(userId, noteId uint, action enums.Action) (*models.Note, error) {
	note, err := ps.notes.GetNoteByID(noteId)
	if err != nil {
		return nil, err
	}
	if err := ps.AuthorizeBoard(userId, note.BoardID, action); err != nil {
		return nil, err
	}
	return note, nil
}

func (ps *PermissionService) AuthorizeDrawing(userId, drawingId uint, action enums.Action) (*models.Drawing, error) {
	drawing, err := ps.drawings.GetDrawingByID(drawingId)
	if err != nil {
		return nil, err
	}
	if err := ps.AuthorizeBoard(userId, drawing.BoardID, action); err != nil {
		return nil, err
	}
	return drawing, nil
}

// AuthorizeNoteImage resolves image -> note -> board.
func (ps *PermissionService) AuthorizeNoteImage(userId, imageId uint, action enums.Action) (*models.NoteImage, error) {
	image, err := ps.notes.GetNoteImageByID(imageId)
	if err != nil {
		return nil, err
	}
	if _, err := ps.AuthorizeNote(userId, image.NoteID, action); err != nil {
		return nil, err
	}
	return image, nil
}

// CanManageAccess reports whether the user may grant or revoke access
// on the board: the owner may, and so may holders of the admin role.
// The edit role is not enough.
func (ps *PermissionService) CanManageAccess(userId, boardId uint) error {
	if userId == 0 {
		return errs.ErrUnauthorized
	}

	board, err := ps.boards.GetBoardByID(boardId)
	if err != nil {
		return err
	}
	if board.OwnerID == userId {
		return nil
	}

	access, err := ps.boards.GetAccess(boardId, userId)
	if err != nil {
		return err
	}
	if access == nil || access.Role != models.RoleAdmin {
		return errs.ErrPermissionDenied
	}
	return nil
}

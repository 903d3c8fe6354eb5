package interfaces

import (
	"collabBoard/internal/models"
)

// BoardStore is the slice of board persistence the permission evaluator
// needs. GetAccess returns (nil, nil) when no row exists for the pair.
type BoardStore interface {
	GetBoardByID(boardId uint) (*models.Board, error)
	GetAccess(boardId, userId uint) (*models.BoardAccess, error)
}

type NoteStore interface {
	GetNoteByID(noteId uint) (*models.Note, error)
	GetNoteImageByID(imageId uint) (*models.NoteImage, error)
}

type DrawingStore interface {
	GetDrawingByID(drawingId uint) (*models.Drawing, error)
}

// BoardRepository is the full persistence surface of the board service.
type BoardRepository interface {
	BoardStore
	CreateBoard(board *models.Board) (*models.Board, error)
	UpdateBoard(board *models.Board) (*models.Board, error)
	DeleteBoard(boardId uint) error
	ListVisibleBoards(userId uint, page, size int) (*models.BoardListResponse, error)
	UpsertAccess(boardId, userId uint, role string) (*models.BoardAccess, error)
	DeleteAccess(boardId, userId uint) error
	ListAccess(boardId uint) ([]models.BoardAccess, error)
}

type UserFinder interface {
	FindByUsername(username string) (*models.User, error)
}

type NoteRepository interface {
	NoteStore
	CreateNote(note *models.Note) (*models.Note, error)
	UpdateNote(note *models.Note) (*models.Note, error)
	DeleteNote(noteId uint) error
	GetBoardNotes(boardId uint) ([]models.Note, error)
	AddNoteImage(image *models.NoteImage) (*models.NoteImage, error)
	GetNoteImages(noteId uint) ([]models.NoteImage, error)
	DeleteNoteImage(imageId uint) error
}

type DrawingRepository interface {
	DrawingStore
	CreateDrawing(drawing *models.Drawing) (*models.Drawing, error)
	DeleteDrawing(drawingId uint) error
	GetBoardDrawings(boardId uint) ([]models.Drawing, error)
}

type PaletteRepository interface {
	CreateUserColor(color *models.UserColor) (*models.UserColor, error)
	GetUserColors(userId uint) ([]models.UserColor, error)
	GetUserColorByID(colorId uint) (*models.UserColor, error)
	UpdateUserColor(color *models.UserColor) (*models.UserColor, error)
	DeleteUserColor(colorId uint) error
	GetUserColorByName(userId uint, name string) (*models.UserColor, error)
	UpsertViewState(userId, boardId uint, zoom, panX, panY float64) (*models.ViewState, error)
	GetViewState(userId, boardId uint) (*models.ViewState, error)
}

package services

import (
	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/interfaces"
	"collabBoard/internal/models"
	"collabBoard/internal/validators"
)

type NoteService struct {
	noteRepo    interfaces.NoteRepository
	permissions *PermissionService
}

func NewNoteService(noteRepo interfaces.NoteRepository, permissions *PermissionService) *NoteService {
	return &NoteService{
		noteRepo:    noteRepo,
		permissions: permissions,
	}
}

func (ns *NoteService) CreateNote(userId uint, request *models.CreateNoteRequest) (*models.Note, []error) {
	var errors []error

	if request.BoardID == 0 {
		errors = append(errors, errs.ErrInvalidBoardId)
		return nil, errors
	}
	if err := ns.permissions.AuthorizeBoard(userId, request.BoardID, enums.ActionMutate); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	note := &models.Note{
		BoardID:     request.BoardID,
		Content:     request.Content,
		Image:       request.Image,
		Link:        request.Link,
		X:           request.X,
		Y:           request.Y,
		Width:       request.Width,
		Height:      request.Height,
		GroupID:     request.GroupID,
		ZIndex:      request.ZIndex,
		CreatedByID: userId,
	}
	if request.Color != "" {
		note.Color = request.Color
	}
	if note.Width == 0 {
		note.Width = 200
	}
	if note.Height == 0 {
		note.Height = 200
	}
	if err := validators.ValidateNoteSize(note.Width, note.Height); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	created, err := ns.noteRepo.CreateNote(note)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return created, nil
}

func (ns *NoteService) GetBoardNotes(userId, boardId uint) ([]models.Note, []error) {
	var errors []error
	if err := ns.permissions.AuthorizeBoard(userId, boardId, enums.ActionRead); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	notes, err := ns.noteRepo.GetBoardNotes(boardId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return notes, nil
}

func (ns *NoteService) UpdateNote(userId, noteId uint, request *models.UpdateNoteRequest) (*models.Note, []error) {
	var errors []error

	note, err := ns.permissions.AuthorizeNote(userId, noteId, enums.ActionMutate)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if request.Content != nil {
		note.Content = *request.Content
	}
	if request.Image != nil {
		note.Image = request.Image
	}
	if request.Link != nil {
		note.Link = request.Link
	}
	if request.Color != nil {
		note.Color = *request.Color
	}
	if request.X != nil {
		note.X = *request.X
	}
	if request.Y != nil {
		note.Y = *request.Y
	}
	if request.Width != nil {
		note.Width = *request.Width
	}
	if request.Height != nil {
		note.Height = *request.Height
	}
	if request.GroupID != nil {
		note.GroupID = request.GroupID
	}
	if request.ZIndex != nil {
		note.ZIndex = *request.ZIndex
	}
	if err := validators.ValidateNoteSize(note.Width, note.Height); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	updated, err := ns.noteRepo.UpdateNote(note)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (ns *NoteService) DeleteNote(userId, noteId uint) []error {
	var errors []error
	if _, err := ns.permissions.AuthorizeNote(userId, noteId, enums.ActionMutate); err != nil {
		errors = append(errors, err)
		return errors
	}
	if err := ns.noteRepo.DeleteNote(noteId); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

// CanMutateNote reports whether the user may change the note. Upload
// handlers call it before storing anything, so a denied request leaves
// no orphaned objects behind.
func (ns *NoteService) CanMutateNote(userId, noteId uint) []error {
	if _, err := ns.permissions.AuthorizeNote(userId, noteId, enums.ActionMutate); err != nil {
		return []error{err}
	}
	return nil
}

func (ns *NoteService) AddNoteImage(userId, noteId uint, imageUrl string, order int) (*models.NoteImage, []error) {
	var errors []error
	if _, err := ns.permissions.AuthorizeNote(userId, noteId, enums.ActionMutate); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	image, err := ns.noteRepo.AddNoteImage(&models.NoteImage{
		NoteID:   noteId,
		ImageURL: imageUrl,
		Order:    order,
	})
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return image, nil
}

func (ns *NoteService) GetNoteImages(userId, noteId uint) ([]models.NoteImage, []error) {
	var errors []error
	if _, err := ns.permissions.AuthorizeNote(userId, noteId, enums.ActionRead); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	images, err := ns.noteRepo.GetNoteImages(noteId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return images, nil
}

func (ns *NoteService) DeleteNoteImage(userId, imageId uint) []error {
	var errors []error
	if _, err := ns.permissions.AuthorizeNoteImage(userId, imageId, enums.ActionMutate); err != nil {
		errors = append(errors, err)
		return errors
	}
	if err := ns.noteRepo.DeleteNoteImage(imageId); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

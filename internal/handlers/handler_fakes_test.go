package handlers

import (
	"io"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
)

// handlerFakeStore backs the permission and note services with plain
// maps so handler tests run without a database.
type handlerFakeStore struct {
	boards map[uint]*models.Board
	access map[[2]uint]*models.BoardAccess
	notes  map[uint]*models.Note
	images map[uint]*models.NoteImage
	nextId uint
}

func newHandlerFakeStore() *handlerFakeStore {
	return &handlerFakeStore{
		boards: make(map[uint]*models.Board),
		access: make(map[[2]uint]*models.BoardAccess),
		notes:  make(map[uint]*models.Note),
		images: make(map[uint]*models.NoteImage),
		nextId: 100,
	}
}

func (fs *handlerFakeStore) GetBoardByID(boardId uint) (*models.Board, error) {
	board, ok := fs.boards[boardId]
	if !ok {
		return nil, errs.ErrBoardNotFound
	}
	return board, nil
}

func (fs *handlerFakeStore) GetAccess(boardId, userId uint) (*models.BoardAccess, error) {
	return fs.access[[2]uint{boardId, userId}], nil
}

func (fs *handlerFakeStore) GetNoteByID(noteId uint) (*models.Note, error) {
	note, ok := fs.notes[noteId]
	if !ok {
		return nil, errs.ErrNoteNotFound
	}
	return note, nil
}

func (fs *handlerFakeStore) GetNoteImageByID(imageId uint) (*models.NoteImage, error) {
	image, ok := fs.images[imageId]
	if !ok {
		return nil, errs.ErrNoteImageNotFound
	}
	return image, nil
}

func (fs *handlerFakeStore) CreateNote(note *models.Note) (*models.Note, error) {
	fs.nextId++
	note.ID = fs.nextId
	fs.notes[note.ID] = note
	return note, nil
}

func (fs *handlerFakeStore) UpdateNote(note *models.Note) (*models.Note, error) {
	fs.notes[note.ID] = note
	return note, nil
}

func (fs *handlerFakeStore) DeleteNote(noteId uint) error {
	delete(fs.notes, noteId)
	return nil
}

func (fs *handlerFakeStore) GetBoardNotes(boardId uint) ([]models.Note, error) {
	var notes []models.Note
	for _, note := range fs.notes {
		if note.BoardID == boardId {
			notes = append(notes, *note)
		}
	}
	return notes, nil
}

func (fs *handlerFakeStore) AddNoteImage(image *models.NoteImage) (*models.NoteImage, error) {
	fs.nextId++
	image.ID = fs.nextId
	fs.images[image.ID] = image
	return image, nil
}

func (fs *handlerFakeStore) GetNoteImages(noteId uint) ([]models.NoteImage, error) {
	var images []models.NoteImage
	for _, image := range fs.images {
		if image.NoteID == noteId {
			images = append(images, *image)
		}
	}
	return images, nil
}

func (fs *handlerFakeStore) DeleteNoteImage(imageId uint) error {
	delete(fs.images, imageId)
	return nil
}

// recordingUploader counts object-store writes.
type recordingUploader struct {
	uploads []string
}

func (ru *recordingUploader) UploadFile(fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	ru.uploads = append(ru.uploads, fileName)
	return "http://files.local/" + bucketName + "/" + fileName, nil
}

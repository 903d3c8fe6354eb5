package services_test

import (
	"testing"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/services"

	"github.com/stretchr/testify/assert"
)

type fakeNoteRepo struct {
	*fakeStore
	nextId uint
}

func newFakeNoteRepo(fs *fakeStore) *fakeNoteRepo {
	return &fakeNoteRepo{fakeStore: fs, nextId: 1}
}

func (fr *fakeNoteRepo) CreateNote(note *models.Note) (*models.Note, error) {
	note.ID = fr.nextId
	fr.nextId++
	fr.notes[note.ID] = note
	return note, nil
}

func (fr *fakeNoteRepo) UpdateNote(note *models.Note) (*models.Note, error) {
	fr.notes[note.ID] = note
	return note, nil
}

func (fr *fakeNoteRepo) DeleteNote(noteId uint) error {
	delete(fr.notes, noteId)
	return nil
}

func (fr *fakeNoteRepo) GetBoardNotes(boardId uint) ([]models.Note, error) {
	var notes []models.Note
	for _, note := range fr.notes {
		if note.BoardID == boardId {
			notes = append(notes, *note)
		}
	}
	return notes, nil
}

func (fr *fakeNoteRepo) AddNoteImage(image *models.NoteImage) (*models.NoteImage, error) {
	image.ID = fr.nextId
	fr.nextId++
	fr.images[image.ID] = image
	return image, nil
}

func (fr *fakeNoteRepo) GetNoteImages(noteId uint) ([]models.NoteImage, error) {
	var images []models.NoteImage
	for _, image := range fr.images {
		if image.NoteID == noteId {
			images = append(images, *image)
		}
	}
	return images, nil
}

func (fr *fakeNoteRepo) DeleteNoteImage(imageId uint) error {
	delete(fr.images, imageId)
	return nil
}

func newNoteService(fs *fakeStore) (*services.NoteService, *fakeNoteRepo) {
	fr := newFakeNoteRepo(fs)
	permissions := services.NewPermissionService(fs, fr, fs)
	return services.NewNoteService(fr, permissions), fr
}

func TestCreateNote_AppliesDefaults(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	ns, _ := newNoteService(fs)

	note, errors := ns.CreateNote(10, &models.CreateNoteRequest{BoardID: 1, Content: "todo"})
	assert.Empty(t, errors)
	assert.Equal(t, 200.0, note.Width)
	assert.Equal(t, 200.0, note.Height)
	assert.Equal(t, uint(10), note.CreatedByID)
}

func TestCreateNote_ViewerCannotCreate(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	fs.addAccess(1, 20, models.RoleView)
	ns, _ := newNoteService(fs)

	_, errors := ns.CreateNote(20, &models.CreateNoteRequest{BoardID: 1, Content: "todo"})
	assert.Equal(t, []error{errs.ErrPermissionDenied}, errors)
}

func TestCreateNote_EditorCanCreate(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	fs.addAccess(1, 30, models.RoleEdit)
	ns, _ := newNoteService(fs)

	note, errors := ns.CreateNote(30, &models.CreateNoteRequest{BoardID: 1, Content: "todo"})
	assert.Empty(t, errors)
	assert.Equal(t, uint(30), note.CreatedByID)
}

func TestCreateNote_RejectsNonPositiveSize(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	ns, _ := newNoteService(fs)

	_, errors := ns.CreateNote(10, &models.CreateNoteRequest{BoardID: 1, Width: -5, Height: 100})
	assert.Equal(t, []error{errs.ErrInvalidNoteSize}, errors)
}

func TestUpdateNote_PartialUpdate(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	ns, _ := newNoteService(fs)

	note, _ := ns.CreateNote(10, &models.CreateNoteRequest{BoardID: 1, Content: "before", X: 5})

	content := "after"
	x := 42.0
	updated, errors := ns.UpdateNote(10, note.ID, &models.UpdateNoteRequest{Content: &content, X: &x})
	assert.Empty(t, errors)
	assert.Equal(t, "after", updated.Content)
	assert.Equal(t, 42.0, updated.X)
	// Untouched fields survive.
	assert.Equal(t, 200.0, updated.Width)
}

func TestUpdateNote_PermissionResolvedThroughBoard(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	fs.addAccess(1, 20, models.RoleView)
	ns, _ := newNoteService(fs)

	note, _ := ns.CreateNote(10, &models.CreateNoteRequest{BoardID: 1})

	content := "hijack"
	_, errors := ns.UpdateNote(20, note.ID, &models.UpdateNoteRequest{Content: &content})
	assert.Equal(t, []error{errs.ErrPermissionDenied}, errors)
}

func TestDeleteNote_RemovesNote(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	ns, fr := newNoteService(fs)

	note, _ := ns.CreateNote(10, &models.CreateNoteRequest{BoardID: 1})
	assert.Empty(t, ns.DeleteNote(10, note.ID))
	assert.NotContains(t, fr.notes, note.ID)

	errors := ns.DeleteNote(10, note.ID)
	assert.Equal(t, []error{errs.ErrNoteNotFound}, errors)
}

func TestGetBoardNotes_RequiresReadAccess(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	fs.addAccess(1, 20, models.RoleView)
	ns, _ := newNoteService(fs)

	_, _ = ns.CreateNote(10, &models.CreateNoteRequest{BoardID: 1})

	notes, errors := ns.GetBoardNotes(20, 1)
	assert.Empty(t, errors)
	assert.Len(t, notes, 1)

	_, errors = ns.GetBoardNotes(99, 1)
	assert.Equal(t, []error{errs.ErrPermissionDenied}, errors)
}

func TestNoteImages_LifecycleAndPermissions(t *testing.T) {
	fs := newFakeStore()
	fs.addBoard(1, 10)
	fs.addAccess(1, 20, models.RoleView)
	ns, _ := newNoteService(fs)

	note, _ := ns.CreateNote(10, &models.CreateNoteRequest{BoardID: 1})

	image, errors := ns.AddNoteImage(10, note.ID, "http://files/a.png", 0)
	assert.Empty(t, errors)

	// Viewer may list but not delete.
	images, errors := ns.GetNoteImages(20, note.ID)
	assert.Empty(t, errors)
	assert.Len(t, images, 1)

	errors = ns.DeleteNoteImage(20, image.ID)
	assert.Equal(t, []error{errs.ErrPermissionDenied}, errors)

	assert.Empty(t, ns.DeleteNoteImage(10, image.ID))
}

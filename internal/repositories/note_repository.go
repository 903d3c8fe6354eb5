package repositories

import (
	"errors"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"

	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

func (nr *NoteRepository) CreateNote(note *models.Note) (*models.Note, error) {
	result := nr.db.Create(note)
	if result.Error != nil {
		return nil, result.Error
	}
	return note, nil
}

func (nr *NoteRepository) GetNoteByID(noteId uint) (*models.Note, error) {
	var note models.Note
	result := nr.db.First(&note, noteId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNoteNotFound
		}
		return nil, result.Error
	}
	return &note, nil
}

func (nr *NoteRepository) UpdateNote(note *models.Note) (*models.Note, error) {
	result := nr.db.Save(note)
	if result.Error != nil {
		return nil, result.Error
	}
	return note, nil
}

func (nr *NoteRepository) DeleteNote(noteId uint) error {
	return nr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("note_id = ?", noteId).Delete(&models.NoteImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Note{}, noteId).Error
	})
}

func (nr *NoteRepository) GetBoardNotes(boardId uint) ([]models.Note, error) {
	var notes []models.Note
	result := nr.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" ASC, created_at ASC")
		}).
		Where("board_id = ?", boardId).
		Order("z_index ASC, created_at ASC").
		Find(&notes)
	if result.Error != nil {
		return nil, result.Error
	}
	return notes, nil
}

func (nr *NoteRepository) AddNoteImage(image *models.NoteImage) (*models.NoteImage, error) {
	result := nr.db.Create(image)
	if result.Error != nil {
		return nil, result.Error
	}
	return image, nil
}

func (nr *NoteRepository) GetNoteImageByID(imageId uint) (*models.NoteImage, error) {
	var image models.NoteImage
	result := nr.db.First(&image, imageId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNoteImageNotFound
		}
		return nil, result.Error
	}
	return &image, nil
}

func (nr *NoteRepository) GetNoteImages(noteId uint) ([]models.NoteImage, error) {
	var images []models.NoteImage
	result := nr.db.
		Where("note_id = ?", noteId).
		Order("\"order\" ASC, created_at ASC").
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}
	return images, nil
}

func (nr *NoteRepository) DeleteNoteImage(imageId uint) error {
	return nr.db.Unscoped().Delete(&models.NoteImage{}, imageId).Error
}

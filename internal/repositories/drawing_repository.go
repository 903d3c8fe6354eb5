package repositories

import (
	"errors"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"

	"gorm.io/gorm"
)

type DrawingRepository struct {
	db *gorm.DB
}

func NewDrawingRepository(db *gorm.DB) *DrawingRepository {
	return &DrawingRepository{
		db: db,
	}
}

func (dr *DrawingRepository) CreateDrawing(drawing *models.Drawing) (*models.Drawing, error) {
	result := dr.db.Create(drawing)
	if result.Error != nil {
		return nil, result.Error
	}
	return drawing, nil
}

func (dr *DrawingRepository) GetDrawingByID(drawingId uint) (*models.Drawing, error) {
	var drawing models.Drawing
	result := dr.db.First(&drawing, drawingId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDrawingNotFound
		}
		return nil, result.Error
	}
	return &drawing, nil
}

func (dr *DrawingRepository) GetBoardDrawings(boardId uint) ([]models.Drawing, error) {
	var drawings []models.Drawing
	result := dr.db.
		Where("board_id = ?", boardId).
		Order("created_at ASC").
		Find(&drawings)
	if result.Error != nil {
		return nil, result.Error
	}
	return drawings, nil
}

func (dr *DrawingRepository) DeleteDrawing(drawingId uint) error {
	return dr.db.Delete(&models.Drawing{}, drawingId).Error
}

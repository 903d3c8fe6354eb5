package repositories

import (
	"errors"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"

	"gorm.io/gorm"
)

type PaletteRepository struct {
	db *gorm.DB
}

func NewPaletteRepository(db *gorm.DB) *PaletteRepository {
	return &PaletteRepository{
		db: db,
	}
}

func (pr *PaletteRepository) CreateUserColor(color *models.UserColor) (*models.UserColor, error) {
	result := pr.db.Create(color)
	if result.Error != nil {
		return nil, result.Error
	}
	return color, nil
}

func (pr *PaletteRepository) GetUserColors(userId uint) ([]models.UserColor, error) {
	var colors []models.UserColor
	result := pr.db.
		Where("user_id = ?", userId).
		Order("name ASC").
		Find(&colors)
	if result.Error != nil {
		return nil, result.Error
	}
	return colors, nil
}

func (pr *PaletteRepository) GetUserColorByID(colorId uint) (*models.UserColor, error) {
	var color models.UserColor
	result := pr.db.First(&color, colorId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrColorNotFound
		}
		return nil, result.Error
	}
	return &color, nil
}

func (pr *PaletteRepository) GetUserColorByName(userId uint, name string) (*models.UserColor, error) {
	var color models.UserColor
	result := pr.db.Where("user_id = ? AND name = ?", userId, name).First(&color)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &color, nil
}

func (pr *PaletteRepository) UpdateUserColor(color *models.UserColor) (*models.UserColor, error) {
	result := pr.db.Save(color)
	if result.Error != nil {
		return nil, result.Error
	}
	return color, nil
}

func (pr *PaletteRepository) DeleteUserColor(colorId uint) error {
	return pr.db.Unscoped().Delete(&models.UserColor{}, colorId).Error
}

// UpsertViewState keeps exactly one row per (user, board). The update
// and the create run inside one transaction so two racing updates for
// the same pair cannot both insert.
func (pr *PaletteRepository) UpsertViewState(userId, boardId uint, zoom, panX, panY float64) (*models.ViewState, error) {
	state := models.ViewState{
		UserID:  userId,
		BoardID: boardId,
		Zoom:    zoom,
		PanX:    panX,
		PanY:    panY,
	}

	transactionErr := pr.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ViewState
		err := tx.Where("user_id = ? AND board_id = ?", userId, boardId).First(&existing).Error
		if err == nil {
			existing.Zoom = zoom
			existing.PanX = panX
			existing.PanY = panY
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			state = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&state).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}
	return &state, nil
}

func (pr *PaletteRepository) GetViewState(userId, boardId uint) (*models.ViewState, error) {
	var state models.ViewState
	result := pr.db.Where("user_id = ? AND board_id = ?", userId, boardId).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrViewStateNotFound
		}
		return nil, result.Error
	}
	return &state, nil
}

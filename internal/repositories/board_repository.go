package repositories

import (
	"errors"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/utils"

	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{
		db: db,
	}
}

func (br *BoardRepository) CreateBoard(board *models.Board) (*models.Board, error) {
	result := br.db.Create(board)
	if err := result.Error; err != nil {
		return nil, err
	}
	if result.RowsAffected <= 0 {
		return nil, errs.ErrBoardCreationFailed
	}
	return board, nil
}

func (br *BoardRepository) GetBoardByID(boardId uint) (*models.Board, error) {
	var board models.Board
	result := br.db.First(&board, boardId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrBoardNotFound
		}
		return nil, result.Error
	}
	return &board, nil
}

func (br *BoardRepository) UpdateBoard(board *models.Board) (*models.Board, error) {
	result := br.db.Save(board)
	if result.Error != nil {
		return nil, result.Error
	}
	return board, nil
}

// DeleteBoard removes the board and everything that belongs to it.
// Dependents go first so a failure never leaves an orphaned child
// pointing at a missing board.
func (br *BoardRepository) DeleteBoard(boardId uint) error {
	return br.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("note_id IN (SELECT id FROM notes WHERE board_id = ?)", boardId).
			Delete(&models.NoteImage{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("board_id = ?", boardId).Delete(&models.Note{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("board_id = ?", boardId).Delete(&models.Drawing{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("board_id = ?", boardId).Delete(&models.BoardAccess{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("board_id = ?", boardId).Delete(&models.ViewState{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Board{}, boardId).Error
	})
}

// ListVisibleBoards returns boards the user owns or has an access row
// for. Owners never also hold an access row, so the OR cannot produce
// duplicates, but DISTINCT-via-subquery keeps it that way regardless.
func (br *BoardRepository) ListVisibleBoards(userId uint, page, size int) (*models.BoardListResponse, error) {
	var boards []models.Board
	var total int64

	visibleCondition := "owner_id = ? OR id IN (SELECT board_id FROM board_accesses WHERE user_id = ? AND deleted_at IS NULL)"

	transactionErr := br.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Scopes(utils.Paginate(page, size)).
			Where(visibleCondition, userId, userId).
			Order("updated_at DESC").
			Find(&boards).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Board{}).
			Where(visibleCondition, userId, userId).
			Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	return &models.BoardListResponse{
		Boards: boards,
		Page:   page,
		Size:   size,
		Total:  total,
	}, nil
}

// GetAccess returns the access row for the pair, or (nil, nil) when the
// user holds no access on the board.
func (br *BoardRepository) GetAccess(boardId, userId uint) (*models.BoardAccess, error) {
	var access models.BoardAccess
	result := br.db.Where("board_id = ? AND user_id = ?", boardId, userId).First(&access)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &access, nil
}

// UpsertAccess creates or overwrites the access row for (board, user)
// inside one transaction, so racing grants for the same pair cannot
// interleave into two rows.
func (br *BoardRepository) UpsertAccess(boardId, userId uint, role string) (*models.BoardAccess, error) {
	access := models.BoardAccess{
		BoardID: boardId,
		UserID:  userId,
		Role:    role,
	}

	transactionErr := br.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BoardAccess
		err := tx.Where("board_id = ? AND user_id = ?", boardId, userId).First(&existing).Error
		if err == nil {
			existing.Role = role
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			access = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&access).Error
	})
	if transactionErr != nil {
		return nil, transactionErr
	}

	if err := br.db.Preload("User").First(&access, access.ID).Error; err != nil {
		return nil, err
	}
	return &access, nil
}

// DeleteAccess is idempotent; revoking an absent row is not an error.
// Rows are removed for real, not soft-deleted, so a later grant for the
// same pair does not trip the unique index.
func (br *BoardRepository) DeleteAccess(boardId, userId uint) error {
	return br.db.Unscoped().
		Where("board_id = ? AND user_id = ?", boardId, userId).
		Delete(&models.BoardAccess{}).Error
}

func (br *BoardRepository) ListAccess(boardId uint) ([]models.BoardAccess, error) {
	var accessRows []models.BoardAccess
	result := br.db.
		Preload("User").
		Where("board_id = ?", boardId).
		Order("created_at ASC").
		Find(&accessRows)
	if result.Error != nil {
		return nil, result.Error
	}
	return accessRows, nil
}

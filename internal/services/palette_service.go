package services

import (
	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/interfaces"
	"collabBoard/internal/models"
	"collabBoard/internal/validators"
)

// PaletteService covers the per-user pieces of the app: custom colors
// and per-board view state. Colors are scoped to their owner and need
// no board permission; view state is per (user, board) and requires
// read access to the board.
type PaletteService struct {
	paletteRepo interfaces.PaletteRepository
	permissions *PermissionService
}

func NewPaletteService(paletteRepo interfaces.PaletteRepository, permissions *PermissionService) *PaletteService {
	return &PaletteService{
		paletteRepo: paletteRepo,
		permissions: permissions,
	}
}

func (ps *PaletteService) CreateColor(userId uint, request *models.CreateColorRequest) (*models.UserColor, []error) {
	var errors []error
	if userId == 0 {
		errors = append(errors, errs.ErrUnauthorized)
		return nil, errors
	}
	if request.Name == "" {
		errors = append(errors, errs.ErrInvalidParams)
		return nil, errors
	}
	if err := validators.ValidateHexColor(request.HexColor); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	existing, err := ps.paletteRepo.GetUserColorByName(userId, request.Name)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if existing != nil {
		errors = append(errors, errs.ErrColorNameTaken)
		return nil, errors
	}

	color, err := ps.paletteRepo.CreateUserColor(&models.UserColor{
		UserID:   userId,
		Name:     request.Name,
		Nickname: request.Nickname,
		HexColor: request.HexColor,
	})
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return color, nil
}

func (ps *PaletteService) GetColors(userId uint) ([]models.UserColor, []error) {
	var errors []error
	if userId == 0 {
		errors = append(errors, errs.ErrUnauthorized)
		return nil, errors
	}
	colors, err := ps.paletteRepo.GetUserColors(userId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return colors, nil
}

func (ps *PaletteService) UpdateColor(userId, colorId uint, request *models.UpdateColorRequest) (*models.UserColor, []error) {
	var errors []error

	color, err := ps.paletteRepo.GetUserColorByID(colorId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if color.UserID != userId {
		errors = append(errors, errs.ErrPermissionDenied)
		return nil, errors
	}

	if request.Nickname != nil {
		color.Nickname = *request.Nickname
	}
	if request.HexColor != nil {
		if err := validators.ValidateHexColor(*request.HexColor); err != nil {
			errors = append(errors, err)
			return nil, errors
		}
		color.HexColor = *request.HexColor
	}

	updated, err := ps.paletteRepo.UpdateUserColor(color)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (ps *PaletteService) DeleteColor(userId, colorId uint) []error {
	var errors []error

	color, err := ps.paletteRepo.GetUserColorByID(colorId)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	if color.UserID != userId {
		errors = append(errors, errs.ErrPermissionDenied)
		return errors
	}

	if err := ps.paletteRepo.DeleteUserColor(colorId); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

// UpdateViewState upserts the caller's zoom and pan for one board.
// Two updates for the same (user, board) leave exactly one row.
func (ps *PaletteService) UpdateViewState(userId, boardId uint, request *models.UpdateViewStateRequest) (*models.ViewState, []error) {
	var errors []error

	if err := ps.permissions.AuthorizeBoard(userId, boardId, enums.ActionRead); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	zoom := request.Zoom
	if zoom == 0 {
		zoom = 1
	}
	if err := validators.ValidateZoom(zoom); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	state, err := ps.paletteRepo.UpsertViewState(userId, boardId, zoom, request.PanX, request.PanY)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return state, nil
}

// GetViewState returns the caller's saved view for the board, or the
// defaults when nothing has been saved yet.
func (ps *PaletteService) GetViewState(userId, boardId uint) (*models.ViewState, []error) {
	var errors []error

	if err := ps.permissions.AuthorizeBoard(userId, boardId, enums.ActionRead); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	state, err := ps.paletteRepo.GetViewState(userId, boardId)
	if err != nil {
		if err == errs.ErrViewStateNotFound {
			return &models.ViewState{
				UserID:  userId,
				BoardID: boardId,
				Zoom:    1,
			}, nil
		}
		errors = append(errors, err)
		return nil, errors
	}
	return state, nil
}

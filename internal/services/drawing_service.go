package services

import (
	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/interfaces"
	"collabBoard/internal/models"
	"collabBoard/internal/validators"
)

type DrawingService struct {
	drawingRepo interfaces.DrawingRepository
	permissions *PermissionService
}

func NewDrawingService(drawingRepo interfaces.DrawingRepository, permissions *PermissionService) *DrawingService {
	return &DrawingService{
		drawingRepo: drawingRepo,
		permissions: permissions,
	}
}

func (ds *DrawingService) CreateDrawing(userId uint, request *models.CreateDrawingRequest) (*models.Drawing, []error) {
	var errors []error

	if request.BoardID == 0 {
		errors = append(errors, errs.ErrInvalidBoardId)
		return nil, errors
	}
	if err := ds.permissions.AuthorizeBoard(userId, request.BoardID, enums.ActionMutate); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	drawing := &models.Drawing{
		BoardID:     request.BoardID,
		PathData:    request.PathData,
		CreatedByID: userId,
	}
	if request.Color != "" {
		drawing.Color = request.Color
	}
	if request.StrokeWidth != 0 {
		if err := validators.ValidateStrokeWidth(request.StrokeWidth); err != nil {
			errors = append(errors, err)
			return nil, errors
		}
		drawing.StrokeWidth = request.StrokeWidth
	}

	created, err := ds.drawingRepo.CreateDrawing(drawing)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return created, nil
}

func (ds *DrawingService) GetBoardDrawings(userId, boardId uint) ([]models.Drawing, []error) {
	var errors []error
	if err := ds.permissions.AuthorizeBoard(userId, boardId, enums.ActionRead); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	drawings, err := ds.drawingRepo.GetBoardDrawings(boardId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return drawings, nil
}

func (ds *DrawingService) DeleteDrawing(userId, drawingId uint) []error {
	var errors []error
	if _, err := ds.permissions.AuthorizeDrawing(userId, drawingId, enums.ActionMutate); err != nil {
		errors = append(errors, err)
		return errors
	}
	if err := ds.drawingRepo.DeleteDrawing(drawingId); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

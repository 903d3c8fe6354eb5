package services

import (
	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/interfaces"
	"collabBoard/internal/models"
	"collabBoard/internal/validators"
)

type BoardService struct {
	boardRepo   interfaces.BoardRepository
	userFinder  interfaces.UserFinder
	permissions *PermissionService
}

func NewBoardService(
	boardRepo interfaces.BoardRepository,
	userFinder interfaces.UserFinder,
	permissions *PermissionService,
) *BoardService {
	return &BoardService{
		boardRepo:   boardRepo,
		userFinder:  userFinder,
		permissions: permissions,
	}
}

func (bs *BoardService) CreateBoard(ownerId uint, request *models.CreateBoardRequest) (*models.Board, []error) {
	var errors []error
	if ownerId == 0 {
		errors = append(errors, errs.ErrUnauthorized)
		return nil, errors
	}
	if err := validators.ValidateBoardName(request.Name); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	board := &models.Board{
		Name:    request.Name,
		OwnerID: ownerId,
	}
	if request.BackgroundColor != "" {
		if err := validators.ValidateHexColor(request.BackgroundColor); err != nil {
			errors = append(errors, err)
			return nil, errors
		}
		board.BackgroundColor = request.BackgroundColor
	}

	created, err := bs.boardRepo.CreateBoard(board)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return created, nil
}

func (bs *BoardService) GetBoard(userId, boardId uint) (*models.Board, []error) {
	var errors []error
	if err := bs.permissions.AuthorizeBoard(userId, boardId, enums.ActionRead); err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	board, err := bs.boardRepo.GetBoardByID(boardId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return board, nil
}

func (bs *BoardService) UpdateBoard(userId, boardId uint, request *models.UpdateBoardRequest) (*models.Board, []error) {
	var errors []error
	if err := bs.permissions.AuthorizeBoard(userId, boardId, enums.ActionMutate); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	board, err := bs.boardRepo.GetBoardByID(boardId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if request.Name != nil {
		if err := validators.ValidateBoardName(*request.Name); err != nil {
			errors = append(errors, err)
			return nil, errors
		}
		board.Name = *request.Name
	}
	if request.BackgroundColor != nil {
		if err := validators.ValidateHexColor(*request.BackgroundColor); err != nil {
			errors = append(errors, err)
			return nil, errors
		}
		board.BackgroundColor = *request.BackgroundColor
	}

	updated, err := bs.boardRepo.UpdateBoard(board)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return updated, nil
}

func (bs *BoardService) DeleteBoard(userId, boardId uint) []error {
	var errors []error
	if err := bs.permissions.AuthorizeBoard(userId, boardId, enums.ActionMutate); err != nil {
		errors = append(errors, err)
		return errors
	}
	if err := bs.boardRepo.DeleteBoard(boardId); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func (bs *BoardService) ListVisibleBoards(userId uint, page, size int) (*models.BoardListResponse, []error) {
	var errors []error
	if userId == 0 {
		errors = append(errors, errs.ErrUnauthorized)
		return nil, errors
	}
	response, err := bs.boardRepo.ListVisibleBoards(userId, page, size)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return response, nil
}

// GrantAccess gives a user a role on a board, overwriting any role
// they already hold. Only the owner and admins may grant. The owner
// never gets an access row; their rights are structural.
func (bs *BoardService) GrantAccess(requesterId, boardId uint, request *models.GrantAccessRequest) (*models.BoardAccess, []error) {
	var errors []error

	if err := bs.permissions.CanManageAccess(requesterId, boardId); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	if request.Username == "" {
		errors = append(errors, errs.ErrMissingUsername)
		return nil, errors
	}
	if err := validators.ValidateRole(request.Role); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	target, err := bs.userFinder.FindByUsername(request.Username)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	board, err := bs.boardRepo.GetBoardByID(boardId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	if board.OwnerID == target.ID {
		errors = append(errors, errs.ErrCannotGrantOwner)
		return nil, errors
	}

	access, err := bs.boardRepo.UpsertAccess(boardId, target.ID, request.Role)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return access, nil
}

// RevokeAccess removes a user's access row. Revoking a user with no
// row is a no-op; revoking the owner always fails.
func (bs *BoardService) RevokeAccess(requesterId, boardId uint, username string) []error {
	var errors []error

	if err := bs.permissions.CanManageAccess(requesterId, boardId); err != nil {
		errors = append(errors, err)
		return errors
	}

	if username == "" {
		errors = append(errors, errs.ErrMissingUsername)
		return errors
	}

	target, err := bs.userFinder.FindByUsername(username)
	if err != nil {
		errors = append(errors, err)
		return errors
	}

	board, err := bs.boardRepo.GetBoardByID(boardId)
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	if board.OwnerID == target.ID {
		errors = append(errors, errs.ErrCannotRemoveOwner)
		return errors
	}

	if err := bs.boardRepo.DeleteAccess(boardId, target.ID); err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func (bs *BoardService) ListAccess(requesterId, boardId uint) ([]models.BoardAccessResponse, []error) {
	var errors []error
	if err := bs.permissions.AuthorizeBoard(requesterId, boardId, enums.ActionRead); err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	accessRows, err := bs.boardRepo.ListAccess(boardId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}

	responses := []models.BoardAccessResponse{}
	for _, access := range accessRows {
		responses = append(responses, *access.ToBoardAccessResponse())
	}
	return responses, nil
}

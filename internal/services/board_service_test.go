package services_test

import (
	"testing"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/services"

	"github.com/stretchr/testify/assert"
)

// fakeBoardRepo extends fakeStore with the write surface of the board
// service and a username lookup.
type fakeBoardRepo struct {
	*fakeStore
	users      map[string]*models.User
	nextId     uint
	lastUpsert *models.BoardAccess
}

func newFakeBoardRepo() *fakeBoardRepo {
	return &fakeBoardRepo{
		fakeStore: newFakeStore(),
		users:     make(map[string]*models.User),
		nextId:    1,
	}
}

func (fr *fakeBoardRepo) CreateBoard(board *models.Board) (*models.Board, error) {
	board.ID = fr.nextId
	fr.nextId++
	fr.boards[board.ID] = board
	return board, nil
}

func (fr *fakeBoardRepo) UpdateBoard(board *models.Board) (*models.Board, error) {
	fr.boards[board.ID] = board
	return board, nil
}

func (fr *fakeBoardRepo) DeleteBoard(boardId uint) error {
	delete(fr.boards, boardId)
	return nil
}

func (fr *fakeBoardRepo) ListVisibleBoards(userId uint, page, size int) (*models.BoardListResponse, error) {
	response := &models.BoardListResponse{Boards: []models.Board{}, Page: page, Size: size}
	for _, board := range fr.boards {
		if board.OwnerID == userId {
			response.Boards = append(response.Boards, *board)
			continue
		}
		if fr.access[accessKey{board.ID, userId}] != nil {
			response.Boards = append(response.Boards, *board)
		}
	}
	response.Total = int64(len(response.Boards))
	return response, nil
}

func (fr *fakeBoardRepo) UpsertAccess(boardId, userId uint, role string) (*models.BoardAccess, error) {
	key := accessKey{boardId, userId}
	access, ok := fr.access[key]
	if !ok {
		access = &models.BoardAccess{BoardID: boardId, UserID: userId}
		fr.access[key] = access
	}
	access.Role = role
	fr.lastUpsert = access
	return access, nil
}

func (fr *fakeBoardRepo) DeleteAccess(boardId, userId uint) error {
	delete(fr.access, accessKey{boardId, userId})
	return nil
}

func (fr *fakeBoardRepo) ListAccess(boardId uint) ([]models.BoardAccess, error) {
	var rows []models.BoardAccess
	for key, access := range fr.access {
		if key.boardId == boardId {
			rows = append(rows, *access)
		}
	}
	return rows, nil
}

func (fr *fakeBoardRepo) FindByUsername(username string) (*models.User, error) {
	user, ok := fr.users[username]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return user, nil
}

func (fr *fakeBoardRepo) addUser(id uint, username string) *models.User {
	user := &models.User{Username: username, Email: username + "@example.com"}
	user.ID = id
	fr.users[username] = user
	return user
}

func newBoardService(fr *fakeBoardRepo) *services.BoardService {
	permissions := services.NewPermissionService(fr, fr, fr)
	return services.NewBoardService(fr, fr, permissions)
}

func TestCreateBoard_DefaultsAndOwnership(t *testing.T) {
	fr := newFakeBoardRepo()
	bs := newBoardService(fr)

	board, errors := bs.CreateBoard(10, &models.CreateBoardRequest{Name: "retro"})
	assert.Empty(t, errors)
	assert.Equal(t, uint(10), board.OwnerID)
	assert.Equal(t, "retro", board.Name)
}

func TestCreateBoard_RejectsEmptyName(t *testing.T) {
	fr := newFakeBoardRepo()
	bs := newBoardService(fr)

	_, errors := bs.CreateBoard(10, &models.CreateBoardRequest{Name: ""})
	assert.NotEmpty(t, errors)
}

func TestGrantAccess_OwnerGrantsAndOverwrites(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addUser(20, "dana")
	bs := newBoardService(fr)

	access, errors := bs.GrantAccess(10, 1, &models.GrantAccessRequest{Username: "dana", Role: models.RoleView})
	assert.Empty(t, errors)
	assert.Equal(t, models.RoleView, access.Role)

	// Re-granting overwrites the role instead of adding a second row.
	access, errors = bs.GrantAccess(10, 1, &models.GrantAccessRequest{Username: "dana", Role: models.RoleEdit})
	assert.Empty(t, errors)
	assert.Equal(t, models.RoleEdit, access.Role)

	rows, err := fr.ListAccess(1)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestGrantAccess_EditRoleCannotGrant(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addAccess(1, 30, models.RoleEdit)
	fr.addUser(20, "dana")
	bs := newBoardService(fr)

	_, errors := bs.GrantAccess(30, 1, &models.GrantAccessRequest{Username: "dana", Role: models.RoleView})
	assert.Equal(t, []error{errs.ErrPermissionDenied}, errors)
}

func TestGrantAccess_AdminRoleCanGrant(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addAccess(1, 40, models.RoleAdmin)
	fr.addUser(20, "dana")
	bs := newBoardService(fr)

	access, errors := bs.GrantAccess(40, 1, &models.GrantAccessRequest{Username: "dana", Role: models.RoleView})
	assert.Empty(t, errors)
	assert.Equal(t, uint(20), access.UserID)
}

func TestGrantAccess_RejectsOwnerAsTarget(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addUser(10, "olivia")
	bs := newBoardService(fr)

	_, errors := bs.GrantAccess(10, 1, &models.GrantAccessRequest{Username: "olivia", Role: models.RoleAdmin})
	assert.Equal(t, []error{errs.ErrCannotGrantOwner}, errors)
}

func TestGrantAccess_RejectsInvalidRoleAndMissingUsername(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addUser(20, "dana")
	bs := newBoardService(fr)

	_, errors := bs.GrantAccess(10, 1, &models.GrantAccessRequest{Username: "dana", Role: "superuser"})
	assert.Equal(t, []error{errs.ErrInvalidRole}, errors)

	_, errors = bs.GrantAccess(10, 1, &models.GrantAccessRequest{Role: models.RoleView})
	assert.Equal(t, []error{errs.ErrMissingUsername}, errors)
}

func TestGrantAccess_UnknownTargetUser(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	bs := newBoardService(fr)

	_, errors := bs.GrantAccess(10, 1, &models.GrantAccessRequest{Username: "ghost", Role: models.RoleView})
	assert.Equal(t, []error{errs.ErrUserNotFound}, errors)
}

func TestRevokeAccess_RemovesRow(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addUser(20, "dana")
	fr.addAccess(1, 20, models.RoleEdit)
	bs := newBoardService(fr)

	errors := bs.RevokeAccess(10, 1, "dana")
	assert.Empty(t, errors)

	access, err := fr.GetAccess(1, 20)
	assert.NoError(t, err)
	assert.Nil(t, access)
}

func TestRevokeAccess_OwnerCannotBeRevoked(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addUser(10, "olivia")
	bs := newBoardService(fr)

	errors := bs.RevokeAccess(10, 1, "olivia")
	assert.Equal(t, []error{errs.ErrCannotRemoveOwner}, errors)
}

func TestRevokeAccess_NoRowIsIdempotent(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addUser(20, "dana")
	bs := newBoardService(fr)

	errors := bs.RevokeAccess(10, 1, "dana")
	assert.Empty(t, errors)
}

func TestListAccess_RequiresMembership(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	dana := fr.addUser(20, "dana")
	fr.access[accessKey{1, 20}] = &models.BoardAccess{
		BoardID: 1, UserID: 20, Role: models.RoleView, User: *dana,
	}
	bs := newBoardService(fr)

	rows, errors := bs.ListAccess(20, 1)
	assert.Empty(t, errors)
	assert.Len(t, rows, 1)
	assert.Equal(t, "dana", rows[0].User.Username)

	_, errors = bs.ListAccess(99, 1)
	assert.Equal(t, []error{errs.ErrPermissionDenied}, errors)
}

func TestBoardLifecycle_GrantEditThenRevoke(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addUser(20, "dana")
	bs := newBoardService(fr)

	board, errors := bs.CreateBoard(10, &models.CreateBoardRequest{Name: "sprint"})
	assert.Empty(t, errors)

	_, errors = bs.GrantAccess(10, board.ID, &models.GrantAccessRequest{Username: "dana", Role: models.RoleEdit})
	assert.Empty(t, errors)

	// Editor can now mutate the board.
	name := "sprint 2"
	_, errors = bs.UpdateBoard(20, board.ID, &models.UpdateBoardRequest{Name: &name})
	assert.Empty(t, errors)

	assert.Empty(t, bs.RevokeAccess(10, board.ID, "dana"))

	_, errors = bs.GetBoard(20, board.ID)
	assert.Equal(t, []error{errs.ErrPermissionDenied}, errors)
}

func TestListVisibleBoards_OwnedAndShared(t *testing.T) {
	fr := newFakeBoardRepo()
	fr.addBoard(1, 10)
	fr.addBoard(2, 99)
	fr.addBoard(3, 99)
	fr.addAccess(2, 10, models.RoleView)
	bs := newBoardService(fr)

	response, errors := bs.ListVisibleBoards(10, 1, 10)
	assert.Empty(t, errors)
	assert.Equal(t, int64(2), response.Total)
}

package handlers

import (
	"log"
	"net/http"
	"strconv"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/services"
	"collabBoard/internal/utils"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	authService        *services.AuthenticationService
	boardService       *services.BoardService
	noteService        *services.NoteService
	drawingService     *services.DrawingService
	paletteService     *services.PaletteService
	fileManagerService *services.FileManagerService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	boardService *services.BoardService,
	noteService *services.NoteService,
	drawingService *services.DrawingService,
	paletteService *services.PaletteService,
	fileManagerService *services.FileManagerService,
) *RestHandler {
	return &RestHandler{
		authService:        authService,
		boardService:       boardService,
		noteService:        noteService,
		drawingService:     drawingService,
		paletteService:     paletteService,
		fileManagerService: fileManagerService,
	}
}

// statusForErrors picks the response status from the first error.
// Denied and not-found stay distinct so a caller cannot discover the
// existence of boards it was never shown.
func statusForErrors(errors []error) int {
	if len(errors) == 0 {
		return http.StatusOK
	}
	switch errors[0] {
	case errs.ErrUnauthorized:
		return http.StatusUnauthorized
	case errs.ErrPermissionDenied:
		return http.StatusForbidden
	case errs.ErrBoardNotFound, errs.ErrUserNotFound, errs.ErrNoteNotFound,
		errs.ErrDrawingNotFound, errs.ErrNoteImageNotFound, errs.ErrColorNotFound,
		errs.ErrViewStateNotFound:
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func abortWithErrors(ctx *gin.Context, errors []error) {
	ctx.AbortWithStatusJSON(statusForErrors(errors), models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  errors,
	})
}

func uintParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		return 0, errs.ErrInvalidParams
	}
	return uint(parsed), nil
}

func pagination(ctx *gin.Context) (int, int) {
	pageInt, err := strconv.Atoi(ctx.Query("page"))
	if err != nil || pageInt < 1 {
		pageInt = 1
	}
	sizeInt, err := strconv.Atoi(ctx.Query("size"))
	if err != nil || sizeInt < 1 {
		sizeInt = 10
	}
	return pageInt, sizeInt
}

// Login godoc
// @Summary      Login user to account
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var errors []error

	var loginData models.LoginRequestBody
	err := ctx.BindJSON(&loginData)
	if err != nil {
		log.Println("Error login data json binding:", err)
		errors = append(errors, errs.ErrInvalidRequestBody)
		abortWithErrors(ctx, errors)
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		abortWithErrors(ctx, loginErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

func (rh *RestHandler) Register(ctx *gin.Context) {
	var errors []error

	var user models.User
	err := ctx.BindJSON(&user)
	if err != nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		abortWithErrors(ctx, errors)
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		abortWithErrors(ctx, registerErrs)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

func (rh *RestHandler) GetAllUsersWithPagination(ctx *gin.Context) {
	page, size := pagination(ctx)

	response, userErrs := rh.authService.GetAllUsersWithPagination(page, size)
	if len(userErrs) > 0 {
		abortWithErrors(ctx, userErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

func (rh *RestHandler) SearchUsers(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	if userId < 1 {
		abortWithErrors(ctx, []error{errs.ErrUnauthorized})
		return
	}

	users, searchErrs := rh.authService.SearchUsers(ctx.Query("q"), userId)
	if len(searchErrs) > 0 {
		abortWithErrors(ctx, searchErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    users,
	})
}

func (rh *RestHandler) GetSingleUser(ctx *gin.Context) {
	id, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	user, userErrs := rh.authService.GetSingleUser(id)
	if len(userErrs) > 0 {
		abortWithErrors(ctx, userErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    user,
	})
}

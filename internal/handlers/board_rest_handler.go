package handlers

import (
	"net/http"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/utils"

	"github.com/gin-gonic/gin"
)

func (rh *RestHandler) CreateBoard(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)

	var request models.CreateBoardRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	board, boardErrs := rh.boardService.CreateBoard(userId, &request)
	if len(boardErrs) > 0 {
		abortWithErrors(ctx, boardErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    board,
	})
}

func (rh *RestHandler) ListBoards(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	page, size := pagination(ctx)

	response, listErrs := rh.boardService.ListVisibleBoards(userId, page, size)
	if len(listErrs) > 0 {
		abortWithErrors(ctx, listErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

func (rh *RestHandler) GetBoard(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	board, boardErrs := rh.boardService.GetBoard(userId, boardId)
	if len(boardErrs) > 0 {
		abortWithErrors(ctx, boardErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    board,
	})
}

func (rh *RestHandler) UpdateBoard(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	var request models.UpdateBoardRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	board, boardErrs := rh.boardService.UpdateBoard(userId, boardId, &request)
	if len(boardErrs) > 0 {
		abortWithErrors(ctx, boardErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    board,
	})
}

func (rh *RestHandler) DeleteBoard(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	if deleteErrs := rh.boardService.DeleteBoard(userId, boardId); len(deleteErrs) > 0 {
		abortWithErrors(ctx, deleteErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

// GrantAccess godoc
// @Summary      Grant a user a role on a board
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /boards/{id}/access [post]
func (rh *RestHandler) GrantAccess(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	var request models.GrantAccessRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	access, grantErrs := rh.boardService.GrantAccess(userId, boardId, &request)
	if len(grantErrs) > 0 {
		abortWithErrors(ctx, grantErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgAccessGranted,
		Data:    access.ToBoardAccessResponse(),
	})
}

func (rh *RestHandler) RevokeAccess(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	username := ctx.Param("username")
	if revokeErrs := rh.boardService.RevokeAccess(userId, boardId, username); len(revokeErrs) > 0 {
		abortWithErrors(ctx, revokeErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgAccessRevoked,
	})
}

func (rh *RestHandler) ListAccess(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	accessRows, listErrs := rh.boardService.ListAccess(userId, boardId)
	if len(listErrs) > 0 {
		abortWithErrors(ctx, listErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    accessRows,
	})
}

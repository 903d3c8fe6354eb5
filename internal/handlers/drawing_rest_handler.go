package handlers

import (
	"net/http"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/utils"

	"github.com/gin-gonic/gin"
)

func (rh *RestHandler) CreateDrawing(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)

	var request models.CreateDrawingRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	drawing, drawingErrs := rh.drawingService.CreateDrawing(userId, &request)
	if len(drawingErrs) > 0 {
		abortWithErrors(ctx, drawingErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    drawing,
	})
}

func (rh *RestHandler) GetBoardDrawings(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	drawings, drawingErrs := rh.drawingService.GetBoardDrawings(userId, boardId)
	if len(drawingErrs) > 0 {
		abortWithErrors(ctx, drawingErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    drawings,
	})
}

func (rh *RestHandler) DeleteDrawing(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	drawingId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	if deleteErrs := rh.drawingService.DeleteDrawing(userId, drawingId); len(deleteErrs) > 0 {
		abortWithErrors(ctx, deleteErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

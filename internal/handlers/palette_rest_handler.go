package handlers

import (
	"net/http"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/utils"

	"github.com/gin-gonic/gin"
)

func (rh *RestHandler) CreateColor(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)

	var request models.CreateColorRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	color, colorErrs := rh.paletteService.CreateColor(userId, &request)
	if len(colorErrs) > 0 {
		abortWithErrors(ctx, colorErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    color,
	})
}

func (rh *RestHandler) GetColors(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)

	colors, colorErrs := rh.paletteService.GetColors(userId)
	if len(colorErrs) > 0 {
		abortWithErrors(ctx, colorErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    colors,
	})
}

func (rh *RestHandler) UpdateColor(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	colorId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	var request models.UpdateColorRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	color, colorErrs := rh.paletteService.UpdateColor(userId, colorId, &request)
	if len(colorErrs) > 0 {
		abortWithErrors(ctx, colorErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    color,
	})
}

func (rh *RestHandler) DeleteColor(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	colorId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	if deleteErrs := rh.paletteService.DeleteColor(userId, colorId); len(deleteErrs) > 0 {
		abortWithErrors(ctx, deleteErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

func (rh *RestHandler) GetViewState(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	state, stateErrs := rh.paletteService.GetViewState(userId, boardId)
	if len(stateErrs) > 0 {
		abortWithErrors(ctx, stateErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    state,
	})
}

func (rh *RestHandler) UpdateViewState(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	var request models.UpdateViewStateRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	state, stateErrs := rh.paletteService.UpdateViewState(userId, boardId, &request)
	if len(stateErrs) > 0 {
		abortWithErrors(ctx, stateErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    state,
	})
}

package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"collabBoard/internal/enums"
	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (rh *RestHandler) CreateNote(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)

	var request models.CreateNoteRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	note, noteErrs := rh.noteService.CreateNote(userId, &request)
	if len(noteErrs) > 0 {
		abortWithErrors(ctx, noteErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    note,
	})
}

func (rh *RestHandler) GetBoardNotes(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	boardId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	notes, noteErrs := rh.noteService.GetBoardNotes(userId, boardId)
	if len(noteErrs) > 0 {
		abortWithErrors(ctx, noteErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    notes,
	})
}

func (rh *RestHandler) UpdateNote(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	noteId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	var request models.UpdateNoteRequest
	if err := ctx.BindJSON(&request); err != nil {
		abortWithErrors(ctx, []error{errs.ErrInvalidRequestBody})
		return
	}

	note, noteErrs := rh.noteService.UpdateNote(userId, noteId, &request)
	if len(noteErrs) > 0 {
		abortWithErrors(ctx, noteErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    note,
	})
}

func (rh *RestHandler) DeleteNote(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	noteId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	if deleteErrs := rh.noteService.DeleteNote(userId, noteId); len(deleteErrs) > 0 {
		abortWithErrors(ctx, deleteErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

// UploadNoteImage stores the uploaded file in the note-images bucket
// and appends it to the note's gallery.
func (rh *RestHandler) UploadNoteImage(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	noteId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	// Authorization comes before the upload so a denied request never
	// stores an object.
	if authErrs := rh.noteService.CanMutateNote(userId, noteId); len(authErrs) > 0 {
		abortWithErrors(ctx, authErrs)
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		abortWithErrors(ctx, []error{errs.ErrNoFileUploaded})
		return
	}

	src, err := file.Open()
	if err != nil {
		abortWithErrors(ctx, []error{errs.ErrUnableToOpenUploadedFile})
		return
	}
	defer src.Close()

	order, _ := strconv.Atoi(ctx.PostForm("order"))

	fileExt := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("note_%d_%s%s", noteId, uuid.New().String(), fileExt)

	url, err := rh.fileManagerService.UploadNoteImage(fileName, src, file.Size, file.Header.Get("Content-Type"), enums.FILE_BUCKET_NOTE_IMAGES)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrUnableToUploadFile},
		})
		return
	}

	image, imageErrs := rh.noteService.AddNoteImage(userId, noteId, url, order)
	if len(imageErrs) > 0 {
		abortWithErrors(ctx, imageErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    image,
	})
}

func (rh *RestHandler) GetNoteImages(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	noteId, err := uintParam(ctx, "id")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	images, imageErrs := rh.noteService.GetNoteImages(userId, noteId)
	if len(imageErrs) > 0 {
		abortWithErrors(ctx, imageErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    images,
	})
}

func (rh *RestHandler) DeleteNoteImage(ctx *gin.Context) {
	userId := utils.GetUserIdFromContext(ctx)
	imageId, err := uintParam(ctx, "imageId")
	if err != nil {
		abortWithErrors(ctx, []error{err})
		return
	}

	if deleteErrs := rh.noteService.DeleteNoteImage(userId, imageId); len(deleteErrs) > 0 {
		abortWithErrors(ctx, deleteErrs)
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
	})
}

package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody = Error("invalid request body")
	ErrInvalidRequest     = Error("invalid request")
	ErrInvalidParams      = Error("invalid params")

	ErrUserAlreadyExists = Error("user already exists")
	ErrUserNotFound      = Error("user not found")
	ErrUserIsNil         = Error("user is nil")
	ErrWrongPassword     = Error("wrong password")
	ErrInvalidUsername   = Error("invalid username")
	ErrInvalidEmail      = Error("invalid email")
	ErrInvalidPassword   = Error("invalid password")
	ErrInvalidUser       = Error("invalid user")
	ErrInvalidPageOrSize = Error("invalid page or size")
	ErrUnauthorized      = Error("unauthorized")

	ErrBoardNotFound     = Error("board not found")
	ErrNoteNotFound      = Error("note not found")
	ErrDrawingNotFound   = Error("drawing not found")
	ErrNoteImageNotFound = Error("note image not found")
	ErrColorNotFound     = Error("color not found")
	ErrViewStateNotFound = Error("view state not found")

	ErrPermissionDenied = Error("permission denied")

	ErrInvalidRole       = Error("invalid role")
	ErrMissingUsername   = Error("username is required")
	ErrCannotRemoveOwner = Error("cannot remove owner")
	ErrCannotGrantOwner  = Error("owner access cannot be granted")
	ErrInvalidBoardName  = Error("board name is empty or too long")
	ErrInvalidNoteSize   = Error("note width and height must be positive")
	ErrInvalidStroke     = Error("stroke width must be positive")
	ErrInvalidHexColor   = Error("invalid hex color")
	ErrColorNameTaken    = Error("color name already in use")
	ErrInvalidZoom       = Error("zoom must be positive")
	ErrInvalidBoardId    = Error("invalid board id")

	ErrBoardCreationFailed = Error("board creation failed")

	ErrNoFileUploaded           = Error("no file uploaded")
	ErrUnableToOpenUploadedFile = Error("unable to open uploaded file")
	ErrUnableToUploadFile       = Error("unable to upload file")
)

package enums

const (
	FILE_BUCKET_NOTE_IMAGES = "note-images"
)

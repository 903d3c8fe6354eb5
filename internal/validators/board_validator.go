package validators

import (
	"regexp"

	"collabBoard/internal/errs"
	"collabBoard/internal/models"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func ValidateBoardName(name string) error {
	if name == "" || len(name) > 255 {
		return errs.ErrInvalidBoardName
	}
	return nil
}

func ValidateRole(role string) error {
	if !models.IsValidRole(role) {
		return errs.ErrInvalidRole
	}
	return nil
}

func ValidateHexColor(hexColor string) error {
	if !hexColorPattern.MatchString(hexColor) {
		return errs.ErrInvalidHexColor
	}
	return nil
}

func ValidateNoteSize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return errs.ErrInvalidNoteSize
	}
	return nil
}

func ValidateStrokeWidth(strokeWidth float64) error {
	if strokeWidth <= 0 {
		return errs.ErrInvalidStroke
	}
	return nil
}

func ValidateZoom(zoom float64) error {
	if zoom <= 0 {
		return errs.ErrInvalidZoom
	}
	return nil
}

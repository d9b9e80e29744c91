package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

var SupportedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// EnsureDir makes sure the provided directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveImageWithThumb decodes an uploaded image, saves the original as
// <dir>/<id>.jpg and a 300px-wide thumbnail under <dir>/thumb/, and returns
// the stored filename.
func SaveImageWithThumb(file multipart.File, dir, id string) (string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	fileName := id + ".jpg"
	thumbDir := filepath.Join(dir, "thumb")
	if err := EnsureDir(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumb dir: %w", err)
	}

	if err := imaging.Save(img, filepath.Join(dir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(thumbDir, fileName)); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return fileName, nil
}

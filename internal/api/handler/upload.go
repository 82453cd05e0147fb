package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// errBadExtension rejects uploads outside the image allow-list. Handled as
// a structured 400, never a server fault.
var errBadExtension = errors.New("file extension not allowed, use .jpg, .jpeg or .png")

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// saveUpload stores the uploaded file under dir with a random name and
// returns the stored filename. The extension is checked before any byte
// is written.
func saveUpload(file *multipart.FileHeader, dir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", errBadExtension
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}
	return name, nil
}

// removeUpload deletes a stored file; used to roll back when the resource
// update is rejected after the file was written.
func removeUpload(dir, name string) {
	_ = os.Remove(filepath.Join(dir, name))
}

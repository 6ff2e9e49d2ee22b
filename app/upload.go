package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const (
	maxImageSize     = 5 << 20  // 5 MB
	maxMultipartSize = 10 << 20 // form fields plus one image
)

var (
	ErrImageTooLarge   = errors.New("Image size must be less than 5 MB")
	ErrUnsupportedMime = errors.New("Image must be type of png,jpg,jpeg,svg,webp,gif")
)

var supportedMimes = map[string]bool{
	"image/png":     true,
	"image/jpg":     true,
	"image/jpeg":    true,
	"image/svg+xml": true,
	"image/webp":    true,
	"image/gif":     true,
}

// imageDataURI reads an optional uploaded image from the multipart form and
// returns it as a base64 data URI. The upload is spooled through a scratch
// file that is removed on every exit path. Returns "" when no file was sent.
func (app *application) imageDataURI(r *http.Request, field string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	if header.Size > maxImageSize {
		return "", ErrImageTooLarge
	}

	mime := header.Header.Get("Content-Type")
	if !supportedMimes[mime] {
		return "", ErrUnsupportedMime
	}

	scratch := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(header.Filename))

	dst, err := os.Create(scratch)
	if err != nil {
		return "", err
	}
	defer func() {
		dst.Close()
		if err := os.Remove(scratch); err != nil {
			app.logger.Error("could not remove scratch file", "path", scratch, "error", err.Error())
		}
	}()

	_, err = io.Copy(dst, file)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(scratch)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

// isImageError reports whether err should surface as a 400 rather than a 500.
func isImageError(err error) bool {
	return errors.Is(err, ErrImageTooLarge) || errors.Is(err, ErrUnsupportedMime)
}

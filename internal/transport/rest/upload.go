package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// multipartMemory is the part of a multipart form kept in memory; larger
// files spill to disk.
const multipartMemory = 8 << 20

// upload stages multipart files on local disk for the media store and
// removes them when the request is done.
type upload struct {
	tempDir string
	files   []string
}

// parseMultipart limits the body to maxBytes and parses the form.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", fmt.Sprintf("upload exceeds %d bytes", maxBytes))
		}
		return domain.NewValidationError("body", "invalid multipart form")
	}
	return nil
}

// stage copies the file in field to a temp file. It returns nil when the
// field is absent.
func (u *upload) stage(r *http.Request, field string) (*domain.MediaBlob, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.NewValidationError(field, "invalid file")
	}
	defer file.Close()

	tmp, err := os.CreateTemp(u.tempDir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", field, err)
	}
	u.files = append(u.files, tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("stage %s: %w", field, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", field, err)
	}

	return &domain.MediaBlob{
		LocalPath:   tmp.Name(),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func (u *upload) cleanup(r *http.Request) {
	for _, f := range u.files {
		os.Remove(f) //nolint:errcheck
	}
	if r.MultipartForm != nil {
		r.MultipartForm.RemoveAll() //nolint:errcheck
	}
}

// formValue returns the value of field and whether the form carried it.
func formValue(r *http.Request, field string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vs, ok := r.MultipartForm.Value[field]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

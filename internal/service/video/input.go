package video

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// PublishInput holds an upload staged on local disk.
type PublishInput struct {
	Title       string
	Description string
	Video       domain.MediaBlob
	Thumbnail   domain.MediaBlob
}

// Validate checks all fields and collects all errors.
func (i PublishInput) Validate() error {
	var errs []domain.FieldError

	errs = appendTitleErrors(errs, i.Title)
	errs = appendDescriptionErrors(errs, i.Description)
	if i.Video.LocalPath == "" {
		errs = append(errs, domain.FieldError{Field: "videoFile", Message: "required"})
	}
	if i.Thumbnail.LocalPath == "" {
		errs = append(errs, domain.FieldError{Field: "thumbnail", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds an owner edit. nil fields are left unchanged.
type UpdateInput struct {
	VideoID     uuid.UUID
	Title       *string
	Description *string
	Thumbnail   *domain.MediaBlob
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.VideoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "videoId", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.Thumbnail == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title)
	}
	if i.Description != nil {
		errs = appendDescriptionErrors(errs, *i.Description)
	}
	if i.Thumbnail != nil && i.Thumbnail.LocalPath == "" {
		errs = append(errs, domain.FieldError{Field: "thumbnail", Message: "empty file"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(title) > MaxTitleLength:
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	return errs
}

func appendDescriptionErrors(errs []domain.FieldError, description string) []domain.FieldError {
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	return errs
}

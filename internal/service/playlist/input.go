package playlist

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

const (
	MaxNameLength        = 150
	MaxDescriptionLength = 5000
)

// CreateInput holds the parameters for creating a playlist. IsPublic
// defaults to true.
type CreateInput struct {
	Name        string
	Description string
	IsPublic    *bool
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("too long (max %d)", MaxNameLength)})
	}
	if utf8.RuneCountInString(i.Description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("too long (max %d)", MaxDescriptionLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the playlist fields to change. nil means unchanged.
type UpdateInput struct {
	PlaylistID  uuid.UUID
	Name        *string
	Description *string
	IsPublic    *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.PlaylistID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "playlistId", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.IsPublic == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "nothing to update"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if utf8.RuneCountInString(name) > MaxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("too long (max %d)", MaxNameLength)})
		}
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("too long (max %d)", MaxDescriptionLength)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// MemberInput names a playlist and a video.
type MemberInput struct {
	PlaylistID uuid.UUID
	VideoID    uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MemberInput) Validate() error {
	var errs []domain.FieldError

	if i.PlaylistID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "playlistId", Message: "required"})
	}
	if i.VideoID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "videoId", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

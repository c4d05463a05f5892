package engagement

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/vidstream-backend/internal/domain"
)

// ToggleInput names the edge to flip for the authenticated actor.
type ToggleInput struct {
	Kind     domain.EdgeKind
	TargetID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ToggleInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be one of video, comment, tweet, channel"})
	}
	if i.TargetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "targetId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ToggleResult reports whether the edge exists after the toggle.
type ToggleResult struct {
	Kind     domain.EdgeKind `json:"kind"`
	TargetID uuid.UUID       `json:"targetId"`
	Present  bool            `json:"present"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account. Users are provisioned by the identity service;
// this backend only reads them.
type User struct {
	ID        uuid.UUID
	Email     string
	Username  string
	FullName  string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Owner is the public projection of a User attached to content.
// It never carries the email address.
type Owner struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	AvatarURL *string   `json:"avatar,omitempty"`
}

// Public returns the public projection of the user.
func (u User) Public() Owner {
	return Owner{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}

// Viewer is the identity a read is performed for. An anonymous viewer has
// a zero ID; viewer-relative flags are not computed for it.
type Viewer struct {
	ID uuid.UUID
}

// Anonymous returns a viewer without identity.
func Anonymous() Viewer { return Viewer{} }

// ViewerOf returns a signed-in viewer.
func ViewerOf(id uuid.UUID) Viewer { return Viewer{ID: id} }

// IsAnonymous reports whether the viewer has no identity.
func (v Viewer) IsAnonymous() bool { return v.ID == uuid.Nil }

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Like is a directed edge from an actor to exactly one target.
// (ActorID, TargetKind, TargetID) is unique.
type Like struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	TargetKind LikeTarget
	TargetID   uuid.UUID
	CreatedAt  time.Time
}

// Subscription is a directed edge from a subscriber to a channel.
// (SubscriberID, ChannelID) is unique.
type Subscription struct {
	ID           uuid.UUID
	SubscriberID uuid.UUID
	ChannelID    uuid.UUID
	CreatedAt    time.Time
}

// ToggleOutcome is what a store-level edge flip did.
type ToggleOutcome int

const (
	// ToggleRemoved means an existing edge was deleted.
	ToggleRemoved ToggleOutcome = iota
	// ToggleCreated means a new edge was inserted.
	ToggleCreated
	// ToggleConflict means the edge was absent when the flip started but a
	// concurrent flip created it first.
	ToggleConflict
)

func (o ToggleOutcome) String() string {
	switch o {
	case ToggleRemoved:
		return "removed"
	case ToggleCreated:
		return "created"
	case ToggleConflict:
		return "conflict"
	}
	return "unknown"
}

// Present reports whether the edge exists once the flip has settled.
func (o ToggleOutcome) Present() bool { return o != ToggleRemoved }

package primary

import (
	"context"

	"github.com/example/quorum/internal/core/agenda"
)

// Meeting type values persisted and rendered.
const (
	MeetingTypeInPerson = "in-person"
	MeetingTypeVirtual  = "virtual"
)

// AgendaService defines the primary port for composing the draft meeting.
// The draft survives between CLI invocations and is discarded on commit
// or clear.
type AgendaService interface {
	// AddEntry appends a catalog topic to the draft agenda. Fails with
	// NotFoundError for unknown topics.
	AddEntry(ctx context.Context, topicID int64) error

	// RemoveEntry deletes the entry at the zero-based index. Fails with
	// RangeError when out of bounds.
	RemoveEntry(ctx context.Context, index int) error

	// MoveUp swaps the entry with its predecessor; index 0 is a no-op.
	MoveUp(ctx context.Context, index int) error

	// MoveDown swaps the entry with its successor; the last index is a no-op.
	MoveDown(ctx context.Context, index int) error

	// SetMeetingInfo records the draft meeting metadata.
	SetMeetingInfo(ctx context.Context, req MeetingInfoRequest) error

	// SetSigners overrides the default chair and secretary for the draft.
	SetSigners(ctx context.Context, chairID, secretaryID int64) error

	// Draft returns the current working state.
	Draft(ctx context.Context) (*DraftView, error)

	// Clear abandons the draft with no store interaction.
	Clear(ctx context.Context) error

	// Commit flushes the draft to the meeting record store in a single
	// transaction and clears it. Fails with ValidationError when the
	// agenda is empty.
	Commit(ctx context.Context) (int64, error)
}

// MeetingInfoRequest carries the draft meeting metadata.
type MeetingInfoRequest struct {
	Date     string
	Time     string
	Place    string
	Venue    string
	Type     string
	Platform string
}

// DraftView is the full working state of the in-progress meeting.
type DraftView struct {
	Date        string
	Time        string
	Place       string
	Venue       string
	Type        string
	Platform    string
	ChairID     int64
	SecretaryID int64
	Entries     []agenda.Entry
}

package primary

import "context"

// MeetingService defines the primary port over the meeting record store.
type MeetingService interface {
	// ListMeetings returns the full history, newest date first
	// (string-lexicographic on the free-text date).
	ListMeetings(ctx context.Context) ([]*MeetingSummary, error)

	// SearchMeetings returns meetings whose date or any topic description
	// contains term. A miss is an empty slice, not an error.
	SearchMeetings(ctx context.Context, term string) ([]*MeetingSummary, error)

	// TopicsForMeeting returns one meeting's agenda, position ascending.
	TopicsForMeeting(ctx context.Context, meetingID int64) ([]*MeetingTopic, error)

	// TopicSummary returns the concatenated "N. description (uses)" line
	// for a meeting, or "No topics" when the agenda is empty.
	TopicSummary(ctx context.Context, meetingID int64) (string, error)

	// DeleteMeeting cascades agenda items, signers, then the meeting.
	// Returns false (not an error) for unknown ids.
	DeleteMeeting(ctx context.Context, meetingID int64) (bool, error)

	// DeleteMeetings deletes several meetings, continuing past failures.
	DeleteMeetings(ctx context.Context, meetingIDs []int64) *BatchResult
}

// MeetingSummary is one history listing row.
type MeetingSummary struct {
	ID         int64
	Date       string
	Time       string
	Place      string
	Type       string
	TopicCount int
}

// MeetingTopic is one agenda line of a committed meeting.
type MeetingTopic struct {
	TopicID     int64
	Description string
	Category    string
	Position    int
}

package primary

import "context"

// StatsService is the read-only aggregation over the meeting record
// store. Counts reflect current store state: deleting a meeting reduces
// them.
type StatsService interface {
	// UsageCount returns how many agenda items reference the topic.
	UsageCount(ctx context.Context, topicID int64) (int, error)

	// UsageDates returns the first and last meeting date for the topic.
	UsageDates(ctx context.Context, topicID int64) (*UsageDates, error)

	// History returns every appearance of the topic, newest date first.
	History(ctx context.Context, topicID int64) ([]*TopicUse, error)
}

// UsageDates holds the min/max meeting date strings for a topic.
// Used=false means the topic never appeared on an agenda.
type UsageDates struct {
	First string
	Last  string
	Used  bool
}

// TopicUse is one appearance of a topic in the meeting history.
type TopicUse struct {
	Date     string
	Place    string
	Venue    string
	Type     string
	Position int
}

// Package secondary defines the repository interfaces the application
// depends on, implemented by the sqlite adapter.
package secondary

import "context"

// TopicRecord is a topic row at the persistence boundary.
type TopicRecord struct {
	ID          int64
	Description string
	Category    string
	Active      bool
	CreatedAt   string
}

// DelegateRecord is a delegate row at the persistence boundary.
type DelegateRecord struct {
	ID       int64
	Title    string
	Name     string
	Surname  string
	District string
	Titular  bool
	Active   bool
}

// MeetingRecord is a meeting row at the persistence boundary.
type MeetingRecord struct {
	ID       int64
	Date     string
	Time     string
	Place    string
	Venue    string
	Type     string
	Platform string
}

// MeetingSummaryRecord is one history listing row (topic count included).
type MeetingSummaryRecord struct {
	ID         int64
	Date       string
	Time       string
	Place      string
	Type       string
	TopicCount int
}

// AgendaItemRecord is one agenda line of a committed meeting, joined with
// its topic.
type AgendaItemRecord struct {
	TopicID     int64
	Description string
	Category    string
	Position    int
}

// NewAgendaItem is an agenda line to be written at commit time.
type NewAgendaItem struct {
	TopicID  int64
	Position int
}

// TopicUsageRecord is one appearance of a topic in the meeting history.
type TopicUsageRecord struct {
	Date     string
	Place    string
	Venue    string
	Type     string
	Position int
}

// TopicRepository persists the topic catalog.
type TopicRepository interface {
	// Create inserts a topic and returns its generated id.
	Create(ctx context.Context, description, category string) (int64, error)

	// GetByID retrieves a topic. Returns apperr.NotFoundError when absent.
	GetByID(ctx context.Context, id int64) (*TopicRecord, error)

	// Update rewrites description and category.
	Update(ctx context.Context, id int64, description, category string) error

	// SoftDelete sets active=0. The row is never removed so history stays
	// queryable.
	SoftDelete(ctx context.Context, id int64) error

	// List returns topics ordered by description (case-sensitive, as stored).
	List(ctx context.Context, activeOnly bool) ([]*TopicRecord, error)
}

// DelegateRepository persists the delegate roster.
type DelegateRepository interface {
	// Create inserts a delegate and returns its generated id.
	Create(ctx context.Context, rec *DelegateRecord) (int64, error)

	// GetByID retrieves a delegate. Returns apperr.NotFoundError when absent.
	GetByID(ctx context.Context, id int64) (*DelegateRecord, error)

	// Update rewrites all editable fields.
	Update(ctx context.Context, rec *DelegateRecord) error

	// SoftDelete sets active=0. Past signer references survive.
	SoftDelete(ctx context.Context, id int64) error

	// List returns delegates ordered by id ascending (insertion order is
	// the contract; signer defaults depend on it).
	List(ctx context.Context, activeOnly, titularOnly bool) ([]*DelegateRecord, error)

	// CountActive returns the number of active delegates (seed check).
	CountActive(ctx context.Context) (int, error)
}

// MeetingRepository persists the append-mostly meeting log.
type MeetingRepository interface {
	// CreateMeeting inserts a meeting row and returns its generated id.
	CreateMeeting(ctx context.Context, rec *MeetingRecord) (int64, error)

	// AddAgendaItem inserts one agenda line for a meeting.
	AddAgendaItem(ctx context.Context, meetingID, topicID int64, position int) (int64, error)

	// SaveSigners replaces the signer pair for a meeting atomically
	// (delete-then-insert in one transaction).
	SaveSigners(ctx context.Context, meetingID, chairID, secretaryID int64) error

	// CreateWithAgenda writes meeting, agenda items and signer pair in a
	// single transaction. Nothing remains queryable if any step fails.
	CreateWithAgenda(ctx context.Context, rec *MeetingRecord, items []NewAgendaItem, chairID, secretaryID int64) (int64, error)

	// GetByID retrieves a meeting. Returns apperr.NotFoundError when absent.
	GetByID(ctx context.Context, id int64) (*MeetingRecord, error)

	// List returns all meetings ordered by date descending
	// (string-lexicographic; dates are free text).
	List(ctx context.Context) ([]*MeetingSummaryRecord, error)

	// Search returns meetings whose date or any agenda topic description
	// contains term (case-sensitive substring, as stored).
	Search(ctx context.Context, term string) ([]*MeetingSummaryRecord, error)

	// TopicsForMeeting returns a meeting's agenda ordered by position.
	TopicsForMeeting(ctx context.Context, meetingID int64) ([]*AgendaItemRecord, error)

	// Delete cascades agenda items, then signers, then the meeting row.
	// Returns false when the meeting did not exist.
	Delete(ctx context.Context, meetingID int64) (bool, error)

	// UsageCount returns how many agenda items reference the topic.
	UsageCount(ctx context.Context, topicID int64) (int, error)

	// UsageDates returns the min and max meeting date for the topic;
	// ok=false when the topic was never used.
	UsageDates(ctx context.Context, topicID int64) (first, last string, ok bool, err error)

	// TopicHistory returns every appearance of the topic, newest date first.
	TopicHistory(ctx context.Context, topicID int64) ([]*TopicUsageRecord, error)
}

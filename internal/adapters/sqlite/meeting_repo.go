package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/ports/secondary"
)

// MeetingRepository implements secondary.MeetingRepository with SQLite.
type MeetingRepository struct {
	db *sql.DB
}

// NewMeetingRepository creates a new SQLite meeting repository.
func NewMeetingRepository(db *sql.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// summaryQuery is the shared shape of history listing rows. Dates are
// free text, so ORDER BY date DESC is string-lexicographic, not
// calendar order.
const summaryQuery = `
	SELECT r.id, r.date, r.time, r.place, r.type, COUNT(ai.id) AS topic_count
	FROM meetings r
	LEFT JOIN agenda_items ai ON r.id = ai.meeting_id
	GROUP BY r.id
	ORDER BY r.date DESC`

// CreateMeeting inserts a meeting row and returns its generated id.
func (r *MeetingRepository) CreateMeeting(ctx context.Context, rec *secondary.MeetingRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO meetings (date, time, place, venue, type, platform) VALUES (?, ?, ?, ?, ?, ?)",
		rec.Date, rec.Time, rec.Place, rec.Venue, rec.Type, rec.Platform,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create meeting: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read meeting id: %w", err)
	}
	return id, nil
}

// AddAgendaItem inserts one agenda line for a meeting.
func (r *MeetingRepository) AddAgendaItem(ctx context.Context, meetingID, topicID int64, position int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO agenda_items (meeting_id, topic_id, position) VALUES (?, ?, ?)",
		meetingID, topicID, position,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add agenda item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read agenda item id: %w", err)
	}
	return id, nil
}

// SaveSigners replaces the signer pair for a meeting. Delete-then-insert
// runs in one transaction so a partial failure never leaves zero or
// duplicate signer rows.
func (r *MeetingRepository) SaveSigners(ctx context.Context, meetingID, chairID, secretaryID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM signers WHERE meeting_id = ?", meetingID); err != nil {
		return fmt.Errorf("failed to clear signers: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO signers (meeting_id, role, delegate_id) VALUES (?, 'chair', ?)",
		meetingID, chairID,
	); err != nil {
		return fmt.Errorf("failed to save chair: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO signers (meeting_id, role, delegate_id) VALUES (?, 'secretary', ?)",
		meetingID, secretaryID,
	); err != nil {
		return fmt.Errorf("failed to save secretary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit signers: %w", err)
	}
	return nil
}

// CreateWithAgenda writes meeting, agenda items and signer pair in a
// single transaction. If any step fails, no partial meeting remains
// queryable.
func (r *MeetingRepository) CreateWithAgenda(ctx context.Context, rec *secondary.MeetingRecord, items []secondary.NewAgendaItem, chairID, secretaryID int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO meetings (date, time, place, venue, type, platform) VALUES (?, ?, ?, ?, ?, ?)",
		rec.Date, rec.Time, rec.Place, rec.Venue, rec.Type, rec.Platform,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create meeting: %w", err)
	}
	meetingID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read meeting id: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO agenda_items (meeting_id, topic_id, position) VALUES (?, ?, ?)",
			meetingID, item.TopicID, item.Position,
		); err != nil {
			return 0, fmt.Errorf("failed to add agenda item at position %d: %w", item.Position, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO signers (meeting_id, role, delegate_id) VALUES (?, 'chair', ?), (?, 'secretary', ?)",
		meetingID, chairID, meetingID, secretaryID,
	); err != nil {
		return 0, fmt.Errorf("failed to save signers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit meeting: %w", err)
	}
	return meetingID, nil
}

// GetByID retrieves a meeting by its id.
func (r *MeetingRepository) GetByID(ctx context.Context, id int64) (*secondary.MeetingRecord, error) {
	record := &secondary.MeetingRecord{}
	var time, place, venue, typ, platform sql.NullString

	err := r.db.QueryRowContext(ctx,
		"SELECT id, date, time, place, venue, type, platform FROM meetings WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Date, &time, &place, &venue, &typ, &platform)

	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("meeting", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	record.Time = time.String
	record.Place = place.String
	record.Venue = venue.String
	record.Type = typ.String
	record.Platform = platform.String
	return record, nil
}

// List retrieves all meetings, newest date first.
func (r *MeetingRepository) List(ctx context.Context) ([]*secondary.MeetingSummaryRecord, error) {
	rows, err := r.db.QueryContext(ctx, summaryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// Search retrieves meetings whose date or any agenda topic description
// contains term. instr() keeps the match case-sensitive; SQLite LIKE
// folds ASCII case.
func (r *MeetingRepository) Search(ctx context.Context, term string) ([]*secondary.MeetingSummaryRecord, error) {
	query := `
	SELECT DISTINCT r.id, r.date, r.time, r.place, r.type,
		(SELECT COUNT(*) FROM agenda_items ai2 WHERE ai2.meeting_id = r.id) AS topic_count
	FROM meetings r
	LEFT JOIN agenda_items ai ON r.id = ai.meeting_id
	LEFT JOIN topics t ON ai.topic_id = t.id
	WHERE instr(r.date, ?) > 0 OR instr(COALESCE(t.description, ''), ?) > 0
	ORDER BY r.date DESC`

	rows, err := r.db.QueryContext(ctx, query, term, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search meetings: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]*secondary.MeetingSummaryRecord, error) {
	var summaries []*secondary.MeetingSummaryRecord
	for rows.Next() {
		record := &secondary.MeetingSummaryRecord{}
		var time, place, typ sql.NullString

		if err := rows.Scan(&record.ID, &record.Date, &time, &place, &typ, &record.TopicCount); err != nil {
			return nil, fmt.Errorf("failed to scan meeting: %w", err)
		}

		record.Time = time.String
		record.Place = place.String
		record.Type = typ.String
		summaries = append(summaries, record)
	}
	return summaries, rows.Err()
}

// TopicsForMeeting retrieves one meeting's agenda ordered by position.
func (r *MeetingRepository) TopicsForMeeting(ctx context.Context, meetingID int64) ([]*secondary.AgendaItemRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.description, COALESCE(t.category, ''), ai.position
		FROM agenda_items ai
		JOIN topics t ON ai.topic_id = t.id
		WHERE ai.meeting_id = ?
		ORDER BY ai.position`,
		meetingID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting topics: %w", err)
	}
	defer rows.Close()

	var items []*secondary.AgendaItemRecord
	for rows.Next() {
		record := &secondary.AgendaItemRecord{}
		if err := rows.Scan(&record.TopicID, &record.Description, &record.Category, &record.Position); err != nil {
			return nil, fmt.Errorf("failed to scan agenda item: %w", err)
		}
		items = append(items, record)
	}
	return items, rows.Err()
}

// Delete cascades agenda items, then signers, then the meeting row, in
// one transaction. Returns false when the meeting never existed.
func (r *MeetingRepository) Delete(ctx context.Context, meetingID int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM agenda_items WHERE meeting_id = ?", meetingID); err != nil {
		return false, fmt.Errorf("failed to delete agenda items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM signers WHERE meeting_id = ?", meetingID); err != nil {
		return false, fmt.Errorf("failed to delete signers: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM meetings WHERE id = ?", meetingID)
	if err != nil {
		return false, fmt.Errorf("failed to delete meeting: %w", err)
	}
	affected, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit deletion: %w", err)
	}
	return affected > 0, nil
}

// UsageCount returns how many agenda items reference the topic, across
// the current store state.
func (r *MeetingRepository) UsageCount(ctx context.Context, topicID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM agenda_items WHERE topic_id = ?", topicID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count topic usage: %w", err)
	}
	return count, nil
}

// UsageDates returns the min and max meeting date for the topic.
func (r *MeetingRepository) UsageDates(ctx context.Context, topicID int64) (string, string, bool, error) {
	var first, last sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT MIN(r.date), MAX(r.date)
		FROM agenda_items ai
		JOIN meetings r ON ai.meeting_id = r.id
		WHERE ai.topic_id = ?`,
		topicID,
	).Scan(&first, &last)
	if err != nil {
		return "", "", false, fmt.Errorf("failed to get usage dates: %w", err)
	}
	if !first.Valid {
		return "", "", false, nil
	}
	return first.String, last.String, true, nil
}

// TopicHistory returns every appearance of the topic, newest date first.
func (r *MeetingRepository) TopicHistory(ctx context.Context, topicID int64) ([]*secondary.TopicUsageRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.date, COALESCE(r.place, ''), COALESCE(r.venue, ''), COALESCE(r.type, ''), ai.position
		FROM agenda_items ai
		JOIN meetings r ON ai.meeting_id = r.id
		WHERE ai.topic_id = ?
		ORDER BY r.date DESC`,
		topicID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get topic history: %w", err)
	}
	defer rows.Close()

	var uses []*secondary.TopicUsageRecord
	for rows.Next() {
		record := &secondary.TopicUsageRecord{}
		if err := rows.Scan(&record.Date, &record.Place, &record.Venue, &record.Type, &record.Position); err != nil {
			return nil, fmt.Errorf("failed to scan topic usage: %w", err)
		}
		uses = append(uses, record)
	}
	return uses, rows.Err()
}

// Ensure MeetingRepository implements the interface.
var _ secondary.MeetingRepository = (*MeetingRepository)(nil)

// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/ports/secondary"
)

// TopicRepository implements secondary.TopicRepository with SQLite.
type TopicRepository struct {
	db *sql.DB
}

// NewTopicRepository creates a new SQLite topic repository.
func NewTopicRepository(db *sql.DB) *TopicRepository {
	return &TopicRepository{db: db}
}

// Create inserts a topic and returns its generated id.
func (r *TopicRepository) Create(ctx context.Context, description, category string) (int64, error) {
	var cat sql.NullString
	if category != "" {
		cat = sql.NullString{String: category, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		"INSERT INTO topics (description, category) VALUES (?, ?)",
		description, cat,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create topic: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read topic id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a topic by its id.
func (r *TopicRepository) GetByID(ctx context.Context, id int64) (*secondary.TopicRecord, error) {
	var (
		cat       sql.NullString
		createdAt sql.NullString
	)

	record := &secondary.TopicRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, description, category, active, created_at FROM topics WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Description, &cat, &record.Active, &createdAt)

	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("topic", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	record.Category = cat.String
	record.CreatedAt = createdAt.String
	return record, nil
}

// Update rewrites description and category.
func (r *TopicRepository) Update(ctx context.Context, id int64, description, category string) error {
	var cat sql.NullString
	if category != "" {
		cat = sql.NullString{String: category, Valid: true}
	}

	res, err := r.db.ExecContext(ctx,
		"UPDATE topics SET description = ?, category = ? WHERE id = ?",
		description, cat, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return apperr.NotFound("topic", id)
	}
	return nil
}

// SoftDelete deactivates a topic. The row stays so usage history remains
// queryable.
func (r *TopicRepository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE topics SET active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return apperr.NotFound("topic", id)
	}
	return nil
}

// List retrieves topics ordered by description, as stored.
func (r *TopicRepository) List(ctx context.Context, activeOnly bool) ([]*secondary.TopicRecord, error) {
	query := "SELECT id, description, category, active, created_at FROM topics"
	if activeOnly {
		query += " WHERE active = 1"
	}
	query += " ORDER BY description"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	var topics []*secondary.TopicRecord
	for rows.Next() {
		var (
			cat       sql.NullString
			createdAt sql.NullString
		)

		record := &secondary.TopicRecord{}
		if err := rows.Scan(&record.ID, &record.Description, &cat, &record.Active, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}

		record.Category = cat.String
		record.CreatedAt = createdAt.String
		topics = append(topics, record)
	}

	return topics, rows.Err()
}

// Ensure TopicRepository implements the interface.
var _ secondary.TopicRepository = (*TopicRepository)(nil)

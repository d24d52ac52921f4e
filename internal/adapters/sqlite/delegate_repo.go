package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/ports/secondary"
)

// DelegateRepository implements secondary.DelegateRepository with SQLite.
type DelegateRepository struct {
	db *sql.DB
}

// NewDelegateRepository creates a new SQLite delegate repository.
func NewDelegateRepository(db *sql.DB) *DelegateRepository {
	return &DelegateRepository{db: db}
}

// Create inserts a delegate and returns its generated id.
func (r *DelegateRepository) Create(ctx context.Context, rec *secondary.DelegateRecord) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO delegates (title, name, surname, district, titular, active) VALUES (?, ?, ?, ?, ?, 1)",
		rec.Title, rec.Name, rec.Surname, rec.District, boolToInt(rec.Titular),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create delegate: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read delegate id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a delegate by its id.
func (r *DelegateRepository) GetByID(ctx context.Context, id int64) (*secondary.DelegateRecord, error) {
	record := &secondary.DelegateRecord{}
	var title, district sql.NullString

	err := r.db.QueryRowContext(ctx,
		"SELECT id, title, name, surname, district, titular, active FROM delegates WHERE id = ?",
		id,
	).Scan(&record.ID, &title, &record.Name, &record.Surname, &district, &record.Titular, &record.Active)

	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("delegate", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get delegate: %w", err)
	}

	record.Title = title.String
	record.District = district.String
	return record, nil
}

// Update rewrites all editable fields.
func (r *DelegateRepository) Update(ctx context.Context, rec *secondary.DelegateRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE delegates SET title = ?, name = ?, surname = ?, district = ?, titular = ? WHERE id = ?",
		rec.Title, rec.Name, rec.Surname, rec.District, boolToInt(rec.Titular), rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update delegate: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return apperr.NotFound("delegate", rec.ID)
	}
	return nil
}

// SoftDelete deactivates a delegate. Historical signer rows keep pointing
// at the row.
func (r *DelegateRepository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE delegates SET active = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete delegate: %w", err)
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		return apperr.NotFound("delegate", id)
	}
	return nil
}

// List retrieves delegates ordered by id ascending. Insertion order is
// load-bearing: default signer selection scans the seeded roster.
func (r *DelegateRepository) List(ctx context.Context, activeOnly, titularOnly bool) ([]*secondary.DelegateRecord, error) {
	query := "SELECT id, title, name, surname, district, titular, active FROM delegates WHERE 1=1"
	if activeOnly {
		query += " AND active = 1"
	}
	if titularOnly {
		query += " AND titular = 1"
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list delegates: %w", err)
	}
	defer rows.Close()

	var delegates []*secondary.DelegateRecord
	for rows.Next() {
		record := &secondary.DelegateRecord{}
		var title, district sql.NullString

		if err := rows.Scan(&record.ID, &title, &record.Name, &record.Surname, &district, &record.Titular, &record.Active); err != nil {
			return nil, fmt.Errorf("failed to scan delegate: %w", err)
		}

		record.Title = title.String
		record.District = district.String
		delegates = append(delegates, record)
	}

	return delegates, rows.Err()
}

// CountActive returns the number of active delegates.
func (r *DelegateRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM delegates WHERE active = 1",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count delegates: %w", err)
	}
	return count, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure DelegateRepository implements the interface.
var _ secondary.DelegateRepository = (*DelegateRepository)(nil)

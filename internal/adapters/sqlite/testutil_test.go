// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through setupTestDB, which loads the authoritative
// schema from db.GetSchemaSQL() so test schemas cannot drift from
// production. Do not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/quorum/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedTopic inserts a test topic and returns its id.
func seedTopic(t *testing.T, database *sql.DB, description, category string) int64 {
	t.Helper()
	res, err := database.Exec(
		"INSERT INTO topics (description, category) VALUES (?, ?)",
		description, category,
	)
	if err != nil {
		t.Fatalf("failed to seed topic: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedDelegate inserts a test delegate and returns its id.
func seedDelegate(t *testing.T, database *sql.DB, title, name, surname, district string) int64 {
	t.Helper()
	res, err := database.Exec(
		"INSERT INTO delegates (title, name, surname, district, titular, active) VALUES (?, ?, ?, ?, 1, 1)",
		title, name, surname, district,
	)
	if err != nil {
		t.Fatalf("failed to seed delegate: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedMeeting inserts a test meeting and returns its id.
func seedMeeting(t *testing.T, database *sql.DB, date, place, typ string) int64 {
	t.Helper()
	res, err := database.Exec(
		"INSERT INTO meetings (date, time, place, venue, type) VALUES (?, '18:00', ?, '', ?)",
		date, place, typ,
	)
	if err != nil {
		t.Fatalf("failed to seed meeting: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// seedAgendaItem links a topic to a meeting at a position.
func seedAgendaItem(t *testing.T, database *sql.DB, meetingID, topicID int64, position int) {
	t.Helper()
	_, err := database.Exec(
		"INSERT INTO agenda_items (meeting_id, topic_id, position) VALUES (?, ?, ?)",
		meetingID, topicID, position,
	)
	if err != nil {
		t.Fatalf("failed to seed agenda item: %v", err)
	}
}

// countRows returns the row count of a table filtered by meeting_id.
func countRows(t *testing.T, database *sql.DB, table string, meetingID int64) int {
	t.Helper()
	var count int
	err := database.QueryRow(
		"SELECT COUNT(*) FROM "+table+" WHERE meeting_id = ?", meetingID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count %s rows: %v", table, err)
	}
	return count
}

var testCtx = context.Background()

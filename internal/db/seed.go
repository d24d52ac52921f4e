package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with development fixtures: a small
// topic catalog and two committed meetings with agendas and signers.
// Assumes the delegate roster has already been seeded by the roster
// service.
func SeedFixtures(database *sql.DB) error {
	topics := []struct{ description, category string }{
		{"Approval of previous minutes", "Procedure"},
		{"Budget review", "Finance"},
		{"Membership applications", "Membership"},
		{"Continuing education program", "Education"},
		{"District facilities report", "Infrastructure"},
	}
	for _, t := range topics {
		if _, err := database.Exec(
			"INSERT INTO topics (description, category) VALUES (?, ?)",
			t.description, t.category,
		); err != nil {
			return fmt.Errorf("seed topics: %w", err)
		}
	}

	meetings := []struct {
		date, time, place, venue, typ, platform string
		topicIDs                                []int64
	}{
		{"2025-02-10", "18:00", "Headquarters", "Assembly Hall", "in-person", "", []int64{1, 2, 3}},
		{"2025-03-17", "18:30", "Remote", "", "virtual", "Zoom", []int64{2, 4}},
	}
	for _, m := range meetings {
		res, err := database.Exec(
			"INSERT INTO meetings (date, time, place, venue, type, platform) VALUES (?, ?, ?, ?, ?, ?)",
			m.date, m.time, m.place, m.venue, m.typ, m.platform,
		)
		if err != nil {
			return fmt.Errorf("seed meetings: %w", err)
		}
		meetingID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("seed meetings: %w", err)
		}

		for i, topicID := range m.topicIDs {
			if _, err := database.Exec(
				"INSERT INTO agenda_items (meeting_id, topic_id, position) VALUES (?, ?, ?)",
				meetingID, topicID, i+1,
			); err != nil {
				return fmt.Errorf("seed agenda items: %w", err)
			}
		}

		if _, err := database.Exec(
			"INSERT INTO signers (meeting_id, role, delegate_id) VALUES (?, 'chair', 4), (?, 'secretary', 5)",
			meetingID, meetingID,
		); err != nil {
			return fmt.Errorf("seed signers: %w", err)
		}
	}

	return nil
}

package sqlite_test

import (
	"testing"

	"github.com/example/quorum/internal/adapters/sqlite"
	"github.com/example/quorum/internal/ports/secondary"
)

func TestMeetingRepository_CreateWithAgenda(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)

	budget := seedTopic(t, database, "Budget review", "Finance")
	elections := seedTopic(t, database, "Staff elections", "")
	chair := seedDelegate(t, database, "Dr.", "A", "Smith", "Dist. I")
	secretary := seedDelegate(t, database, "Dr.", "B", "Jones", "Dist. II")

	meetingID, err := repo.CreateWithAgenda(testCtx,
		&secondary.MeetingRecord{Date: "2025-04-01", Time: "18:00", Place: "HQ", Type: "in-person"},
		[]secondary.NewAgendaItem{
			{TopicID: budget, Position: 1},
			{TopicID: elections, Position: 2},
		},
		chair, secretary,
	)
	if err != nil {
		t.Fatalf("CreateWithAgenda failed: %v", err)
	}

	items, err := repo.TopicsForMeeting(testCtx, meetingID)
	if err != nil {
		t.Fatalf("TopicsForMeeting failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 agenda items, got %d", len(items))
	}
	if items[0].Position != 1 || items[0].Description != "Budget review" {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].Position != 2 || items[1].Description != "Staff elections" {
		t.Errorf("unexpected second item: %+v", items[1])
	}

	if got := countRows(t, database, "signers", meetingID); got != 2 {
		t.Errorf("expected exactly 2 signer rows, got %d", got)
	}
}

// A failing agenda row must roll back the whole commit: no partial
// meeting stays queryable.
func TestMeetingRepository_CreateWithAgendaAllOrNothing(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)

	topic := seedTopic(t, database, "Only topic", "")
	chair := seedDelegate(t, database, "Dr.", "A", "Smith", "")
	secretary := seedDelegate(t, database, "Dr.", "B", "Jones", "")

	// Unknown topic id violates the agenda_items foreign key.
	_, err := repo.CreateWithAgenda(testCtx,
		&secondary.MeetingRecord{Date: "2025-04-01", Type: "in-person"},
		[]secondary.NewAgendaItem{
			{TopicID: topic, Position: 1},
			{TopicID: 9999, Position: 2},
		},
		chair, secretary,
	)
	if err == nil {
		t.Fatal("expected foreign key failure")
	}

	summaries, err := repo.List(testCtx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("partial meeting left behind: %+v", summaries)
	}
}

func TestMeetingRepository_SaveSignersReplacesPair(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)

	meetingID := seedMeeting(t, database, "2025-02-01", "HQ", "in-person")
	a := seedDelegate(t, database, "Dr.", "A", "One", "")
	b := seedDelegate(t, database, "Dr.", "B", "Two", "")
	c := seedDelegate(t, database, "Dr.", "C", "Three", "")

	if err := repo.SaveSigners(testCtx, meetingID, a, b); err != nil {
		t.Fatalf("first SaveSigners failed: %v", err)
	}
	if err := repo.SaveSigners(testCtx, meetingID, c, b); err != nil {
		t.Fatalf("second SaveSigners failed: %v", err)
	}

	if got := countRows(t, database, "signers", meetingID); got != 2 {
		t.Fatalf("expected exactly 2 signer rows after re-save, got %d", got)
	}

	var chairID int64
	err := database.QueryRow(
		"SELECT delegate_id FROM signers WHERE meeting_id = ? AND role = 'chair'", meetingID,
	).Scan(&chairID)
	if err != nil {
		t.Fatalf("chair row missing: %v", err)
	}
	if chairID != c {
		t.Errorf("chair not replaced: got %d, want %d", chairID, c)
	}
}

func TestMeetingRepository_ListOrderAndCount(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)

	topic := seedTopic(t, database, "Budget", "")
	older := seedMeeting(t, database, "2025-01-05", "HQ", "in-person")
	newer := seedMeeting(t, database, "2025-03-05", "HQ", "virtual")
	seedAgendaItem(t, database, older, topic, 1)

	summaries, err := repo.List(testCtx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 meetings, got %d", len(summaries))
	}
	if summaries[0].ID != newer {
		t.Errorf("expected newest date first, got meeting %d", summaries[0].ID)
	}
	if summaries[1].TopicCount != 1 || summaries[0].TopicCount != 0 {
		t.Errorf("unexpected topic counts: %+v", summaries)
	}
}

func TestMeetingRepository_SearchByDateAndTopic(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)

	budget := seedTopic(t, database, "Budget review", "")
	m1 := seedMeeting(t, database, "2025-03-14", "HQ", "in-person")
	m2 := seedMeeting(t, database, "2025-06-20", "HQ", "in-person")
	seedAgendaItem(t, database, m1, budget, 1)

	byDate, err := repo.Search(testCtx, "06-20")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byDate) != 1 || byDate[0].ID != m2 {
		t.Errorf("date search: got %+v", byDate)
	}

	byTopic, err := repo.Search(testCtx, "Budget")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byTopic) != 1 || byTopic[0].ID != m1 {
		t.Errorf("topic search: got %+v", byTopic)
	}

	// Substring match is case-sensitive, as stored.
	if hits, _ := repo.Search(testCtx, "budget"); len(hits) != 0 {
		t.Errorf("lowercase term should not match 'Budget review': %+v", hits)
	}

	// A miss is an empty result, not an error.
	miss, err := repo.Search(testCtx, "nonexistent")
	if err != nil {
		t.Fatalf("Search miss returned error: %v", err)
	}
	if len(miss) != 0 {
		t.Errorf("expected empty result, got %+v", miss)
	}
}

func TestMeetingRepository_DeleteCascades(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)

	topic := seedTopic(t, database, "Budget", "")
	chair := seedDelegate(t, database, "Dr.", "A", "Smith", "")
	secretary := seedDelegate(t, database, "Dr.", "B", "Jones", "")
	meetingID := seedMeeting(t, database, "2025-02-01", "HQ", "in-person")
	seedAgendaItem(t, database, meetingID, topic, 1)
	repo.SaveSigners(testCtx, meetingID, chair, secretary)

	found, err := repo.Delete(testCtx, meetingID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !found {
		t.Error("expected found=true for existing meeting")
	}

	if got := countRows(t, database, "agenda_items", meetingID); got != 0 {
		t.Errorf("agenda items not cascaded: %d left", got)
	}
	if got := countRows(t, database, "signers", meetingID); got != 0 {
		t.Errorf("signers not cascaded: %d left", got)
	}

	items, err := repo.TopicsForMeeting(testCtx, meetingID)
	if err != nil {
		t.Fatalf("TopicsForMeeting after delete failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty agenda after delete, got %+v", items)
	}
}

func TestMeetingRepository_DeleteMissingReportsNotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)

	found, err := repo.Delete(testCtx, 12345)
	if err != nil {
		t.Fatalf("Delete of missing meeting errored: %v", err)
	}
	if found {
		t.Error("expected found=false for unknown meeting")
	}
}

func TestMeetingRepository_UsageStats(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)
	topics := sqlite.NewTopicRepository(database)

	topic := seedTopic(t, database, "Budget", "")
	m1 := seedMeeting(t, database, "2025-01-10", "HQ", "in-person")
	m2 := seedMeeting(t, database, "2025-03-10", "HQ", "in-person")
	seedAgendaItem(t, database, m1, topic, 1)
	seedAgendaItem(t, database, m2, topic, 2)

	count, err := repo.UsageCount(testCtx, topic)
	if err != nil {
		t.Fatalf("UsageCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected usage 2, got %d", count)
	}

	first, last, ok, err := repo.UsageDates(testCtx, topic)
	if err != nil {
		t.Fatalf("UsageDates failed: %v", err)
	}
	if !ok || first != "2025-01-10" || last != "2025-03-10" {
		t.Errorf("unexpected dates: %q..%q ok=%v", first, last, ok)
	}

	history, err := repo.TopicHistory(testCtx, topic)
	if err != nil {
		t.Fatalf("TopicHistory failed: %v", err)
	}
	if len(history) != 2 || history[0].Date != "2025-03-10" {
		t.Errorf("expected newest-first history, got %+v", history)
	}

	// Soft-deleting the topic leaves the stats untouched.
	if err := topics.SoftDelete(testCtx, topic); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	count, _ = repo.UsageCount(testCtx, topic)
	if count != 2 {
		t.Errorf("usage count changed after soft delete: %d", count)
	}
	history, _ = repo.TopicHistory(testCtx, topic)
	if len(history) != 2 {
		t.Errorf("history changed after soft delete: %+v", history)
	}

	// Deleting a meeting reduces the count: stats reflect current state.
	repo.Delete(testCtx, m1)
	count, _ = repo.UsageCount(testCtx, topic)
	if count != 1 {
		t.Errorf("expected usage 1 after meeting deletion, got %d", count)
	}
}

func TestMeetingRepository_UsageDatesUnused(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewMeetingRepository(database)

	topic := seedTopic(t, database, "Never used", "")
	_, _, ok, err := repo.UsageDates(testCtx, topic)
	if err != nil {
		t.Fatalf("UsageDates failed: %v", err)
	}
	if ok {
		t.Error("expected ok=false for unused topic")
	}
}

package app_test

import (
	"testing"

	"github.com/example/quorum/internal/app"
	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/ports/secondary"
)

func TestStatsService_UnknownTopic(t *testing.T) {
	topics := newMockTopicRepo()
	svc := app.NewStatsService(topics, newMockMeetingRepo(topics))

	if _, err := svc.UsageCount(testCtx, 999); !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if _, err := svc.UsageDates(testCtx, 999); !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
	if _, err := svc.History(testCtx, 999); !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestStatsService_Aggregates(t *testing.T) {
	topics := newMockTopicRepo()
	meetings := newMockMeetingRepo(topics)
	svc := app.NewStatsService(topics, meetings)

	budget, _ := topics.Create(testCtx, "Budget review", "")
	meetings.CreateWithAgenda(testCtx,
		&secondary.MeetingRecord{Date: "2025-01-10", Place: "HQ", Type: "in-person"},
		[]secondary.NewAgendaItem{{TopicID: budget, Position: 1}}, 1, 2)
	meetings.CreateWithAgenda(testCtx,
		&secondary.MeetingRecord{Date: "2025-03-14", Place: "Annex", Type: "virtual"},
		[]secondary.NewAgendaItem{{TopicID: budget, Position: 3}}, 1, 2)

	count, err := svc.UsageCount(testCtx, budget)
	if err != nil {
		t.Fatalf("UsageCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected usage 2, got %d", count)
	}

	dates, err := svc.UsageDates(testCtx, budget)
	if err != nil {
		t.Fatalf("UsageDates failed: %v", err)
	}
	if !dates.Used || dates.First != "2025-01-10" || dates.Last != "2025-03-14" {
		t.Errorf("unexpected dates: %+v", dates)
	}

	history, err := svc.History(testCtx, budget)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(history) != 2 || history[0].Date != "2025-03-14" || history[0].Position != 3 {
		t.Errorf("expected newest-first history, got %+v", history)
	}
}

func TestStatsService_UnusedTopic(t *testing.T) {
	topics := newMockTopicRepo()
	svc := app.NewStatsService(topics, newMockMeetingRepo(topics))

	id, _ := topics.Create(testCtx, "Never used", "")
	dates, err := svc.UsageDates(testCtx, id)
	if err != nil {
		t.Fatalf("UsageDates failed: %v", err)
	}
	if dates.Used {
		t.Errorf("expected Used=false, got %+v", dates)
	}
}

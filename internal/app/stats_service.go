package app

import (
	"context"
	"fmt"

	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/ports/secondary"
)

// StatsService aggregates topic usage over the meeting history.
type StatsService struct {
	topics   secondary.TopicRepository
	meetings secondary.MeetingRepository
}

// NewStatsService creates a stats service.
func NewStatsService(topics secondary.TopicRepository, meetings secondary.MeetingRepository) *StatsService {
	return &StatsService{topics: topics, meetings: meetings}
}

var _ primary.StatsService = (*StatsService)(nil)

// UsageCount returns how many agenda items reference the topic.
func (s *StatsService) UsageCount(ctx context.Context, topicID int64) (int, error) {
	if _, err := s.topics.GetByID(ctx, topicID); err != nil {
		return 0, err
	}
	count, err := s.meetings.UsageCount(ctx, topicID)
	if err != nil {
		return 0, fmt.Errorf("failed to count usage: %w", err)
	}
	return count, nil
}

// UsageDates returns the first and last meeting date for the topic.
func (s *StatsService) UsageDates(ctx context.Context, topicID int64) (*primary.UsageDates, error) {
	if _, err := s.topics.GetByID(ctx, topicID); err != nil {
		return nil, err
	}
	first, last, ok, err := s.meetings.UsageDates(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage dates: %w", err)
	}
	return &primary.UsageDates{First: first, Last: last, Used: ok}, nil
}

// History returns every appearance of the topic, newest date first.
func (s *StatsService) History(ctx context.Context, topicID int64) ([]*primary.TopicUse, error) {
	if _, err := s.topics.GetByID(ctx, topicID); err != nil {
		return nil, err
	}
	recs, err := s.meetings.TopicHistory(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic history: %w", err)
	}

	uses := make([]*primary.TopicUse, 0, len(recs))
	for _, rec := range recs {
		uses = append(uses, &primary.TopicUse{
			Date:     rec.Date,
			Place:    rec.Place,
			Venue:    rec.Venue,
			Type:     rec.Type,
			Position: rec.Position,
		})
	}
	return uses, nil
}

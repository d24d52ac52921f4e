package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/ports/secondary"
)

// MeetingService exposes the committed meeting history.
type MeetingService struct {
	meetings secondary.MeetingRepository
}

// NewMeetingService creates a meeting service.
func NewMeetingService(meetings secondary.MeetingRepository) *MeetingService {
	return &MeetingService{meetings: meetings}
}

var _ primary.MeetingService = (*MeetingService)(nil)

// ListMeetings returns the full history, newest date first.
func (s *MeetingService) ListMeetings(ctx context.Context) ([]*primary.MeetingSummary, error) {
	recs, err := s.meetings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return summariesFromRecords(recs), nil
}

// SearchMeetings returns meetings whose date or topics contain term.
func (s *MeetingService) SearchMeetings(ctx context.Context, term string) ([]*primary.MeetingSummary, error) {
	recs, err := s.meetings.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search meetings: %w", err)
	}
	return summariesFromRecords(recs), nil
}

// TopicsForMeeting returns one meeting's agenda, position ascending.
func (s *MeetingService) TopicsForMeeting(ctx context.Context, meetingID int64) ([]*primary.MeetingTopic, error) {
	if _, err := s.meetings.GetByID(ctx, meetingID); err != nil {
		return nil, err
	}

	recs, err := s.meetings.TopicsForMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agenda: %w", err)
	}

	topics := make([]*primary.MeetingTopic, 0, len(recs))
	for _, rec := range recs {
		topics = append(topics, &primary.MeetingTopic{
			TopicID:     rec.TopicID,
			Description: rec.Description,
			Category:    rec.Category,
			Position:    rec.Position,
		})
	}
	return topics, nil
}

// TopicSummary returns the concatenated agenda line for a meeting:
// "1. Budget review (3), 2. Staff elections (1)". The parenthesised
// number is the topic's total usage across the whole history.
func (s *MeetingService) TopicSummary(ctx context.Context, meetingID int64) (string, error) {
	recs, err := s.meetings.TopicsForMeeting(ctx, meetingID)
	if err != nil {
		return "", fmt.Errorf("failed to load agenda: %w", err)
	}
	if len(recs) == 0 {
		return "No topics", nil
	}

	parts := make([]string, 0, len(recs))
	for _, rec := range recs {
		uses, err := s.meetings.UsageCount(ctx, rec.TopicID)
		if err != nil {
			return "", fmt.Errorf("failed to count usage: %w", err)
		}
		parts = append(parts, fmt.Sprintf("%d. %s (%d)", rec.Position, rec.Description, uses))
	}
	return strings.Join(parts, ", "), nil
}

// DeleteMeeting removes a meeting and its dependents.
func (s *MeetingService) DeleteMeeting(ctx context.Context, meetingID int64) (bool, error) {
	return s.meetings.Delete(ctx, meetingID)
}

// DeleteMeetings deletes several meetings, continuing past failures.
// An unknown id counts as a failure here: the caller asked for it by
// name.
func (s *MeetingService) DeleteMeetings(ctx context.Context, meetingIDs []int64) *primary.BatchResult {
	result := &primary.BatchResult{}
	for _, id := range meetingIDs {
		found, err := s.meetings.Delete(ctx, id)
		if err == nil && !found {
			err = fmt.Errorf("meeting %d not found", id)
		}
		if err != nil {
			result.Failed++
			if len(result.Errors) < batchErrorPreview {
				result.Errors = append(result.Errors, err.Error())
			}
			continue
		}
		result.Succeeded++
	}
	return result
}

func summariesFromRecords(recs []*secondary.MeetingSummaryRecord) []*primary.MeetingSummary {
	summaries := make([]*primary.MeetingSummary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, &primary.MeetingSummary{
			ID:         rec.ID,
			Date:       rec.Date,
			Time:       rec.Time,
			Place:      rec.Place,
			Type:       rec.Type,
			TopicCount: rec.TopicCount,
		})
	}
	return summaries
}

// Package app implements the primary ports on top of the repository
// interfaces.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/ports/secondary"
)

// batchErrorPreview caps how many per-item failure messages a batch
// result carries.
const batchErrorPreview = 5

// TopicService manages the topic catalog.
type TopicService struct {
	topics secondary.TopicRepository
}

// NewTopicService creates a topic service.
func NewTopicService(topics secondary.TopicRepository) *TopicService {
	return &TopicService{topics: topics}
}

var _ primary.TopicService = (*TopicService)(nil)

// AddTopic creates a catalog topic.
func (s *TopicService) AddTopic(ctx context.Context, req primary.AddTopicRequest) (int64, error) {
	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		return 0, apperr.Validationf("topic description is required")
	}

	id, err := s.topics.Create(ctx, desc, strings.TrimSpace(req.Category))
	if err != nil {
		return 0, fmt.Errorf("failed to create topic: %w", err)
	}
	return id, nil
}

// GetTopic retrieves a topic by id.
func (s *TopicService) GetTopic(ctx context.Context, topicID int64) (*primary.Topic, error) {
	rec, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return topicFromRecord(rec), nil
}

// UpdateTopic rewrites description and category.
func (s *TopicService) UpdateTopic(ctx context.Context, topicID int64, description, category string) error {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return apperr.Validationf("topic description is required")
	}
	return s.topics.Update(ctx, topicID, desc, strings.TrimSpace(category))
}

// DeleteTopic deactivates a topic, keeping its usage history queryable.
func (s *TopicService) DeleteTopic(ctx context.Context, topicID int64) error {
	return s.topics.SoftDelete(ctx, topicID)
}

// DeleteTopics deactivates several topics, continuing past failures.
func (s *TopicService) DeleteTopics(ctx context.Context, topicIDs []int64) *primary.BatchResult {
	result := &primary.BatchResult{}
	for _, id := range topicIDs {
		if err := s.topics.SoftDelete(ctx, id); err != nil {
			result.Failed++
			if len(result.Errors) < batchErrorPreview {
				result.Errors = append(result.Errors, fmt.Sprintf("topic %d: %v", id, err))
			}
			continue
		}
		result.Succeeded++
	}
	return result
}

// ListTopics returns topics ordered by description.
func (s *TopicService) ListTopics(ctx context.Context, activeOnly bool) ([]*primary.Topic, error) {
	recs, err := s.topics.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	topics := make([]*primary.Topic, 0, len(recs))
	for _, rec := range recs {
		topics = append(topics, topicFromRecord(rec))
	}
	return topics, nil
}

func topicFromRecord(rec *secondary.TopicRecord) *primary.Topic {
	return &primary.Topic{
		ID:          rec.ID,
		Description: rec.Description,
		Category:    rec.Category,
		Active:      rec.Active,
	}
}

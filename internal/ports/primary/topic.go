package primary

import "context"

// TopicService defines the primary port for catalog operations.
type TopicService interface {
	// AddTopic creates a topic. Fails with ValidationError when the
	// description is blank after trimming.
	AddTopic(ctx context.Context, req AddTopicRequest) (int64, error)

	// GetTopic retrieves a topic by id.
	GetTopic(ctx context.Context, topicID int64) (*Topic, error)

	// UpdateTopic rewrites description and category.
	UpdateTopic(ctx context.Context, topicID int64, description, category string) error

	// DeleteTopic deactivates a topic. Usage history stays queryable.
	DeleteTopic(ctx context.Context, topicID int64) error

	// DeleteTopics deactivates several topics, continuing past failures.
	DeleteTopics(ctx context.Context, topicIDs []int64) *BatchResult

	// ListTopics returns topics ordered by description.
	ListTopics(ctx context.Context, activeOnly bool) ([]*Topic, error)
}

// AddTopicRequest contains parameters for creating a topic.
type AddTopicRequest struct {
	Description string
	Category    string
}

// Topic represents a catalog entry at the port boundary.
type Topic struct {
	ID          int64
	Description string
	Category    string
	Active      bool
}

// BatchResult summarizes a partial-batch operation. Errors holds a capped
// preview of per-item failure messages.
type BatchResult struct {
	Succeeded int
	Failed    int
	Errors    []string
}

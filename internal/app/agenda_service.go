package app

import (
	"context"
	"fmt"

	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/config"
	"github.com/example/quorum/internal/core/agenda"
	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/ports/secondary"
)

// DraftStore persists the working draft between CLI invocations.
type DraftStore interface {
	Load() (config.Draft, error)
	Save(config.Draft) error
	Clear() error
}

// AgendaService manages the draft meeting and its commit.
type AgendaService struct {
	drafts    DraftStore
	topics    secondary.TopicRepository
	meetings  secondary.MeetingRepository
	delegates primary.DelegateService
}

// NewAgendaService creates an agenda service.
func NewAgendaService(drafts DraftStore, topics secondary.TopicRepository, meetings secondary.MeetingRepository, delegates primary.DelegateService) *AgendaService {
	return &AgendaService{drafts: drafts, topics: topics, meetings: meetings, delegates: delegates}
}

var _ primary.AgendaService = (*AgendaService)(nil)

// AddEntry appends an active catalog topic to the draft agenda.
func (s *AgendaService) AddEntry(ctx context.Context, topicID int64) error {
	rec, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return err
	}
	if !rec.Active {
		return apperr.Validationf("topic %d is inactive", topicID)
	}

	return s.mutate(func(b *agenda.Builder) error {
		b.AddEntry(rec.ID, rec.Description)
		return nil
	})
}

// RemoveEntry deletes the entry at the zero-based index.
func (s *AgendaService) RemoveEntry(ctx context.Context, index int) error {
	return s.mutate(func(b *agenda.Builder) error {
		return b.Remove(index)
	})
}

// MoveUp swaps the entry with its predecessor.
func (s *AgendaService) MoveUp(ctx context.Context, index int) error {
	return s.mutate(func(b *agenda.Builder) error {
		return b.MoveUp(index)
	})
}

// MoveDown swaps the entry with its successor.
func (s *AgendaService) MoveDown(ctx context.Context, index int) error {
	return s.mutate(func(b *agenda.Builder) error {
		return b.MoveDown(index)
	})
}

// mutate loads the draft, applies fn to its agenda and saves the result.
func (s *AgendaService) mutate(fn func(*agenda.Builder) error) error {
	d, err := s.drafts.Load()
	if err != nil {
		return err
	}

	b := agenda.Load(d.Entries)
	if err := fn(b); err != nil {
		return err
	}

	d.Entries = b.Entries()
	return s.drafts.Save(d)
}

// SetMeetingInfo records the draft meeting metadata.
func (s *AgendaService) SetMeetingInfo(ctx context.Context, req primary.MeetingInfoRequest) error {
	if req.Type != "" && req.Type != primary.MeetingTypeInPerson && req.Type != primary.MeetingTypeVirtual {
		return apperr.Validationf("meeting type must be %q or %q", primary.MeetingTypeInPerson, primary.MeetingTypeVirtual)
	}

	d, err := s.drafts.Load()
	if err != nil {
		return err
	}
	d.Date = req.Date
	d.Time = req.Time
	d.Place = req.Place
	d.Venue = req.Venue
	d.Type = req.Type
	d.Platform = req.Platform
	return s.drafts.Save(d)
}

// SetSigners overrides the default chair and secretary for the draft.
func (s *AgendaService) SetSigners(ctx context.Context, chairID, secretaryID int64) error {
	if _, err := s.delegates.GetDelegate(ctx, chairID); err != nil {
		return err
	}
	if _, err := s.delegates.GetDelegate(ctx, secretaryID); err != nil {
		return err
	}

	d, err := s.drafts.Load()
	if err != nil {
		return err
	}
	d.ChairID = chairID
	d.SecretaryID = secretaryID
	return s.drafts.Save(d)
}

// Draft returns the current working state.
func (s *AgendaService) Draft(ctx context.Context) (*primary.DraftView, error) {
	d, err := s.drafts.Load()
	if err != nil {
		return nil, err
	}
	return &primary.DraftView{
		Date:        d.Date,
		Time:        d.Time,
		Place:       d.Place,
		Venue:       d.Venue,
		Type:        d.Type,
		Platform:    d.Platform,
		ChairID:     d.ChairID,
		SecretaryID: d.SecretaryID,
		Entries:     d.Entries,
	}, nil
}

// Clear abandons the draft.
func (s *AgendaService) Clear(ctx context.Context) error {
	return s.drafts.Clear()
}

// Commit flushes the draft to the record store in a single transaction
// and clears it.
func (s *AgendaService) Commit(ctx context.Context) (int64, error) {
	d, err := s.drafts.Load()
	if err != nil {
		return 0, err
	}

	rec, items, chairID, secretaryID, err := s.resolveCommit(ctx, d)
	if err != nil {
		return 0, err
	}

	meetingID, err := s.meetings.CreateWithAgenda(ctx, rec, items, chairID, secretaryID)
	if err != nil {
		return 0, fmt.Errorf("failed to commit meeting: %w", err)
	}

	if err := s.drafts.Clear(); err != nil {
		return 0, fmt.Errorf("meeting %d committed but draft not cleared: %w", meetingID, err)
	}
	return meetingID, nil
}

// resolveCommit validates the draft and resolves defaults: meeting type
// falls back to in-person, signers to the roster defaults.
func (s *AgendaService) resolveCommit(ctx context.Context, d config.Draft) (*secondary.MeetingRecord, []secondary.NewAgendaItem, int64, int64, error) {
	if len(d.Entries) == 0 {
		return nil, nil, 0, 0, apperr.Validationf("cannot commit an empty agenda")
	}
	if d.Date == "" {
		return nil, nil, 0, 0, apperr.Validationf("meeting date is required")
	}

	typ := d.Type
	if typ == "" {
		typ = primary.MeetingTypeInPerson
	}

	chairID, secretaryID := d.ChairID, d.SecretaryID
	if chairID == 0 || secretaryID == 0 {
		defChair, defSecretary, err := s.delegates.DefaultSigners(ctx)
		if err != nil {
			return nil, nil, 0, 0, err
		}
		if chairID == 0 {
			chairID = defChair
		}
		if secretaryID == 0 {
			secretaryID = defSecretary
		}
	}

	items := make([]secondary.NewAgendaItem, 0, len(d.Entries))
	for _, e := range d.Entries {
		items = append(items, secondary.NewAgendaItem{TopicID: e.TopicID, Position: e.Position})
	}

	rec := &secondary.MeetingRecord{
		Date:     d.Date,
		Time:     d.Time,
		Place:    d.Place,
		Venue:    d.Venue,
		Type:     typ,
		Platform: d.Platform,
	}
	return rec, items, chairID, secretaryID, nil
}

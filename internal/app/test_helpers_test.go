package app_test

import (
	"context"
	"sort"
	"strings"

	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/config"
	"github.com/example/quorum/internal/ports/secondary"
)

var testCtx = context.Background()

// mockTopicRepo is an in-memory TopicRepository.
type mockTopicRepo struct {
	topics    map[int64]*secondary.TopicRecord
	nextID    int64
	createErr error
}

func newMockTopicRepo() *mockTopicRepo {
	return &mockTopicRepo{topics: map[int64]*secondary.TopicRecord{}}
}

var _ secondary.TopicRepository = (*mockTopicRepo)(nil)

func (m *mockTopicRepo) Create(ctx context.Context, description, category string) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	m.topics[m.nextID] = &secondary.TopicRecord{
		ID: m.nextID, Description: description, Category: category, Active: true,
	}
	return m.nextID, nil
}

func (m *mockTopicRepo) GetByID(ctx context.Context, id int64) (*secondary.TopicRecord, error) {
	rec, ok := m.topics[id]
	if !ok {
		return nil, apperr.NotFound("topic", id)
	}
	cp := *rec
	return &cp, nil
}

func (m *mockTopicRepo) Update(ctx context.Context, id int64, description, category string) error {
	rec, ok := m.topics[id]
	if !ok {
		return apperr.NotFound("topic", id)
	}
	rec.Description = description
	rec.Category = category
	return nil
}

func (m *mockTopicRepo) SoftDelete(ctx context.Context, id int64) error {
	rec, ok := m.topics[id]
	if !ok {
		return apperr.NotFound("topic", id)
	}
	rec.Active = false
	return nil
}

func (m *mockTopicRepo) List(ctx context.Context, activeOnly bool) ([]*secondary.TopicRecord, error) {
	var recs []*secondary.TopicRecord
	for _, rec := range m.topics {
		if activeOnly && !rec.Active {
			continue
		}
		cp := *rec
		recs = append(recs, &cp)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Description < recs[j].Description })
	return recs, nil
}

// mockDelegateRepo is an in-memory DelegateRepository preserving
// insertion order.
type mockDelegateRepo struct {
	delegates []*secondary.DelegateRecord
	nextID    int64
}

func newMockDelegateRepo() *mockDelegateRepo { return &mockDelegateRepo{} }

var _ secondary.DelegateRepository = (*mockDelegateRepo)(nil)

func (m *mockDelegateRepo) Create(ctx context.Context, rec *secondary.DelegateRecord) (int64, error) {
	m.nextID++
	cp := *rec
	cp.ID = m.nextID
	cp.Active = true
	m.delegates = append(m.delegates, &cp)
	return cp.ID, nil
}

func (m *mockDelegateRepo) find(id int64) *secondary.DelegateRecord {
	for _, rec := range m.delegates {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

func (m *mockDelegateRepo) GetByID(ctx context.Context, id int64) (*secondary.DelegateRecord, error) {
	rec := m.find(id)
	if rec == nil {
		return nil, apperr.NotFound("delegate", id)
	}
	cp := *rec
	return &cp, nil
}

func (m *mockDelegateRepo) Update(ctx context.Context, rec *secondary.DelegateRecord) error {
	cur := m.find(rec.ID)
	if cur == nil {
		return apperr.NotFound("delegate", rec.ID)
	}
	cur.Title, cur.Name, cur.Surname = rec.Title, rec.Name, rec.Surname
	cur.District, cur.Titular = rec.District, rec.Titular
	return nil
}

func (m *mockDelegateRepo) SoftDelete(ctx context.Context, id int64) error {
	rec := m.find(id)
	if rec == nil {
		return apperr.NotFound("delegate", id)
	}
	rec.Active = false
	return nil
}

func (m *mockDelegateRepo) List(ctx context.Context, activeOnly, titularOnly bool) ([]*secondary.DelegateRecord, error) {
	var recs []*secondary.DelegateRecord
	for _, rec := range m.delegates {
		if activeOnly && !rec.Active {
			continue
		}
		if titularOnly && !rec.Titular {
			continue
		}
		cp := *rec
		recs = append(recs, &cp)
	}
	return recs, nil
}

func (m *mockDelegateRepo) CountActive(ctx context.Context) (int, error) {
	count := 0
	for _, rec := range m.delegates {
		if rec.Active {
			count++
		}
	}
	return count, nil
}

// storedMeeting is one committed meeting inside the mock.
type storedMeeting struct {
	rec         secondary.MeetingRecord
	items       []secondary.NewAgendaItem
	chairID     int64
	secretaryID int64
}

// mockMeetingRepo is an in-memory MeetingRepository. It resolves topic
// descriptions through the topic repo it shares with the test.
type mockMeetingRepo struct {
	topics    *mockTopicRepo
	meetings  map[int64]*storedMeeting
	nextID    int64
	commitErr error
}

func newMockMeetingRepo(topics *mockTopicRepo) *mockMeetingRepo {
	return &mockMeetingRepo{topics: topics, meetings: map[int64]*storedMeeting{}}
}

var _ secondary.MeetingRepository = (*mockMeetingRepo)(nil)

func (m *mockMeetingRepo) CreateMeeting(ctx context.Context, rec *secondary.MeetingRecord) (int64, error) {
	m.nextID++
	m.meetings[m.nextID] = &storedMeeting{rec: *rec}
	return m.nextID, nil
}

func (m *mockMeetingRepo) AddAgendaItem(ctx context.Context, meetingID, topicID int64, position int) (int64, error) {
	mt, ok := m.meetings[meetingID]
	if !ok {
		return 0, apperr.NotFound("meeting", meetingID)
	}
	mt.items = append(mt.items, secondary.NewAgendaItem{TopicID: topicID, Position: position})
	return int64(len(mt.items)), nil
}

func (m *mockMeetingRepo) SaveSigners(ctx context.Context, meetingID, chairID, secretaryID int64) error {
	mt, ok := m.meetings[meetingID]
	if !ok {
		return apperr.NotFound("meeting", meetingID)
	}
	mt.chairID, mt.secretaryID = chairID, secretaryID
	return nil
}

func (m *mockMeetingRepo) CreateWithAgenda(ctx context.Context, rec *secondary.MeetingRecord, items []secondary.NewAgendaItem, chairID, secretaryID int64) (int64, error) {
	if m.commitErr != nil {
		return 0, m.commitErr
	}
	m.nextID++
	m.meetings[m.nextID] = &storedMeeting{
		rec:         *rec,
		items:       append([]secondary.NewAgendaItem(nil), items...),
		chairID:     chairID,
		secretaryID: secretaryID,
	}
	return m.nextID, nil
}

func (m *mockMeetingRepo) GetByID(ctx context.Context, id int64) (*secondary.MeetingRecord, error) {
	mt, ok := m.meetings[id]
	if !ok {
		return nil, apperr.NotFound("meeting", id)
	}
	cp := mt.rec
	cp.ID = id
	return &cp, nil
}

func (m *mockMeetingRepo) summaries(filter func(int64, *storedMeeting) bool) []*secondary.MeetingSummaryRecord {
	var recs []*secondary.MeetingSummaryRecord
	for id, mt := range m.meetings {
		if filter != nil && !filter(id, mt) {
			continue
		}
		recs = append(recs, &secondary.MeetingSummaryRecord{
			ID: id, Date: mt.rec.Date, Time: mt.rec.Time, Place: mt.rec.Place,
			Type: mt.rec.Type, TopicCount: len(mt.items),
		})
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Date > recs[j].Date })
	return recs
}

func (m *mockMeetingRepo) List(ctx context.Context) ([]*secondary.MeetingSummaryRecord, error) {
	return m.summaries(nil), nil
}

func (m *mockMeetingRepo) Search(ctx context.Context, term string) ([]*secondary.MeetingSummaryRecord, error) {
	return m.summaries(func(id int64, mt *storedMeeting) bool {
		if strings.Contains(mt.rec.Date, term) {
			return true
		}
		for _, it := range mt.items {
			if rec, ok := m.topics.topics[it.TopicID]; ok && strings.Contains(rec.Description, term) {
				return true
			}
		}
		return false
	}), nil
}

func (m *mockMeetingRepo) TopicsForMeeting(ctx context.Context, meetingID int64) ([]*secondary.AgendaItemRecord, error) {
	mt, ok := m.meetings[meetingID]
	if !ok {
		return nil, nil
	}
	items := append([]secondary.NewAgendaItem(nil), mt.items...)
	sort.Slice(items, func(i, j int) bool { return items[i].Position < items[j].Position })

	var recs []*secondary.AgendaItemRecord
	for _, it := range items {
		rec := &secondary.AgendaItemRecord{TopicID: it.TopicID, Position: it.Position}
		if topic, ok := m.topics.topics[it.TopicID]; ok {
			rec.Description = topic.Description
			rec.Category = topic.Category
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (m *mockMeetingRepo) Delete(ctx context.Context, meetingID int64) (bool, error) {
	if _, ok := m.meetings[meetingID]; !ok {
		return false, nil
	}
	delete(m.meetings, meetingID)
	return true, nil
}

func (m *mockMeetingRepo) UsageCount(ctx context.Context, topicID int64) (int, error) {
	count := 0
	for _, mt := range m.meetings {
		for _, it := range mt.items {
			if it.TopicID == topicID {
				count++
			}
		}
	}
	return count, nil
}

func (m *mockMeetingRepo) UsageDates(ctx context.Context, topicID int64) (first, last string, ok bool, err error) {
	for _, mt := range m.meetings {
		for _, it := range mt.items {
			if it.TopicID != topicID {
				continue
			}
			if !ok || mt.rec.Date < first {
				first = mt.rec.Date
			}
			if !ok || mt.rec.Date > last {
				last = mt.rec.Date
			}
			ok = true
		}
	}
	return first, last, ok, nil
}

func (m *mockMeetingRepo) TopicHistory(ctx context.Context, topicID int64) ([]*secondary.TopicUsageRecord, error) {
	var recs []*secondary.TopicUsageRecord
	for _, mt := range m.meetings {
		for _, it := range mt.items {
			if it.TopicID != topicID {
				continue
			}
			recs = append(recs, &secondary.TopicUsageRecord{
				Date: mt.rec.Date, Place: mt.rec.Place, Venue: mt.rec.Venue,
				Type: mt.rec.Type, Position: it.Position,
			})
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Date > recs[j].Date })
	return recs, nil
}

// memDraftStore keeps the draft in memory.
type memDraftStore struct {
	draft   config.Draft
	cleared int
}

func (s *memDraftStore) Load() (config.Draft, error) { return s.draft, nil }
func (s *memDraftStore) Save(d config.Draft) error   { s.draft = d; return nil }
func (s *memDraftStore) Clear() error {
	s.draft = config.Draft{}
	s.cleared++
	return nil
}

// memSettingsStore serves a fixed settings value.
type memSettingsStore struct {
	settings config.Settings
}

func (s *memSettingsStore) Load() (config.Settings, error) { return s.settings, nil }

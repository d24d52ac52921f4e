// Package agenda contains the pure ordering logic for an in-progress
// order of business. The builder owns no persistence; services feed it
// validated topics and flush it on commit.
package agenda

import "github.com/example/quorum/internal/apperr"

// Entry is one working line of the draft agenda. Description is cached so
// the draft can be displayed without touching the catalog again.
type Entry struct {
	TopicID     int64  `json:"topic_id"`
	Position    int    `json:"position"`
	Description string `json:"description"`
}

// Builder holds the ordered working list. Positions are kept as a
// contiguous 1..N permutation after every mutation.
type Builder struct {
	entries []Entry
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{}
}

// Load restores a builder from previously saved entries, renumbering so
// the contiguity invariant holds regardless of what was persisted.
func Load(entries []Entry) *Builder {
	b := &Builder{entries: append([]Entry(nil), entries...)}
	b.renumber()
	return b
}

// Len returns the number of entries.
func (b *Builder) Len() int { return len(b.entries) }

// Entries returns a copy of the working list.
func (b *Builder) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

// AddEntry appends a topic at the end of the agenda.
func (b *Builder) AddEntry(topicID int64, description string) {
	b.entries = append(b.entries, Entry{
		TopicID:     topicID,
		Position:    len(b.entries) + 1,
		Description: description,
	})
}

// MoveUp swaps the entry at index with its predecessor. Index 0 is a
// no-op, not an error.
func (b *Builder) MoveUp(index int) error {
	if index < 0 || index >= len(b.entries) {
		return &apperr.RangeError{Index: index, Length: len(b.entries)}
	}
	if index == 0 {
		return nil
	}
	b.entries[index], b.entries[index-1] = b.entries[index-1], b.entries[index]
	b.renumber()
	return nil
}

// MoveDown swaps the entry at index with its successor. The last index is
// a no-op, not an error.
func (b *Builder) MoveDown(index int) error {
	if index < 0 || index >= len(b.entries) {
		return &apperr.RangeError{Index: index, Length: len(b.entries)}
	}
	if index == len(b.entries)-1 {
		return nil
	}
	b.entries[index], b.entries[index+1] = b.entries[index+1], b.entries[index]
	b.renumber()
	return nil
}

// Remove deletes the entry at index and renumbers the remainder.
func (b *Builder) Remove(index int) error {
	if index < 0 || index >= len(b.entries) {
		return &apperr.RangeError{Index: index, Length: len(b.entries)}
	}
	b.entries = append(b.entries[:index], b.entries[index+1:]...)
	b.renumber()
	return nil
}

// Positions returns the current position column, in list order.
func (b *Builder) Positions() []int {
	out := make([]int, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Position
	}
	return out
}

func (b *Builder) renumber() {
	for i := range b.entries {
		b.entries[i].Position = i + 1
	}
}

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/example/quorum/internal/adapters/fileio"
	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/ports/secondary"
	"github.com/example/quorum/internal/render"
)

// TransferService handles bulk import and export.
type TransferService struct {
	topics     secondary.TopicRepository
	meetings   secondary.MeetingRepository
	meetingSvc primary.MeetingService
}

// NewTransferService creates a transfer service.
func NewTransferService(topics secondary.TopicRepository, meetings secondary.MeetingRepository, meetingSvc primary.MeetingService) *TransferService {
	return &TransferService{topics: topics, meetings: meetings, meetingSvc: meetingSvc}
}

var _ primary.TransferService = (*TransferService)(nil)

// ImportTopics loads topic pairs from an .xlsx or .docx file and
// creates them. Per-item failures do not abort the batch.
func (s *TransferService) ImportTopics(ctx context.Context, path string) (*primary.ImportSummary, error) {
	pairs, err := fileio.LoadTopics(path)
	if err != nil {
		return nil, err
	}

	summary := &primary.ImportSummary{}
	for _, p := range pairs {
		if _, err := s.topics.Create(ctx, p.Description, p.Category); err != nil {
			summary.Failed++
			if len(summary.Errors) < batchErrorPreview {
				summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", p.Description, err))
			}
			continue
		}
		summary.Imported++
	}
	return summary, nil
}

// ExportTopics writes the full catalog with usage counts to dir.
func (s *TransferService) ExportTopics(ctx context.Context, dir, format string) (*primary.ExportResult, error) {
	recs, err := s.topics.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	rows := make([]render.TopicRow, 0, len(recs))
	for _, rec := range recs {
		uses, err := s.meetings.UsageCount(ctx, rec.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count usage: %w", err)
		}
		rows = append(rows, render.TopicRow{
			Description: rec.Description,
			Category:    rec.Category,
			Uses:        uses,
			Active:      rec.Active,
		})
	}

	var data []byte
	switch format {
	case primary.FormatXLSX:
		data, err = render.TopicsXLSX(rows)
	case primary.FormatPDF:
		data, err = render.TopicsPDF(rows)
	default:
		return nil, apperr.Validationf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, apperr.Render("failed to render topic export", err)
	}

	path, err := writeExport(dir, "Topics", format, data)
	if err != nil {
		return nil, err
	}
	return &primary.ExportResult{Path: path, Count: len(rows)}, nil
}

// ExportHistory writes the meeting history with topic summaries to dir.
func (s *TransferService) ExportHistory(ctx context.Context, dir, format string) (*primary.ExportResult, error) {
	recs, err := s.meetings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	rows := make([]render.HistoryRow, 0, len(recs))
	for _, rec := range recs {
		topics, err := s.meetingSvc.TopicSummary(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, render.HistoryRow{
			ID:     rec.ID,
			Date:   rec.Date,
			Time:   rec.Time,
			Place:  rec.Place,
			Type:   rec.Type,
			Topics: topics,
		})
	}

	var data []byte
	switch format {
	case primary.FormatXLSX:
		data, err = render.HistoryXLSX(rows)
	case primary.FormatPDF:
		data, err = render.HistoryPDF(rows)
	default:
		return nil, apperr.Validationf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, apperr.Render("failed to render history export", err)
	}

	path, err := writeExport(dir, "MeetingHistory", format, data)
	if err != nil {
		return nil, err
	}
	return &primary.ExportResult{Path: path, Count: len(rows)}, nil
}

// writeExport writes data to dir under a date-stamped name.
func writeExport(dir, prefix, format string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", apperr.IO(fmt.Sprintf("cannot create export directory %s", dir), err)
	}

	name := fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102"), format)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", apperr.IO(fmt.Sprintf("cannot write %s", path), err)
	}
	return path, nil
}

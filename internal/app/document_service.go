package app

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/config"
	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/render"
)

// SettingsStore loads the document-generation preferences.
type SettingsStore interface {
	Load() (config.Settings, error)
}

// DocumentService renders the draft into documents and commits it on
// generation.
type DocumentService struct {
	agenda    primary.AgendaService
	delegates primary.DelegateService
	settings  SettingsStore
}

// NewDocumentService creates a document service.
func NewDocumentService(agendaSvc primary.AgendaService, delegates primary.DelegateService, settings SettingsStore) *DocumentService {
	return &DocumentService{agenda: agendaSvc, delegates: delegates, settings: settings}
}

var _ primary.DocumentService = (*DocumentService)(nil)

// Preview renders the plain-text preview of the draft. Never commits.
func (s *DocumentService) Preview(ctx context.Context) (string, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	return render.Text(snap), nil
}

// Generate renders the draft, writes the file under the output
// directory, then commits the draft meeting to the record store.
func (s *DocumentService) Generate(ctx context.Context, format string) (*primary.GenerateResult, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case primary.FormatPDF:
		data, err = render.PDF(snap)
	case primary.FormatDOCX:
		data, err = render.DOCX(snap)
	default:
		return nil, apperr.Validationf("unsupported document format %q", format)
	}
	if err != nil {
		return nil, apperr.Render(fmt.Sprintf("failed to render %s", format), err)
	}

	settings, err := s.settings.Load()
	if err != nil {
		return nil, err
	}
	outDir, err := settings.ResolveOutputDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, apperr.IO(fmt.Sprintf("cannot create output directory %s", outDir), err)
	}

	name := fmt.Sprintf("ORDER_OF_BUSINESS_%s.%s", time.Now().Format("20060102_150405"), format)
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, apperr.IO(fmt.Sprintf("cannot write %s", path), err)
	}

	meetingID, err := s.agenda.Commit(ctx)
	if err != nil {
		return nil, fmt.Errorf("document written to %s but meeting not recorded: %w", path, err)
	}
	return &primary.GenerateResult{Path: path, MeetingID: meetingID}, nil
}

// snapshot freezes the draft, roster, signer names, settings and logo
// into an immutable render input.
func (s *DocumentService) snapshot(ctx context.Context) (render.Snapshot, error) {
	draft, err := s.agenda.Draft(ctx)
	if err != nil {
		return render.Snapshot{}, err
	}
	if len(draft.Entries) == 0 {
		return render.Snapshot{}, apperr.Validationf("cannot render an empty agenda")
	}

	settings, err := s.settings.Load()
	if err != nil {
		return render.Snapshot{}, err
	}

	roster, err := s.delegates.ListDelegates(ctx, true, true)
	if err != nil {
		return render.Snapshot{}, err
	}

	chairID, secretaryID := draft.ChairID, draft.SecretaryID
	if chairID == 0 || secretaryID == 0 {
		defChair, defSecretary, err := s.delegates.DefaultSigners(ctx)
		if err != nil {
			return render.Snapshot{}, err
		}
		if chairID == 0 {
			chairID = defChair
		}
		if secretaryID == 0 {
			secretaryID = defSecretary
		}
	}
	chair, err := s.delegates.GetDelegate(ctx, chairID)
	if err != nil {
		return render.Snapshot{}, err
	}
	secretary, err := s.delegates.GetDelegate(ctx, secretaryID)
	if err != nil {
		return render.Snapshot{}, err
	}

	snap := render.Snapshot{
		Title:           settings.HeaderText,
		Subtitle:        settings.SubheaderText,
		TitleFontFamily: settings.TitleFontFamily,
		TitleFontSize:   settings.TitleFontSize,
		TitleBold:       settings.TitleBold,
		SubtitleBold:    settings.SubtitleBold,
		Date:            draft.Date,
		Time:            draft.Time,
		Place:           draft.Place,
		Venue:           draft.Venue,
		Type:            draft.Type,
		Platform:        draft.Platform,
		ChairName:       chair.FullName(),
		SecretaryName:   secretary.FullName(),
		LogoWidthCm:     settings.LogoWidthCm,
		LogoHeightCm:    settings.LogoHeightCm,
	}
	for _, d := range roster {
		snap.Delegates = append(snap.Delegates, render.Delegate{
			FullName: d.FullName(),
			District: d.District,
		})
	}
	for _, e := range draft.Entries {
		snap.Items = append(snap.Items, render.Item{Position: e.Position, Description: e.Description})
	}

	// A broken logo must not block generation: skip it and keep going.
	if settings.LogoPath != "" {
		data, err := os.ReadFile(settings.LogoPath)
		if err != nil {
			log.Printf("skipping logo: %v", err)
			return snap, nil
		}
		_, format, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			log.Printf("skipping logo %s: %v", settings.LogoPath, err)
			return snap, nil
		}
		snap.Logo = data
		snap.LogoFormat = format
	}
	return snap, nil
}

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/ports/primary"
	"github.com/example/quorum/internal/ports/secondary"
)

// seedRoster is the fixed roster installed into an empty database, in
// district order. Insertion order matters: listings and default signer
// selection walk it by id.
var seedRoster = []secondary.DelegateRecord{
	{Title: "Dr.", Name: "JULIO C.", Surname: "MORENO", District: "Dist. I", Titular: true},
	{Title: "Dr.", Name: "JORGE E.", Surname: "AGUGLIARO", District: "Dist. II", Titular: true},
	{Title: "Dr.", Name: "MAURICIO", Surname: "ESKINAZI", District: "Dist. III", Titular: true},
	{Title: "Dr.", Name: "RUBEN H.", Surname: "TUCCI", District: "Dist. IV", Titular: true},
	{Title: "Dr.", Name: "JULIO D.", Surname: "DUNOGENT", District: "Dist. V", Titular: true},
	{Title: "Dr.", Name: "JORGE OSCAR", Surname: "LUSARDI", District: "Dist. VI", Titular: true},
	{Title: "Dr.", Name: "HORACIO MARIO", Surname: "CARDUS", District: "Dist. VII", Titular: true},
	{Title: "Dr.", Name: "TOMAS", Surname: "GUANELLA", District: "Dist. VIII", Titular: true},
	{Title: "Dr.", Name: "GUSTAVO", Surname: "ARTURI", District: "Dist. IX", Titular: true},
	{Title: "Dra.", Name: "ROSA ANA", Surname: "DE FINO", District: "Dist. X", Titular: true},
}

// Default signer surnames, matched as substrings against the roster.
const (
	defaultChairSurname     = "TUCCI"
	defaultSecretarySurname = "DUNOGENT"
)

// DelegateService manages the delegate roster.
type DelegateService struct {
	delegates secondary.DelegateRepository
}

// NewDelegateService creates a delegate service.
func NewDelegateService(delegates secondary.DelegateRepository) *DelegateService {
	return &DelegateService{delegates: delegates}
}

var _ primary.DelegateService = (*DelegateService)(nil)

// AddDelegate creates a delegate.
func (s *DelegateService) AddDelegate(ctx context.Context, req primary.AddDelegateRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	surname := strings.TrimSpace(req.Surname)
	if name == "" || surname == "" {
		return 0, apperr.Validationf("delegate name and surname are required")
	}

	id, err := s.delegates.Create(ctx, &secondary.DelegateRecord{
		Title:    strings.TrimSpace(req.Title),
		Name:     name,
		Surname:  surname,
		District: strings.TrimSpace(req.District),
		Titular:  req.Titular,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create delegate: %w", err)
	}
	return id, nil
}

// GetDelegate retrieves a delegate by id.
func (s *DelegateService) GetDelegate(ctx context.Context, delegateID int64) (*primary.Delegate, error) {
	rec, err := s.delegates.GetByID(ctx, delegateID)
	if err != nil {
		return nil, err
	}
	return delegateFromRecord(rec), nil
}

// UpdateDelegate rewrites all editable fields.
func (s *DelegateService) UpdateDelegate(ctx context.Context, req primary.UpdateDelegateRequest) error {
	name := strings.TrimSpace(req.Name)
	surname := strings.TrimSpace(req.Surname)
	if name == "" || surname == "" {
		return apperr.Validationf("delegate name and surname are required")
	}

	return s.delegates.Update(ctx, &secondary.DelegateRecord{
		ID:       req.DelegateID,
		Title:    strings.TrimSpace(req.Title),
		Name:     name,
		Surname:  surname,
		District: strings.TrimSpace(req.District),
		Titular:  req.Titular,
	})
}

// DeleteDelegate deactivates a delegate. Historical signer rows survive.
func (s *DelegateService) DeleteDelegate(ctx context.Context, delegateID int64) error {
	return s.delegates.SoftDelete(ctx, delegateID)
}

// ListDelegates returns delegates in insertion order.
func (s *DelegateService) ListDelegates(ctx context.Context, activeOnly, titularOnly bool) ([]*primary.Delegate, error) {
	recs, err := s.delegates.List(ctx, activeOnly, titularOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list delegates: %w", err)
	}

	delegates := make([]*primary.Delegate, 0, len(recs))
	for _, rec := range recs {
		delegates = append(delegates, delegateFromRecord(rec))
	}
	return delegates, nil
}

// EnsureSeeded installs the fixed roster when the database is empty.
// A roster the user has since edited is left alone.
func (s *DelegateService) EnsureSeeded(ctx context.Context) error {
	count, err := s.delegates.CountActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to check roster: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range seedRoster {
		if _, err := s.delegates.Create(ctx, &seedRoster[i]); err != nil {
			return fmt.Errorf("failed to seed delegate %s: %w", seedRoster[i].Surname, err)
		}
	}
	return nil
}

// DefaultSigners picks the default chair and secretary from the active
// titular roster by surname, falling back to the first entries when the
// usual signers are gone.
func (s *DelegateService) DefaultSigners(ctx context.Context) (chairID, secretaryID int64, err error) {
	recs, err := s.delegates.List(ctx, true, true)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list delegates: %w", err)
	}
	if len(recs) == 0 {
		return 0, 0, apperr.Validationf("no active titular delegates to sign")
	}

	chairID = recs[0].ID
	secretaryID = recs[0].ID
	if len(recs) > 1 {
		secretaryID = recs[1].ID
	}
	for _, rec := range recs {
		if strings.Contains(rec.Surname, defaultChairSurname) {
			chairID = rec.ID
		}
		if strings.Contains(rec.Surname, defaultSecretarySurname) {
			secretaryID = rec.ID
		}
	}
	return chairID, secretaryID, nil
}

func delegateFromRecord(rec *secondary.DelegateRecord) *primary.Delegate {
	return &primary.Delegate{
		ID:       rec.ID,
		Title:    rec.Title,
		Name:     rec.Name,
		Surname:  rec.Surname,
		District: rec.District,
		Titular:  rec.Titular,
		Active:   rec.Active,
	}
}

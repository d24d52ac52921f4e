package app_test

import (
	"testing"

	"github.com/example/quorum/internal/app"
	"github.com/example/quorum/internal/apperr"
	"github.com/example/quorum/internal/ports/primary"
)

func TestDelegateService_AddDelegateValidates(t *testing.T) {
	svc := app.NewDelegateService(newMockDelegateRepo())

	if _, err := svc.AddDelegate(testCtx, primary.AddDelegateRequest{Name: "A"}); !apperr.IsValidation(err) {
		t.Errorf("expected ValidationError for missing surname, got %v", err)
	}
	if _, err := svc.AddDelegate(testCtx, primary.AddDelegateRequest{Surname: "B"}); !apperr.IsValidation(err) {
		t.Errorf("expected ValidationError for missing name, got %v", err)
	}

	id, err := svc.AddDelegate(testCtx, primary.AddDelegateRequest{
		Title: "Dr.", Name: "JULIO C.", Surname: "MORENO", District: "Dist. I", Titular: true,
	})
	if err != nil {
		t.Fatalf("AddDelegate failed: %v", err)
	}

	d, _ := svc.GetDelegate(testCtx, id)
	if d.FullName() != "Dr. JULIO C. MORENO" {
		t.Errorf("unexpected full name: %q", d.FullName())
	}
}

func TestDelegateService_EnsureSeeded(t *testing.T) {
	repo := newMockDelegateRepo()
	svc := app.NewDelegateService(repo)

	if err := svc.EnsureSeeded(testCtx); err != nil {
		t.Fatalf("EnsureSeeded failed: %v", err)
	}

	delegates, _ := svc.ListDelegates(testCtx, true, true)
	if len(delegates) != 10 {
		t.Fatalf("expected 10 seeded delegates, got %d", len(delegates))
	}
	if delegates[0].Surname != "MORENO" || delegates[0].District != "Dist. I" {
		t.Errorf("unexpected first delegate: %+v", delegates[0])
	}
	if delegates[9].Surname != "DE FINO" || delegates[9].Title != "Dra." {
		t.Errorf("unexpected last delegate: %+v", delegates[9])
	}

	// Second call is a no-op, even on a roster the user has shrunk.
	svc.DeleteDelegate(testCtx, delegates[0].ID)
	if err := svc.EnsureSeeded(testCtx); err != nil {
		t.Fatalf("second EnsureSeeded failed: %v", err)
	}
	remaining, _ := svc.ListDelegates(testCtx, true, false)
	if len(remaining) != 9 {
		t.Errorf("reseed should not run on a non-empty roster: %d delegates", len(remaining))
	}
}

func TestDelegateService_DefaultSigners(t *testing.T) {
	repo := newMockDelegateRepo()
	svc := app.NewDelegateService(repo)
	svc.EnsureSeeded(testCtx)

	chairID, secretaryID, err := svc.DefaultSigners(testCtx)
	if err != nil {
		t.Fatalf("DefaultSigners failed: %v", err)
	}

	chair, _ := svc.GetDelegate(testCtx, chairID)
	secretary, _ := svc.GetDelegate(testCtx, secretaryID)
	if chair.Surname != "TUCCI" {
		t.Errorf("expected TUCCI as default chair, got %q", chair.Surname)
	}
	if secretary.Surname != "DUNOGENT" {
		t.Errorf("expected DUNOGENT as default secretary, got %q", secretary.Surname)
	}
}

func TestDelegateService_DefaultSignersFallback(t *testing.T) {
	repo := newMockDelegateRepo()
	svc := app.NewDelegateService(repo)

	first, _ := svc.AddDelegate(testCtx, primary.AddDelegateRequest{Name: "A", Surname: "SMITH", Titular: true})
	second, _ := svc.AddDelegate(testCtx, primary.AddDelegateRequest{Name: "B", Surname: "JONES", Titular: true})

	chairID, secretaryID, err := svc.DefaultSigners(testCtx)
	if err != nil {
		t.Fatalf("DefaultSigners failed: %v", err)
	}
	if chairID != first || secretaryID != second {
		t.Errorf("expected positional fallback %d/%d, got %d/%d", first, second, chairID, secretaryID)
	}
}

func TestDelegateService_DefaultSignersEmptyRoster(t *testing.T) {
	svc := app.NewDelegateService(newMockDelegateRepo())

	if _, _, err := svc.DefaultSigners(testCtx); !apperr.IsValidation(err) {
		t.Errorf("expected ValidationError on empty roster, got %v", err)
	}
}

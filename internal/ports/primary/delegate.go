package primary

import "context"

// DelegateService defines the primary port for roster operations.
type DelegateService interface {
	// AddDelegate creates a delegate. Name and surname are required.
	AddDelegate(ctx context.Context, req AddDelegateRequest) (int64, error)

	// GetDelegate retrieves a delegate by id.
	GetDelegate(ctx context.Context, delegateID int64) (*Delegate, error)

	// UpdateDelegate rewrites all editable fields.
	UpdateDelegate(ctx context.Context, req UpdateDelegateRequest) error

	// DeleteDelegate deactivates a delegate. Past signer rows survive.
	DeleteDelegate(ctx context.Context, delegateID int64) error

	// ListDelegates returns delegates in insertion order (id ascending).
	ListDelegates(ctx context.Context, activeOnly, titularOnly bool) ([]*Delegate, error)

	// EnsureSeeded populates an empty roster with the fixed initial list.
	EnsureSeeded(ctx context.Context) error

	// DefaultSigners returns the roster's default chair and secretary.
	DefaultSigners(ctx context.Context) (chairID, secretaryID int64, err error)
}

// AddDelegateRequest contains parameters for creating a delegate.
type AddDelegateRequest struct {
	Title    string
	Name     string
	Surname  string
	District string
	Titular  bool
}

// UpdateDelegateRequest contains parameters for updating a delegate.
type UpdateDelegateRequest struct {
	DelegateID int64
	Title      string
	Name       string
	Surname    string
	District   string
	Titular    bool
}

// Delegate represents a roster entry at the port boundary.
type Delegate struct {
	ID       int64
	Title    string
	Name     string
	Surname  string
	District string
	Titular  bool
	Active   bool
}

// FullName returns the display form used in documents and signer lookups.
func (d *Delegate) FullName() string {
	if d.Title == "" {
		return d.Name + " " + d.Surname
	}
	return d.Title + " " + d.Name + " " + d.Surname
}

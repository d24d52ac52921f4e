package primary

import "context"

// Document output formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// DocumentService turns the current draft into rendered documents.
type DocumentService interface {
	// Preview renders the plain-text preview of the draft. Never commits.
	Preview(ctx context.Context) (string, error)

	// Generate renders the draft to the given format, writes the file
	// under the output directory, then commits the draft meeting to the
	// record store. Fails with ValidationError when the agenda is empty.
	Generate(ctx context.Context, format string) (*GenerateResult, error)
}

// GenerateResult reports a successful document generation.
type GenerateResult struct {
	Path      string
	MeetingID int64
}

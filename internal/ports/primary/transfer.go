package primary

import "context"

// TransferService handles bulk import and export of catalog and history.
type TransferService interface {
	// ImportTopics loads (description, category) pairs from an .xlsx or
	// .docx file and creates topics. Per-item failures do not abort the
	// batch.
	ImportTopics(ctx context.Context, path string) (*ImportSummary, error)

	// ExportTopics writes the topic catalog (with usage counts) to a
	// styled spreadsheet or tabular PDF in dir. Format is FormatPDF or
	// "xlsx".
	ExportTopics(ctx context.Context, dir, format string) (*ExportResult, error)

	// ExportHistory writes the meeting history (with topic summaries) to
	// a styled spreadsheet or tabular PDF in dir.
	ExportHistory(ctx context.Context, dir, format string) (*ExportResult, error)
}

// Export formats (FormatPDF is shared with document generation).
const FormatXLSX = "xlsx"

// ImportSummary reports a bulk import. Errors holds a capped preview of
// per-item failure messages.
type ImportSummary struct {
	Imported int
	Failed   int
	Errors   []string
}

// ExportResult reports a successful export.
type ExportResult struct {
	Path  string
	Count int
}

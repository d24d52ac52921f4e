// Package render turns an immutable meeting snapshot into output documents.
//
// All renderers consume the same Layout produced by Compose, so the plain
// text preview, the PDF and the DOCX always agree on which fields appear
// and how agenda lines are numbered.
package render

// Delegate is one roster row as it appears in the document.
type Delegate struct {
	FullName string
	District string
}

// Item is one agenda entry with its final position.
type Item struct {
	Position    int
	Description string
}

// Snapshot is everything a renderer needs, captured at generation time.
// It carries no handles to live state: callers resolve names, load the
// logo bytes and freeze the agenda before building one.
type Snapshot struct {
	Title           string
	Subtitle        string
	TitleFontFamily string
	TitleFontSize   int
	TitleBold       bool
	SubtitleBold    bool

	Date     string
	Time     string
	Place    string
	Venue    string
	Type     string
	Platform string

	Delegates []Delegate
	Items     []Item

	ChairName     string
	SecretaryName string

	// Logo is the decoded image file, empty when no logo is configured
	// or the file could not be read. LogoFormat is "png", "jpeg" or "gif".
	Logo         []byte
	LogoFormat   string
	LogoWidthCm  float64
	LogoHeightCm float64
}

package render

import (
	"fmt"
	"sort"
	"strings"
)

const (
	defaultTitle    = "ORDER OF BUSINESS"
	meetingVirtual  = "virtual"
	delegateHeading = "TITULAR DELEGATES:"
	agendaHeading   = "ORDER OF BUSINESS"
	salutation      = "Respectfully yours."
	secretaryLabel  = "Secretary General"
	chairLabel      = "Chair"
)

// Field is a labelled metadata line, e.g. "DATE:" / "2025-03-14".
type Field struct {
	Label string
	Value string
}

// Layout is the resolved document content shared by every renderer.
// Optional fields that Compose suppressed are simply absent.
type Layout struct {
	Title    string
	Subtitle string

	Meta []Field

	DelegateHeading string
	DelegateRows    []Delegate

	AgendaHeading string
	AgendaLines   []string

	Salutation     string
	SecretaryName  string
	SecretaryLabel string
	ChairName      string
	ChairLabel     string

	HasLogo bool
}

// Compose resolves a snapshot into the shared layout. Suppression rules
// live here and nowhere else: a blank venue drops the VENUE line, the
// platform only shows for virtual meetings, a blank subtitle disappears.
func Compose(s Snapshot) Layout {
	lay := Layout{
		Title:           strings.TrimSpace(s.Title),
		Subtitle:        strings.TrimSpace(s.Subtitle),
		DelegateHeading: delegateHeading,
		AgendaHeading:   agendaHeading,
		Salutation:      salutation,
		SecretaryName:   s.SecretaryName,
		SecretaryLabel:  secretaryLabel,
		ChairName:       s.ChairName,
		ChairLabel:      chairLabel,
		HasLogo:         len(s.Logo) > 0,
	}
	if lay.Title == "" {
		lay.Title = defaultTitle
	}

	lay.Meta = []Field{
		{Label: "DATE:", Value: s.Date},
		{Label: "TIME:", Value: s.Time},
		{Label: "PLACE:", Value: s.Place},
	}
	if strings.TrimSpace(s.Venue) != "" {
		lay.Meta = append(lay.Meta, Field{Label: "VENUE:", Value: s.Venue})
	}
	if s.Type == meetingVirtual && strings.TrimSpace(s.Platform) != "" {
		lay.Meta = append(lay.Meta, Field{Label: "PLATFORM:", Value: s.Platform})
	}

	lay.DelegateRows = append(lay.DelegateRows, s.Delegates...)

	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Position < items[j].Position
	})
	for _, it := range items {
		lay.AgendaLines = append(lay.AgendaLines, fmt.Sprintf("%d.- %s", it.Position, it.Description))
	}

	return lay
}

// pdfFamilies maps configured font names onto the core PDF fonts.
// Families without a core equivalent fall back to Helvetica.
var pdfFamilies = map[string]string{
	"Helvetica":       "Helvetica",
	"Arial":           "Helvetica",
	"Times New Roman": "Times",
	"Courier":         "Courier",
	"Georgia":         "Helvetica",
}

// pdfFont resolves a configured family and weight to fpdf arguments.
func pdfFont(family string, bold bool) (name, style string) {
	name, ok := pdfFamilies[family]
	if !ok {
		name = "Helvetica"
	}
	if bold {
		style = "B"
	}
	return name, style
}

// docxFamilies maps configured font names onto fonts Word ships with.
// Helvetica is not a stock Word font, so it becomes Calibri.
var docxFamilies = map[string]string{
	"Helvetica":       "Calibri",
	"Arial":           "Arial",
	"Times New Roman": "Times New Roman",
	"Courier":         "Courier New",
	"Georgia":         "Georgia",
}

// docxFont resolves a configured family to a Word font name.
func docxFont(family string) string {
	if name, ok := docxFamilies[family]; ok {
		return name
	}
	return "Calibri"
}

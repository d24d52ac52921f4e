package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fumiama/go-docx"
)

// DOCX renders the meeting document as a Word file with the same
// two-page structure as the PDF.
func DOCX(s Snapshot) ([]byte, error) {
	lay := Compose(s)
	w := docx.New().WithDefaultTheme()
	font := docxFont(s.TitleFontFamily)

	// Word font sizes are half-points.
	titleSize := strconv.Itoa(s.TitleFontSize * 2)

	if lay.HasLogo {
		para := w.AddParagraph().Justification("center")
		if _, err := para.AddInlineDrawing(s.Logo); err != nil {
			return nil, fmt.Errorf("failed to embed logo: %w", err)
		}
	}

	title := w.AddParagraph().Justification("center").
		AddText(lay.Title).Size(titleSize).Font(font, "", "", "cs")
	if s.TitleBold {
		title.Bold()
	}
	if lay.Subtitle != "" {
		sub := w.AddParagraph().Justification("center").
			AddText(lay.Subtitle).Size(strconv.Itoa((s.TitleFontSize - 2) * 2)).Font(font, "", "", "cs")
		if s.SubtitleBold {
			sub.Bold()
		}
	}
	w.AddParagraph()

	for _, f := range lay.Meta {
		para := w.AddParagraph()
		para.AddText(f.Label + " ").Bold()
		para.AddText(f.Value)
	}
	w.AddParagraph()

	w.AddParagraph().Justification("center").AddText(lay.DelegateHeading).Bold()
	tbl := w.AddTable(len(lay.DelegateRows)+1, 2, 0, nil)
	tbl.TableRows[0].TableCells[0].AddParagraph().AddText("Name and Surname").Bold()
	tbl.TableRows[0].TableCells[1].AddParagraph().AddText("District").Bold()
	for i, d := range lay.DelegateRows {
		row := tbl.TableRows[i+1]
		row.TableCells[0].AddParagraph().AddText(d.FullName)
		row.TableCells[1].AddParagraph().AddText(d.District)
	}

	w.AddParagraph().AddPageBreaks()

	if lay.HasLogo {
		para := w.AddParagraph().Justification("center")
		if _, err := para.AddInlineDrawing(s.Logo); err != nil {
			return nil, fmt.Errorf("failed to embed logo: %w", err)
		}
	}
	w.AddParagraph().Justification("center").AddText(lay.AgendaHeading).Size(titleSize).Bold()
	w.AddParagraph()

	for _, line := range lay.AgendaLines {
		w.AddParagraph().AddText(line)
		w.AddParagraph()
	}

	w.AddParagraph()
	w.AddParagraph().AddText(lay.Salutation)
	w.AddParagraph()
	w.AddParagraph()

	sig := w.AddTable(2, 2, 0, nil)
	sig.TableRows[0].TableCells[0].AddParagraph().Justification("center").AddText(lay.SecretaryName)
	sig.TableRows[0].TableCells[1].AddParagraph().Justification("center").AddText(lay.ChairName)
	sig.TableRows[1].TableCells[0].AddParagraph().Justification("center").AddText(lay.SecretaryLabel)
	sig.TableRows[1].TableCells[1].AddParagraph().Justification("center").AddText(lay.ChairLabel)

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render docx: %w", err)
	}
	return buf.Bytes(), nil
}

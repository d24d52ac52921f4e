package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidthMM  = 210.0
	marginMM     = 15.0
	logoAssetKey = "header-logo"
)

// PDF renders the meeting document as a two-page A4 PDF: roster page
// first, agenda and signature page second.
func PDF(s Snapshot) ([]byte, error) {
	lay := Compose(s)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if lay.HasLogo {
		opts := fpdf.ImageOptions{ImageType: s.LogoFormat, ReadDpi: true}
		pdf.RegisterImageOptionsReader(logoAssetKey, opts, bytes.NewReader(s.Logo))
	}

	// Page one: header, meeting details, delegate roster.
	pdf.AddPage()
	placeLogo(pdf, s, lay)

	family, style := pdfFont(s.TitleFontFamily, s.TitleBold)
	pdf.SetFont(family, style, float64(s.TitleFontSize))
	pdf.CellFormat(0, 8, tr(lay.Title), "", 1, "C", false, 0, "")
	if lay.Subtitle != "" {
		family, style = pdfFont(s.TitleFontFamily, s.SubtitleBold)
		pdf.SetFont(family, style, float64(s.TitleFontSize)-2)
		pdf.CellFormat(0, 7, tr(lay.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	for _, f := range lay.Meta {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(28, 6, tr(f.Label), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, tr(f.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr(lay.DelegateHeading), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(120, 6, tr("Name and Surname"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("District"), "B", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, d := range lay.DelegateRows {
		pdf.CellFormat(120, 6, tr(d.FullName), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(d.District), "", 1, "C", false, 0, "")
	}

	// Page two: agenda and signatures.
	pdf.AddPage()
	placeLogo(pdf, s, lay)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(lay.AgendaHeading), "B", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lay.AgendaLines {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
		pdf.Ln(3)
	}

	pdf.Ln(8)
	pdf.CellFormat(0, 6, tr(lay.Salutation), "", 1, "L", false, 0, "")
	pdf.Ln(18)

	colW := (pageWidthMM - 2*marginMM - 20) / 2
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(colW, 6, tr(lay.SecretaryName), "T", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 6, tr(lay.ChairName), "T", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(colW, 5, tr(lay.SecretaryLabel), "", 0, "C", false, 0, "")
	pdf.CellFormat(20, 5, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(colW, 5, tr(lay.ChairLabel), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// placeLogo draws the registered logo centered at the current position.
func placeLogo(pdf *fpdf.Fpdf, s Snapshot, lay Layout) {
	if !lay.HasLogo {
		return
	}
	w := s.LogoWidthCm * 10
	h := s.LogoHeightCm * 10
	x := (pageWidthMM - w) / 2
	opts := fpdf.ImageOptions{ImageType: s.LogoFormat, ReadDpi: true}
	pdf.ImageOptions(logoAssetKey, x, pdf.GetY(), w, h, true, opts, 0, "")
	pdf.Ln(4)
}

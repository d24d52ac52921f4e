package render

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
)

// TopicRow is one catalog entry in a topics export.
type TopicRow struct {
	Description string
	Category    string
	Uses        int
	Active      bool
}

// HistoryRow is one past meeting in a history export.
type HistoryRow struct {
	ID     int64
	Date   string
	Time   string
	Place  string
	Type   string
	Topics string
}

const headerFill = "2E7D32"

func (r TopicRow) status() string {
	if r.Active {
		return "Active"
	}
	return "Inactive"
}

// TopicsXLSX renders the full topic catalog as a styled workbook.
func TopicsXLSX(rows []TopicRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Topics"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Description", "Category", "Times Used", "Status"}
	if err := writeSheetHeader(f, sheet, headers); err != nil {
		return nil, err
	}
	for i, r := range rows {
		n := strconv.Itoa(i + 2)
		f.SetCellValue(sheet, "A"+n, r.Description)
		f.SetCellValue(sheet, "B"+n, r.Category)
		f.SetCellValue(sheet, "C"+n, r.Uses)
		f.SetCellValue(sheet, "D"+n, r.status())
	}
	f.SetColWidth(sheet, "A", "A", 50)
	f.SetColWidth(sheet, "B", "B", 20)
	f.SetColWidth(sheet, "C", "D", 15)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// HistoryXLSX renders the meeting history as a styled workbook.
func HistoryXLSX(rows []HistoryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Meeting History"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Date", "Time", "Place", "Type", "Topics"}
	if err := writeSheetHeader(f, sheet, headers); err != nil {
		return nil, err
	}
	for i, r := range rows {
		n := strconv.Itoa(i + 2)
		f.SetCellValue(sheet, "A"+n, r.ID)
		f.SetCellValue(sheet, "B"+n, r.Date)
		f.SetCellValue(sheet, "C"+n, r.Time)
		f.SetCellValue(sheet, "D"+n, r.Place)
		f.SetCellValue(sheet, "E"+n, r.Type)
		f.SetCellValue(sheet, "F"+n, r.Topics)
	}
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 15)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "D", 30)
	f.SetColWidth(sheet, "E", "E", 15)
	f.SetColWidth(sheet, "F", "F", 50)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSheetHeader fills row 1 with bold white text on the green fill
// used across every export.
func writeSheetHeader(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

// TopicsPDF renders the topic catalog as a tabular PDF.
func TopicsPDF(rows []TopicRow) ([]byte, error) {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Description, r.Category, strconv.Itoa(r.Uses), r.status()}
	}
	return tablePDF("TOPIC CATALOG",
		[]string{"Description", "Category", "Times Used", "Status"},
		[]float64{95, 35, 25, 25},
		cells, 0)
}

// HistoryPDF renders the meeting history as a tabular PDF. The topics
// column wraps, so rows grow as needed.
func HistoryPDF(rows []HistoryRow) ([]byte, error) {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{
			strconv.FormatInt(r.ID, 10), r.Date, r.Time, r.Place, r.Type, r.Topics,
		}
	}
	return tablePDF("MEETING HISTORY",
		[]string{"ID", "Date", "Time", "Place", "Type", "Topics"},
		[]float64{10, 22, 14, 36, 20, 78},
		cells, 5)
}

// tablePDF writes a landscape-free A4 table with the shared header
// styling. wrapCol is the index of the column allowed to wrap onto
// extra lines; pass a column past the end to disable wrapping.
func tablePDF(title string, headers []string, widths []float64, rows [][]string, wrapCol int) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(true, marginMM)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	const lineH = 6.0
	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(0x2E, 0x7D, 0x32)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range headers {
			pdf.CellFormat(widths[i], lineH, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(lineH)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(0xF5, 0xF5, 0xDC)
	}
	drawHeader()

	for rowIdx, row := range rows {
		lines := 1
		var wrapped []string
		if wrapCol < len(row) {
			wrapped = pdf.SplitText(row[wrapCol], widths[wrapCol]-2)
			if len(wrapped) > lines {
				lines = len(wrapped)
			}
		}
		rowH := lineH * float64(lines)

		if pdf.GetY()+rowH > 297-marginMM {
			pdf.AddPage()
			drawHeader()
		}

		fill := rowIdx%2 == 1
		x, y := pdf.GetXY()
		for i, cell := range row {
			if i == wrapCol && lines > 1 {
				if fill {
					pdf.Rect(x, y, widths[i], rowH, "F")
				}
				pdf.Rect(x, y, widths[i], rowH, "D")
				pdf.SetXY(x+1, y)
				for _, wl := range wrapped {
					pdf.CellFormat(widths[i]-2, lineH, tr(wl), "", 2, "L", false, 0, "")
				}
			} else {
				pdf.SetXY(x, y)
				pdf.CellFormat(widths[i], rowH, tr(cell), "1", 0, "L", fill, 0, "")
			}
			x += widths[i]
		}
		pdf.SetXY(marginMM, y+rowH)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

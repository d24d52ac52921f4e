// Package fileio parses topic lists out of user-supplied files for
// bulk import.
package fileio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/xuri/excelize/v2"

	"github.com/example/quorum/internal/apperr"
)

// TopicPair is one parsed import row: a description plus an optional
// category.
type TopicPair struct {
	Description string
	Category    string
}

// LoadTopics parses the file at path into topic pairs. Supported
// formats are .xlsx workbooks (description in column A, category in
// column B, first row treated as a header) and .docx documents (one
// topic per paragraph, "description - category" split on the first
// separator).
func LoadTopics(path string) ([]TopicPair, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, apperr.IO(fmt.Sprintf("cannot read %s", path), err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadFromWorkbook(path)
	case ".docx":
		return loadFromDocument(path)
	default:
		return nil, apperr.IO(
			fmt.Sprintf("unsupported file type %q, expected .xlsx or .docx", filepath.Ext(path)), nil)
	}
}

func loadFromWorkbook(path string) ([]TopicPair, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperr.IO(fmt.Sprintf("cannot open workbook %s", path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperr.IO(fmt.Sprintf("cannot read sheet %q", sheet), err)
	}

	var pairs []TopicPair
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		var desc, cat string
		if len(row) > 0 {
			desc = strings.TrimSpace(row[0])
		}
		if len(row) > 1 {
			cat = strings.TrimSpace(row[1])
		}
		if desc == "" {
			continue
		}
		pairs = append(pairs, TopicPair{Description: desc, Category: cat})
	}
	return pairs, nil
}

func loadFromDocument(path string) ([]TopicPair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.IO(fmt.Sprintf("cannot read %s", path), err)
	}

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, apperr.IO(fmt.Sprintf("cannot parse document %s", path), err)
	}

	var pairs []TopicPair
	for _, it := range doc.Document.Body.Items {
		p, ok := it.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := strings.TrimSpace(p.String())
		if text == "" || isSectionTitle(text) {
			continue
		}
		desc, cat := splitTopicLine(text)
		pairs = append(pairs, TopicPair{Description: desc, Category: cat})
	}
	return pairs, nil
}

// isSectionTitle filters out long all-caps headings that documents
// often carry between topic blocks.
func isSectionTitle(text string) bool {
	if len([]rune(text)) <= 50 {
		return false
	}
	return text == strings.ToUpper(text) && text != strings.ToLower(text)
}

// splitTopicLine splits "description - category" on the first
// separator. Lines without one are a bare description.
func splitTopicLine(text string) (desc, cat string) {
	if before, after, found := strings.Cut(text, " - "); found {
		return strings.TrimSpace(before), strings.TrimSpace(after)
	}
	return text, ""
}

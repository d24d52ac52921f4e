package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
)

// testLogo encodes a small solid PNG usable as a document logo.
func testLogo(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for x := 0; x < 32; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test logo: %v", err)
	}
	return buf.Bytes()
}

func TestPDFOutput(t *testing.T) {
	out, err := PDF(sampleSnapshot())
	if err != nil {
		t.Fatalf("PDF failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", out[:8])
	}
	// Two pages: roster page and agenda page.
	if !bytes.Contains(out, []byte("/Count 2")) {
		t.Error("expected a 2-page document")
	}
}

func TestPDFWithLogo(t *testing.T) {
	s := sampleSnapshot()
	s.Logo = testLogo(t)
	s.LogoFormat = "png"
	s.LogoWidthCm = 3.5
	s.LogoHeightCm = 2.0

	out, err := PDF(s)
	if err != nil {
		t.Fatalf("PDF with logo failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestDOCXRoundTrip(t *testing.T) {
	out, err := DOCX(sampleSnapshot())
	if err != nil {
		t.Fatalf("DOCX failed: %v", err)
	}

	doc, err := docx.Parse(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("generated docx does not parse: %v", err)
	}

	var text strings.Builder
	for _, it := range doc.Document.Body.Items {
		if p, ok := it.(*docx.Paragraph); ok {
			text.WriteString(p.String())
			text.WriteString("\n")
		}
	}
	body := text.String()

	for _, want := range []string{
		"ASSOCIATION OF ENGINEERS",
		"1.- Budget review",
		"Respectfully yours.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("docx body missing %q", want)
		}
	}
}

func TestDOCXWithLogo(t *testing.T) {
	s := sampleSnapshot()
	s.Logo = testLogo(t)
	s.LogoFormat = "png"

	out, err := DOCX(s)
	if err != nil {
		t.Fatalf("DOCX with logo failed: %v", err)
	}
	if _, err := docx.Parse(bytes.NewReader(out), int64(len(out))); err != nil {
		t.Errorf("generated docx does not parse: %v", err)
	}
}

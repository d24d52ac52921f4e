package render

import (
	"fmt"
	"strings"
)

const textWidth = 80

// Text renders the plain preview shown in the terminal before a
// document is generated. It contains the same content as the PDF and
// DOCX, laid out with fixed-width rules.
func Text(s Snapshot) string {
	lay := Compose(s)

	var b strings.Builder
	rule := strings.Repeat("=", textWidth)
	thin := strings.Repeat("-", textWidth)

	b.WriteString("\n")
	b.WriteString(center(lay.Title) + "\n")
	if lay.Subtitle != "" {
		b.WriteString(center(lay.Subtitle) + "\n")
	}
	b.WriteString(rule + "\n\n")

	for _, f := range lay.Meta {
		fmt.Fprintf(&b, "%-10s %s\n", f.Label, f.Value)
	}
	b.WriteString("\n")

	b.WriteString(lay.DelegateHeading + "\n")
	b.WriteString(thin + "\n")
	for _, d := range lay.DelegateRows {
		fmt.Fprintf(&b, "%-50s %s\n", d.FullName, d.District)
	}
	b.WriteString("\n")

	b.WriteString(rule + "\n")
	b.WriteString(center(lay.AgendaHeading) + "\n")
	b.WriteString(rule + "\n\n")
	for _, line := range lay.AgendaLines {
		b.WriteString(line + "\n\n")
	}

	b.WriteString(thin + "\n")
	b.WriteString(lay.Salutation + "\n\n")
	fmt.Fprintf(&b, "%-40s %s\n", lay.SecretaryName, lay.ChairName)
	fmt.Fprintf(&b, "%-40s %s\n", lay.SecretaryLabel, lay.ChairLabel)

	return b.String()
}

func center(s string) string {
	pad := (textWidth - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

package extractor

import (
	"strings"
)

// BlankStyle is the style name given to blank-paragraph marker lines.
const BlankStyle = "HR"

// Alignment is a paragraph's horizontal justification.
type Alignment int

const (
	// AlignUnset means the paragraph inherits alignment from its style.
	AlignUnset Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() (s string) {
	switch a {
	case AlignLeft:
		s = "left"
	case AlignCenter:
		s = "center"
	case AlignRight:
		s = "right"
	case AlignJustify:
		s = "justify"
	default:
		s = "unset"
	}
	return s
}

// parseAlignment maps a w:jc value to an Alignment.
func parseAlignment(val string) (a Alignment) {
	switch val {
	case "left", "start":
		a = AlignLeft
	case "center":
		a = AlignCenter
	case "right", "end":
		a = AlignRight
	case "both", "distribute":
		a = AlignJustify
	default:
		a = AlignUnset
	}
	return a
}

// SourceLine is one paragraph of the input résumé.
// Only Text is used downstream; the styling fields are informational.
type SourceLine struct {
	Text       string
	StyleName  string
	Alignment  Alignment
	FontSizePt *float64
	Blank      bool
}

func blankLine(alignment Alignment) (line SourceLine) {
	line = SourceLine{StyleName: BlankStyle, Alignment: alignment, Blank: true}
	return line
}

// Flatten joins the line texts with newlines. Blank markers become empty lines.
func Flatten(lines []SourceLine) (text string) {
	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	text = strings.Join(texts, "\n")
	return text
}

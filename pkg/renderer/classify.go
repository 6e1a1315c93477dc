package renderer

import (
	"strings"
)

// LineKind is the shape-based classification of one generated line.
type LineKind int

const (
	// Plain is ordinary body text.
	Plain LineKind = iota
	// Blank is an empty line, rendered as a separator.
	Blank
	// SectionHeader is one of the fixed top-level résumé headings.
	SectionHeader
	// Bullet is a "-" prefixed line, rendered as a list item.
	Bullet
	// SubHeader names an institution, employer or project.
	SubHeader
)

func (k LineKind) String() (s string) {
	switch k {
	case Blank:
		s = "Blank"
	case SectionHeader:
		s = "SectionHeader"
	case Bullet:
		s = "Bullet"
	case SubHeader:
		s = "SubHeader"
	default:
		s = "Plain"
	}
	return s
}

// RenderedLine is a classified line and the text to render for it.
type RenderedLine struct {
	Kind LineKind
	Text string
}

// Classifier assigns a LineKind to each line of generated text.
type Classifier struct {
	SectionHeaders    []string
	SubHeaderPrefixes []string
}

// Classify applies the rules in order; the first match wins:
// empty, exact section header, "-" prefix, known sub-header prefix, plain.
// The line is trimmed before matching and the trimmed text is returned.
func (c Classifier) Classify(line string) (rendered RenderedLine) {
	text := strings.TrimSpace(line)

	switch {
	case text == "":
		rendered = RenderedLine{Kind: Blank}
	case c.isSectionHeader(text):
		rendered = RenderedLine{Kind: SectionHeader, Text: text}
	case strings.HasPrefix(text, "-"):
		rendered = RenderedLine{Kind: Bullet, Text: text[1:]}
	case c.hasSubHeaderPrefix(text):
		rendered = RenderedLine{Kind: SubHeader, Text: text}
	default:
		rendered = RenderedLine{Kind: Plain, Text: text}
	}

	return rendered
}

// Layout splits text on "\n" and classifies every line in order.
// Text made only of whitespace yields no lines.
func (c Classifier) Layout(text string) (lines []RenderedLine) {
	lines = make([]RenderedLine, 0)
	if strings.TrimSpace(text) == "" {
		return lines
	}

	for _, raw := range strings.Split(text, "\n") {
		lines = append(lines, c.Classify(raw))
	}

	return lines
}

func (c Classifier) isSectionHeader(text string) (ok bool) {
	for _, header := range c.SectionHeaders {
		if text == header {
			ok = true
			return ok
		}
	}
	return ok
}

func (c Classifier) hasSubHeaderPrefix(text string) (ok bool) {
	for _, prefix := range c.SubHeaderPrefixes {
		if strings.HasPrefix(text, prefix) {
			ok = true
			return ok
		}
	}
	return ok
}

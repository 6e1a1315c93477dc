package extractor

import (
	"math"
	"strings"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
	"github.com/pkg/errors"
)

// defaultStyle is the style ID reported for paragraphs without an explicit style.
const defaultStyle = "Normal"

// builtinNames maps the lowercase names Word stores for built-in styles to their UI names.
//
//nolint:gochecknoglobals // lookup table
var builtinNames = map[string]string{
	"caption":  "Caption",
	"footer":   "Footer",
	"header":   "Header",
	"title":    "Title",
	"subtitle": "Subtitle",
}

// extractDocx returns one SourceLine per top-level body paragraph, in order.
// Paragraphs inside tables are skipped.
func extractDocx(path string) (lines []SourceLine, err error) {
	var doc *document.Document
	doc, err = document.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open docx: %s", path)
		return lines, err
	}

	names := styleNames(doc)
	inTables := tableParagraphs(doc)

	paragraphs := doc.Paragraphs()
	lines = make([]SourceLine, 0, len(paragraphs))
	for _, p := range paragraphs {
		if inTables[p.X()] {
			continue
		}
		lines = append(lines, paragraphLine(p, names))
	}

	return lines, err
}

// styleNames maps style IDs to display names from the styles part.
func styleNames(doc *document.Document) (names map[string]string) {
	names = make(map[string]string)
	for _, style := range doc.Styles.Styles() {
		name := style.Name()
		if name == "" {
			continue
		}
		if ui, ok := builtinNames[name]; ok {
			name = ui
		}
		if strings.HasPrefix(name, "heading ") {
			name = "Heading " + strings.TrimPrefix(name, "heading ")
		}
		names[style.StyleID()] = name
	}
	return names
}

// styleName resolves a paragraph's style ID. Unknown IDs are reported as-is.
func styleName(id string, names map[string]string) (name string) {
	if id == "" {
		id = defaultStyle
	}
	name, ok := names[id]
	if !ok {
		name = id
	}
	return name
}

func tableParagraphs(doc *document.Document) (set map[*wml.CT_P]bool) {
	set = make(map[*wml.CT_P]bool)
	for _, table := range doc.Tables() {
		for _, row := range table.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					set[p.X()] = true
				}
			}
		}
	}
	return set
}

func paragraphLine(p document.Paragraph, names map[string]string) (line SourceLine) {
	alignment := AlignUnset
	if props := p.X().PPr; props != nil && props.Jc != nil {
		alignment = parseAlignment(props.Jc.ValAttr.String())
	}

	var text strings.Builder
	var size *float64
	for _, run := range p.Runs() {
		readRun(run.X(), &text, &size)
	}

	if strings.TrimSpace(text.String()) == "" {
		line = blankLine(alignment)
		return line
	}

	line = SourceLine{
		Text:       text.String(),
		StyleName:  styleName(p.Style(), names),
		Alignment:  alignment,
		FontSizePt: size,
	}
	return line
}

// readRun appends the run's text. size ends up holding the size of the last run that sets one.
func readRun(r *wml.CT_R, text *strings.Builder, size **float64) {
	if props := r.RPr; props != nil && props.Sz != nil {
		if half := props.Sz.ValAttr.ST_UnsignedDecimalNumber; half != nil {
			pt := halfPointsToPt(*half)
			*size = &pt
		}
	}

	for _, item := range r.EG_RunInnerContent {
		switch {
		case item.T != nil:
			text.WriteString(item.T.Content)
		case item.Tab != nil:
			text.WriteString("\t")
		case item.Br != nil, item.Cr != nil:
			text.WriteString("\n")
		case item.NoBreakHyphen != nil:
			text.WriteString("-")
		}
	}
}

// halfPointsToPt converts a w:sz value to points rounded to 2 decimals.
func halfPointsToPt(half uint64) (pt float64) {
	pt = math.Round(float64(half)/2*100) / 100
	return pt
}

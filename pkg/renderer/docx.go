package renderer

import (
	"os"
	"path/filepath"
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"
	"github.com/pkg/errors"
)

// Letter page, 1-inch margins.
const (
	pageWidth      = 8.5 * measurement.Inch
	pageHeight     = 11 * measurement.Inch
	pageMargin     = 1 * measurement.Inch
	headerDistance = 0.5 * measurement.Inch

	// single line spacing under the "auto" rule is 240 twips
	singleLine = 12 * measurement.Point
)

// Separator border, in eighths of a point and points.
const (
	borderSize  = 6
	borderSpace = 1
)

// docxWriter copies a Document into a gooxml package.
type docxWriter struct {
	out        *document.Document
	bullets    document.NumberingDefinition
	hasBullets bool
}

func newDocxWriter() (w *docxWriter) {
	w = &docxWriter{out: document.New()}

	addBulletStyle(w.out)
	if defs := w.out.Numbering.Definitions(); len(defs) > 0 {
		w.bullets = defs[0]
		w.hasBullets = true
	}

	section := w.out.BodySection()
	section.SetPageMargins(pageMargin, pageMargin, pageMargin, pageMargin, headerDistance, headerDistance, 0)
	sectPr := section.X()
	sectPr.PgSz = wml.NewCT_PageSz()
	sectPr.PgSz.WAttr = twips(pageWidth)
	sectPr.PgSz.HAttr = twips(pageHeight)

	return w
}

// addBulletStyle defines the bullet list style unless the default styles already carry it.
func addBulletStyle(out *document.Document) {
	for _, style := range out.Styles.Styles() {
		if style.StyleID() == BulletStyle {
			return
		}
	}

	style := out.Styles.AddStyle(BulletStyle, wml.ST_StyleTypeParagraph, false)
	style.SetName(BulletStyleName)
	style.SetBasedOn("Normal")
}

func (w *docxWriter) addParagraph(p Paragraph) {
	para := w.out.AddParagraph()

	if p.Style != "" {
		para.SetStyle(p.Style)
	}
	if p.Style == BulletStyle && w.hasBullets {
		para.SetNumberingDefinition(w.bullets)
		para.SetNumberingLevel(0)
	}

	props := para.Properties()
	spacing := props.Spacing()
	spacing.SetAfter(0)
	if p.SingleSpacing {
		spacing.SetLineSpacing(singleLine, wml.ST_LineSpacingRuleAuto)
	}
	if p.Centered {
		props.SetAlignment(wml.ST_JcCenter)
	}
	if p.BottomBorder {
		setBottomBorder(props.X())
	}

	for _, r := range p.Runs {
		addRun(para, r)
	}
}

func addRun(para document.Paragraph, r Run) {
	run := para.AddRun()

	props := run.Properties()
	if r.Font != "" {
		props.SetFontFamily(r.Font)
	}
	if r.Bold {
		props.SetBold(true)
	}
	if r.SizePt > 0 {
		props.SetSize(measurement.Distance(r.SizePt) * measurement.Point)
	}

	for i, segment := range strings.Split(r.Text, "\t") {
		if i > 0 {
			run.AddTab()
		}
		if segment != "" {
			run.AddText(segment)
		}
	}
}

func setBottomBorder(props *wml.CT_PPr) {
	bottom := wml.NewCT_Border()
	bottom.ValAttr = wml.ST_BorderSingle
	bottom.SzAttr = gooxml.Uint64(borderSize)
	bottom.SpaceAttr = gooxml.Uint64(borderSpace)
	bottom.ColorAttr = &wml.ST_HexColor{ST_HexColorAuto: wml.ST_HexColorAutoAuto}

	props.PBdr = wml.NewCT_PBdr()
	props.PBdr.Bottom = bottom
}

func twips(d measurement.Distance) (m *sharedTypes.ST_TwipsMeasure) {
	m = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: gooxml.Uint64(uint64(d / measurement.Twips))}
	return m
}

// WriteDocx writes doc into a new package at outputPath, replacing any existing file.
func WriteDocx(doc Document, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	w := newDocxWriter()
	for _, p := range doc.Paragraphs {
		w.addParagraph(p)
	}

	err = w.out.SaveToFile(outputPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to write document: %s", outputPath)
		return err
	}

	return err
}

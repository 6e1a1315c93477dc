package renderer

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Header is the static personal block printed above the tailored content.
type Header struct {
	Name    string
	Address string
	Contact string
}

// Renderer turns generated plain text into a styled .docx.
type Renderer struct {
	Classifier Classifier
	Header     Header
	Font       string
}

// Build lays out text under the static header. Paragraph order follows line order.
func (r *Renderer) Build(text string) (doc Document) {
	r.addHeader(&doc)

	for _, line := range r.Classifier.Layout(text) {
		doc.Add(r.paragraphFor(line))
	}

	return doc
}

func (r *Renderer) addHeader(doc *Document) {
	doc.Add(Paragraph{
		Centered:      true,
		SingleSpacing: true,
		Runs:          []Run{{Text: r.Header.Name, Font: r.Font, SizePt: NameSize, Bold: true}},
	})
	doc.Add(Paragraph{
		Centered:      true,
		SingleSpacing: true,
		Runs:          []Run{{Text: r.Header.Address, Font: r.Font, SizePt: HeaderInfoSize}},
	})
	doc.Add(Paragraph{
		Centered:      true,
		SingleSpacing: true,
		Runs:          []Run{{Text: r.Header.Contact, Font: r.Font, SizePt: HeaderInfoSize}},
	})
	doc.Add(separator())
}

func (r *Renderer) paragraphFor(line RenderedLine) (p Paragraph) {
	if line.Kind == Blank {
		p = separator()
		return p
	}

	run := Run{Text: line.Text, Font: r.Font, SizePt: BodySize}
	p = Paragraph{SingleSpacing: true}

	switch line.Kind {
	case SectionHeader:
		run.SizePt = SectionHeaderSize
		run.Bold = true
	case SubHeader:
		run.SizePt = SubHeaderSize
		run.Bold = true
	case Bullet:
		p.Style = BulletStyle
	}

	p.Runs = []Run{run}
	return p
}

// Render builds the document for text and writes it to outputPath, replacing any existing file.
func (r *Renderer) Render(text, outputPath string) (err error) {
	doc := r.Build(text)

	err = WriteDocx(doc, outputPath)
	return err
}

// WriteText writes the generated text as-is, next to the rendered document.
func WriteText(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write text file: %s", outputPath)
		return err
	}

	return err
}

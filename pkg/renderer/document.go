package renderer

// Point sizes used by the layout.
const (
	NameSize          = 20.0
	HeaderInfoSize    = 12.0
	SectionHeaderSize = 14.0
	SubHeaderSize     = 12.0
	BodySize          = 11.0
	SeparatorSize     = 1.0
)

// Bullet list paragraph style.
const (
	BulletStyle     = "ListBullet2"
	BulletStyleName = "List Bullet 2"
)

// Run is a span of text with uniform character formatting.
type Run struct {
	Text   string
	Font   string // empty leaves the style default
	SizePt float64
	Bold   bool
}

// Paragraph is one output paragraph. Every paragraph has zero spacing after.
type Paragraph struct {
	Style         string
	Centered      bool
	SingleSpacing bool
	BottomBorder  bool
	Runs          []Run
}

// Document is the ordered paragraph list of the output body.
type Document struct {
	Paragraphs []Paragraph
}

// Add appends a paragraph.
func (d *Document) Add(p Paragraph) {
	d.Paragraphs = append(d.Paragraphs, p)
}

// separator is an empty-looking centered paragraph carrying a bottom border.
func separator() (p Paragraph) {
	p = Paragraph{
		Centered:     true,
		BottomBorder: true,
		Runs:         []Run{{Text: ".", SizePt: SeparatorSize}},
	}
	return p
}

package renderer

import (
	"strings"
	"testing"

	"github.com/nikogura/docx-tailor/pkg/config"
	"github.com/nikogura/docx-tailor/pkg/llm"
	"github.com/stretchr/testify/assert"
)

func testClassifier() (c Classifier) {
	cfg := config.Default()
	c = Classifier{
		SectionHeaders:    cfg.Layout.SectionHeaders,
		SubHeaderPrefixes: cfg.Layout.SubHeaderPrefixes,
	}
	return c
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want RenderedLine
	}{
		{name: "empty", line: "", want: RenderedLine{Kind: Blank}},
		{name: "whitespace", line: " \t\r", want: RenderedLine{Kind: Blank}},
		{name: "section header", line: "Education", want: RenderedLine{Kind: SectionHeader, Text: "Education"}},
		{name: "section header padded", line: "  Key Skills  ", want: RenderedLine{Kind: SectionHeader, Text: "Key Skills"}},
		{name: "section header must match exactly", line: "Education:", want: RenderedLine{Kind: Plain, Text: "Education:"}},
		{name: "section header is case sensitive", line: "EDUCATION", want: RenderedLine{Kind: Plain, Text: "EDUCATION"}},
		{name: "bullet", line: "-Point one", want: RenderedLine{Kind: Bullet, Text: "Point one"}},
		{name: "bullet keeps inner space", line: "- Point one", want: RenderedLine{Kind: Bullet, Text: " Point one"}},
		{name: "indented bullet", line: "    -Point", want: RenderedLine{Kind: Bullet, Text: "Point"}},
		{name: "lone dash", line: "-", want: RenderedLine{Kind: Bullet, Text: ""}},
		{name: "sub-header", line: "Knak – Full Stack Developer (Co-op)    May 2023", want: RenderedLine{Kind: SubHeader, Text: "Knak – Full Stack Developer (Co-op)    May 2023"}},
		{name: "sub-header prefix only", line: "FINTRAC", want: RenderedLine{Kind: SubHeader, Text: "FINTRAC"}},
		{name: "plain", line: "Tools: Git, Docker", want: RenderedLine{Kind: Plain, Text: "Tools: Git, Docker"}},
	}

	c := testClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.line))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	c := Classifier{
		SectionHeaders:    []string{"Projects", "-Odd Header"},
		SubHeaderPrefixes: []string{"Projects", "-"},
	}

	// Section header beats sub-header prefix.
	assert.Equal(t, SectionHeader, c.Classify("Projects").Kind)
	// Section header beats bullet.
	assert.Equal(t, SectionHeader, c.Classify("-Odd Header").Kind)
	// Bullet beats sub-header prefix.
	assert.Equal(t, Bullet, c.Classify("-anything").Kind)
	// Sub-header prefix applies when the line is longer than a header.
	assert.Equal(t, SubHeader, c.Classify("Projects and more").Kind)
}

func TestLayoutRoundTripShape(t *testing.T) {
	text := "Professional Summary\nTailored line\n\nEducation\n-Point one\n-Point two"

	got := testClassifier().Layout(text)

	want := []RenderedLine{
		{Kind: SectionHeader, Text: "Professional Summary"},
		{Kind: Plain, Text: "Tailored line"},
		{Kind: Blank},
		{Kind: SectionHeader, Text: "Education"},
		{Kind: Bullet, Text: "Point one"},
		{Kind: Bullet, Text: "Point two"},
	}
	assert.Equal(t, want, got)
}

func TestLayoutWorkedExample(t *testing.T) {
	c := testClassifier()
	lines := c.Layout(llm.WorkedExample)
	raw := strings.Split(llm.WorkedExample, "\n")

	assert.Len(t, lines, len(raw))

	for i, line := range raw {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "Professional Summary", trimmed == "Education", trimmed == "Experience",
			trimmed == "Projects", trimmed == "Key Skills":
			assert.Equal(t, SectionHeader, lines[i].Kind, "line %d %q", i, line)
		case strings.HasPrefix(trimmed, "-"):
			assert.Equal(t, Bullet, lines[i].Kind, "line %d %q", i, line)
		}
	}

	kinds := map[LineKind]int{}
	for _, line := range lines {
		kinds[line.Kind]++
	}
	assert.Equal(t, 5, kinds[SectionHeader])
	assert.Equal(t, 17, kinds[Bullet])
	assert.Equal(t, 5, kinds[SubHeader])
	assert.Equal(t, 6, kinds[Blank])
}

func TestLayoutWhitespaceOnly(t *testing.T) {
	c := testClassifier()

	assert.Empty(t, c.Layout(""))
	assert.Empty(t, c.Layout("  \n\t\n   "))
}

func TestLayoutTrailingNewline(t *testing.T) {
	lines := testClassifier().Layout("Education\n")

	assert.Equal(t, []RenderedLine{{Kind: SectionHeader, Text: "Education"}, {Kind: Blank}}, lines)
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "Plain", Plain.String())
	assert.Equal(t, "Blank", Blank.String())
	assert.Equal(t, "SectionHeader", SectionHeader.String())
	assert.Equal(t, "Bullet", Bullet.String())
	assert.Equal(t, "SubHeader", SubHeader.String())
}

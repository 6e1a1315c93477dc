package extractor

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

const (
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeZip  = "application/zip"
	mimePDF  = "application/pdf"
	mimeText = "text/plain"
)

// Kind is the résumé file format.
type Kind int

const (
	KindUnknown Kind = iota
	KindDocx
	KindPDF
	KindText
)

// Extract reads the résumé at path and returns its paragraphs as ordered lines.
func Extract(path string) (lines []SourceLine, err error) {
	_, err = os.Stat(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read resume: %s", path)
		return lines, err
	}

	var kind Kind
	kind, err = Detect(path)
	if err != nil {
		return lines, err
	}

	switch kind {
	case KindDocx:
		lines, err = extractDocx(path)
	case KindPDF:
		lines, err = extractPDF(path)
	case KindText:
		lines, err = extractText(path)
	default:
		err = errors.Errorf("unsupported resume format: %s (expected .docx, .pdf or .txt)", path)
	}

	return lines, err
}

// Detect decides the file format. A .docx or .pdf extension must agree with the
// sniffed content; other files are sniffed, falling back to the extension.
func Detect(path string) (kind Kind, err error) {
	var mtype *mimetype.MIME
	mtype, err = mimetype.DetectFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to detect file type: %s", path)
		return kind, err
	}

	kind = kindFromExtension(path)

	switch kind {
	case KindDocx:
		if !isA(mtype, mimeDocx, mimeZip) {
			err = errors.Errorf("failed to read resume: %s is not a valid .docx document (content is %s)", path, mtype.String())
		}
		return kind, err
	case KindPDF:
		if !isA(mtype, mimePDF) {
			err = errors.Errorf("failed to read resume: %s is not a valid .pdf document (content is %s)", path, mtype.String())
		}
		return kind, err
	}

	switch {
	case mtype.Is(mimeDocx):
		kind = KindDocx
	case mtype.Is(mimePDF):
		kind = KindPDF
	case mtype.Is(mimeText):
		kind = KindText
	}

	return kind, err
}

// isA reports whether mtype, or one of its parents, is any of the expected types.
func isA(mtype *mimetype.MIME, expected ...string) (ok bool) {
	for m := mtype; m != nil; m = m.Parent() {
		for _, e := range expected {
			if m.Is(e) {
				ok = true
				return ok
			}
		}
	}
	return ok
}

func kindFromExtension(path string) (kind Kind) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		kind = KindDocx
	case ".pdf":
		kind = KindPDF
	case ".txt", ".text", ".md":
		kind = KindText
	default:
		kind = KindUnknown
	}
	return kind
}

// extractPDF uses the PDF text layer; PDFs carry no paragraph styles, so only text is set.
func extractPDF(path string) (lines []SourceLine, err error) {
	var f *os.File
	var reader *pdf.Reader
	f, reader, err = pdf.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open pdf: %s", path)
		return lines, err
	}
	defer f.Close()

	var plain io.Reader
	plain, err = reader.GetPlainText()
	if err != nil {
		err = errors.Wrapf(err, "failed to extract pdf text: %s", path)
		return lines, err
	}

	var data []byte
	data, err = io.ReadAll(plain)
	if err != nil {
		err = errors.Wrapf(err, "failed to read pdf text: %s", path)
		return lines, err
	}

	lines = splitLines(string(data))
	return lines, err
}

func extractText(path string) (lines []SourceLine, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read resume: %s", path)
		return lines, err
	}

	lines = splitLines(string(data))
	return lines, err
}

func splitLines(content string) (lines []SourceLine) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")

	lines = make([]SourceLine, 0)
	if content == "" {
		return lines
	}

	for _, text := range strings.Split(content, "\n") {
		if strings.TrimSpace(text) == "" {
			lines = append(lines, blankLine(AlignUnset))
			continue
		}
		lines = append(lines, SourceLine{Text: text})
	}

	return lines
}

package extract

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Format identifies the source file format of extracted text.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Result is the normalized plain text pulled from an uploaded file.
type Result struct {
	Text         string
	SourceFormat Format
}

// Decoder turns a binary file format into raw text. Implementations wrap
// third-party format parsers so the extractor itself stays testable.
type Decoder interface {
	Decode(data []byte) (string, error)
}

// Extractor dispatches uploads by extension to the configured decoders.
type Extractor struct {
	PDF  Decoder
	DOCX Decoder
}

// New returns an Extractor wired with the real PDF and DOCX decoders.
func New() *Extractor {
	return &Extractor{
		PDF:  PDFDecoder{},
		DOCX: DOCXDecoder{},
	}
}

// Extract pulls normalized text from fileBytes. The declared file name
// drives format dispatch; unknown extensions are rejected.
func (e *Extractor) Extract(data []byte, fileName string) (Result, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))

	var (
		format Format
		text   string
		err    error
	)
	switch ext {
	case "txt":
		format = FormatTXT
		text = decodeTxt(data)
	case "pdf":
		format = FormatPDF
		if e.PDF == nil {
			return Result{}, &MissingDecoderError{Format: FormatPDF}
		}
		text, err = e.PDF.Decode(data)
	case "docx", "doc":
		format = FormatDOCX
		if e.DOCX == nil {
			return Result{}, &MissingDecoderError{Format: FormatDOCX}
		}
		text, err = e.DOCX.Decode(data)
	default:
		return Result{}, &UnsupportedFormatError{Ext: ext}
	}
	if err != nil {
		return Result{}, fmt.Errorf("process %s file: %w", strings.ToUpper(string(format)), err)
	}

	normalized := NormalizeText(text)
	if normalized == "" {
		return Result{}, &EmptyContentError{Format: format}
	}
	return Result{Text: normalized, SourceFormat: format}, nil
}

// decodeTxt decodes plain-text bytes as UTF-8, falling back to a Latin-1
// style byte-to-rune mapping when the payload is not valid UTF-8.
func decodeTxt(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		b.WriteRune(rune(c))
	}
	return b.String()
}

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	disallowed     = regexp.MustCompile("[^\\w\\p{L}\\p{N}\\s\\-.,;:()\\[\\]@#%&*+=<>?/\\\\|\"'`~]")
	spaceRuns      = regexp.MustCompile(` +`)
)

// NormalizeText collapses whitespace runs to single spaces, drops
// characters outside the word/punctuation allow-list, and trims.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = disallowed.ReplaceAllString(text, " ")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

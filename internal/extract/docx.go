package extract

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCXDecoder extracts text using github.com/nguyenthenguyen/docx to open
// the package and an XML token walk over word/document.xml.
type DOCXDecoder struct{}

// Decode returns body paragraphs followed by table cell text in row-major
// order, each non-empty unit on its own line.
func (DOCXDecoder) Decode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	return documentUnits(doc.Editable().GetContent())
}

// documentUnits walks the document XML collecting paragraphs outside
// tables first, then table cells. Word stores tables inline with body
// paragraphs, so table content has to be held back until the walk ends.
func documentUnits(raw string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))

	var (
		paragraphs []string
		cells      []string
		paragraph  strings.Builder
		cell       strings.Builder
		tableDepth int
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					paragraph.Reset()
				}
			case "tc":
				if tableDepth > 0 {
					cell.Reset()
				}
			}
		case xml.CharData:
			if tableDepth > 0 {
				cell.Write(t)
			} else {
				paragraph.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "p":
				if tableDepth == 0 {
					if text := strings.TrimSpace(paragraph.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
					paragraph.Reset()
				} else {
					cell.WriteString(" ")
				}
			case "tc":
				if tableDepth > 0 {
					if text := strings.TrimSpace(cell.String()); text != "" {
						cells = append(cells, text)
					}
					cell.Reset()
				}
			case "br", "tab":
				if tableDepth > 0 {
					cell.WriteString(" ")
				} else {
					paragraph.WriteString(" ")
				}
			}
		}
	}

	return strings.Join(append(paragraphs, cells...), "\n"), nil
}

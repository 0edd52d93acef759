package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFDecoder extracts per-page text using github.com/ledongthuc/pdf.
type PDFDecoder struct{}

// Decode returns the text of each page joined with newlines. Pages that
// fail to decode contribute nothing rather than failing the whole file.
func (PDFDecoder) Decode(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

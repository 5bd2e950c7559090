package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

func readPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some broken cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: pdf reader: %v", ErrMalformed, r)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", ErrMalformed, err)
	}

	pages := make([]string, 0, doc.NumPage())
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		// blank pages may omit their content stream entirely
		if page.V.IsNull() || page.V.Key("Contents").IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrMalformed, i, err)
		}
		pages = append(pages, content)
	}

	return joinPages(pages), nil
}

// joinPages concatenates page text with newlines, dropping pages without text.
func joinPages(pages []string) string {
	kept := make([]string, 0, len(pages))
	for _, page := range pages {
		if page == "" {
			continue
		}
		kept = append(kept, page)
	}
	return strings.Join(kept, "\n")
}

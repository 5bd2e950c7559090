package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const docxBody = "word/document.xml"

// readDocx walks word/document.xml and collects run text, one line per paragraph.
func readDocx(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: open docx archive: %v", ErrMalformed, err)
	}

	var body *zip.File
	for _, f := range archive.File {
		if f.Name == docxBody {
			body = f
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("%w: %s missing", ErrMalformed, docxBody)
	}

	rc, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %v", ErrMalformed, docxBody, err)
	}
	defer rc.Close()

	return paragraphText(rc)
}

// paragraphText collects w:t text, one line per w:p. Tabs and breaks count
// only inside a w:r run so tab-stop definitions in paragraph properties
// (w:pPr/w:tabs) do not leak into the text.
func paragraphText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var (
		out      strings.Builder
		inText   bool
		runDepth int
		skip     int
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: parse %s: %v", ErrMalformed, docxBody, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if skip > 0 || t.Name.Local == "tabs" {
				skip++
				continue
			}
			switch t.Name.Local {
			case "r":
				runDepth++
			case "t":
				inText = runDepth > 0
			case "tab":
				if runDepth > 0 {
					out.WriteByte('\t')
				}
			case "br", "cr":
				if runDepth > 0 {
					out.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			switch t.Name.Local {
			case "r":
				if runDepth > 0 {
					runDepth--
				}
			case "t":
				inText = false
			case "p":
				out.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				out.Write(t)
			}
		}
	}

	return strings.TrimRight(out.String(), "\n"), nil
}

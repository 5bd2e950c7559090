// Package extractor turns uploaded documents into plain text.
//
// The document kind is resolved once from the file extension and dispatched
// through a lookup table of readers. Unsupported kinds yield an empty string.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// ErrMalformed indicates the file content could not be read as its declared kind.
var ErrMalformed = errors.New("document is unreadable or malformed")

// Kind identifies the document format of an upload.
type Kind int

const (
	Unsupported Kind = iota
	PlainText
	WordDocument
	PDFDocument
)

func (k Kind) String() string {
	switch k {
	case PlainText:
		return "txt"
	case WordDocument:
		return "docx"
	case PDFDocument:
		return "pdf"
	default:
		return "unsupported"
	}
}

var kindByExtension = map[string]Kind{
	".txt":  PlainText,
	".docx": WordDocument,
	".pdf":  PDFDocument,
}

// KindOf resolves the document kind from a file name, ignoring case.
func KindOf(name string) Kind {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
	if kind, ok := kindByExtension[ext]; ok {
		return kind
	}
	return Unsupported
}

// SupportedExtensions lists the extensions accepted at the upload boundary.
func SupportedExtensions() []string {
	return []string{"txt", "docx", "pdf"}
}

// File is an uploaded document. Name is only used for extension sniffing.
type File struct {
	Name string
	Data []byte
}

// Result carries the extracted text with the resolved kind and sniffed MIME type.
type Result struct {
	Kind     Kind
	MimeType string
	Text     string
}

type reader func(data []byte) (string, error)

// Extractor dispatches extraction by document kind.
type Extractor struct {
	readers map[Kind]reader
}

// New builds an extractor wired with the txt, docx and pdf readers.
func New() *Extractor {
	return &Extractor{
		readers: map[Kind]reader{
			PlainText:    readText,
			WordDocument: readDocx,
			PDFDocument:  readPDF,
		},
	}
}

// Extract returns the plain text of file. Unsupported kinds return an empty
// result without error.
func (e *Extractor) Extract(ctx context.Context, file File) (Result, error) {
	kind := KindOf(file.Name)
	read, ok := e.readers[kind]
	if !ok {
		return Result{Kind: Unsupported}, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{Kind: kind}, err
	}

	mime := mimetype.Detect(file.Data)
	result := Result{Kind: kind, MimeType: mime.String()}

	if err := checkSignature(kind, mime); err != nil {
		return result, err
	}

	text, err := read(file.Data)
	if err != nil {
		if errors.Is(err, ErrMalformed) {
			return result, err
		}
		return result, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	result.Text = text
	return result, nil
}

func checkSignature(kind Kind, mime *mimetype.MIME) error {
	switch kind {
	case PDFDocument:
		if !mime.Is("application/pdf") {
			return fmt.Errorf("%w: expected pdf content, got %s", ErrMalformed, mime.String())
		}
	case WordDocument:
		for m := mime; m != nil; m = m.Parent() {
			if m.Is("application/zip") {
				return nil
			}
		}
		return fmt.Errorf("%w: expected docx container, got %s", ErrMalformed, mime.String())
	}
	return nil
}

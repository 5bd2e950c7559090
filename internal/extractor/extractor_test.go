package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := zip.NewWriter(buf)

	part, err := writer.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = part.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"></Types>`))
	require.NoError(t, err)

	part, err = writer.Create(docxBody)
	require.NoError(t, err)
	_, err = part.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body +
		`</w:body></w:document>`))
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	return buf.Bytes()
}

// buildPDF assembles a minimal PDF 1.4 file with a correct cross-reference
// table. Each entry of pages is a content stream; an empty entry produces a
// page without a Contents key.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // page tree, filled in below
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}
	kids := ""
	for _, content := range pages {
		pageNum := len(objects) + 1
		kids += fmt.Sprintf("%d 0 R ", pageNum)
		if content == "" {
			objects = append(objects, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
			continue
		}
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R >>", pageNum+1),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /Resources << /Font << /F1 3 0 R >> >> >>", kids, len(pages))

	buf := &bytes.Buffer{}
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, offset := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", offset)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestKindOf(t *testing.T) {
	cases := map[string]Kind{
		"notes.txt":       PlainText,
		"NOTES.TXT":       PlainText,
		"essay.Docx":      WordDocument,
		"chapter.pdf":     PDFDocument,
		"archive.tar.PDF": PDFDocument,
		"slides.pptx":     Unsupported,
		"README":          Unsupported,
		"":                Unsupported,
	}
	for name, want := range cases {
		require.Equal(t, want, KindOf(name), name)
	}
}

func TestExtractPlainText(t *testing.T) {
	ex := New()
	result, err := ex.Extract(context.Background(), File{Name: "Homework.TXT", Data: []byte("Photosynthesis uses sunlight.\n")})
	require.NoError(t, err)
	require.Equal(t, PlainText, result.Kind)
	require.Equal(t, "Photosynthesis uses sunlight.\n", result.Text)
	require.Contains(t, result.MimeType, "text/plain")
}

func TestExtractPlainTextRejectsInvalidUTF8(t *testing.T) {
	ex := New()
	_, err := ex.Extract(context.Background(), File{Name: "broken.txt", Data: []byte{0xff, 0xfe, 0xfd}})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestExtractDocxParagraphs(t *testing.T) {
	body := `<w:p><w:r><w:t>The water cycle</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">Water </w:t></w:r><w:r><w:t>evaporates.</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Step</w:t><w:tab/><w:t>one</w:t></w:r></w:p>`

	ex := New()
	result, err := ex.Extract(context.Background(), File{Name: "lesson.docx", Data: buildDocx(t, body)})
	require.NoError(t, err)
	require.Equal(t, WordDocument, result.Kind)
	require.Equal(t, "The water cycle\nWater evaporates.\nStep\tone", result.Text)
}

func TestExtractDocxIgnoresTabStopDefinitions(t *testing.T) {
	body := `<w:p><w:pPr><w:pStyle w:val="Heading1"/><w:tabs>` +
		`<w:tab w:val="left" w:pos="720"/><w:tab w:val="right" w:pos="9360"/>` +
		`</w:tabs></w:pPr><w:r><w:t>Heading</w:t></w:r></w:p>` +
		`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="1440"/></w:tabs></w:pPr>` +
		`<w:r><w:t>Name</w:t></w:r><w:r><w:tab/><w:t>Score</w:t></w:r><w:r><w:br/><w:t>Total</w:t></w:r></w:p>`

	ex := New()
	result, err := ex.Extract(context.Background(), File{Name: "report.docx", Data: buildDocx(t, body)})
	require.NoError(t, err)
	require.Equal(t, "Heading\nName\tScore\nTotal", result.Text)
}

func TestExtractDocxRejectsNonArchive(t *testing.T) {
	ex := New()
	_, err := ex.Extract(context.Background(), File{Name: "lesson.docx", Data: []byte("plain words, not a zip")})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestExtractDocxMissingBody(t *testing.T) {
	buf := &bytes.Buffer{}
	writer := zip.NewWriter(buf)
	part, err := writer.Create("docProps/app.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte("<Properties/>"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	ex := New()
	_, err = ex.Extract(context.Background(), File{Name: "empty.docx", Data: buf.Bytes()})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestExtractPDFRejectsGarbage(t *testing.T) {
	ex := New()

	_, err := ex.Extract(context.Background(), File{Name: "scan.pdf", Data: []byte("definitely not a pdf")})
	require.ErrorIs(t, err, ErrMalformed)

	_, err = ex.Extract(context.Background(), File{Name: "scan.pdf", Data: []byte("%PDF-1.4\n%broken body without xref\n")})
	require.ErrorIs(t, err, ErrMalformed)
}

func TestExtractPDFPages(t *testing.T) {
	data := buildPDF(t,
		"BT /F1 12 Tf 72 720 Td (Plants need light.) Tj T* (They make sugar.) Tj ET",
		"",
		"BT /F1 12 Tf 72 720 Td [(Water ) -250 (evaporates.)] TJ ET",
	)

	ex := New()
	result, err := ex.Extract(context.Background(), File{Name: "biology.pdf", Data: data})
	require.NoError(t, err)
	require.Equal(t, PDFDocument, result.Kind)
	require.Equal(t, "application/pdf", result.MimeType)
	require.Equal(t, "Plants need light.\nThey make sugar.\nWater evaporates.", result.Text)
}

func TestExtractUnsupportedReturnsEmpty(t *testing.T) {
	ex := New()
	result, err := ex.Extract(context.Background(), File{Name: "slides.pptx", Data: []byte("PK whatever")})
	require.NoError(t, err)
	require.Equal(t, Unsupported, result.Kind)
	require.Equal(t, "", result.Text)
}

func TestJoinPagesSkipsEmptyPages(t *testing.T) {
	require.Equal(t, "first\nthird", joinPages([]string{"first", "", "third", ""}))
	require.Equal(t, "", joinPages(nil))
	require.Equal(t, " \nlast", joinPages([]string{" ", "last"}))
}

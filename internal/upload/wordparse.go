package upload

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Admins seed rich-text notice content from Word documents. A .docx is a zip
// archive whose word/document.xml holds the text as paragraphs of runs; this
// walks that XML and emits plain paragraph HTML with bold/italic preserved.

var ErrNotDocx = errors.New("file is not a .docx document")

var docxPolicy = bluemonday.UGCPolicy()

// ConvertDocxToHTML converts the main body of a .docx document to sanitized
// HTML.
func ConvertDocxToHTML(r io.ReaderAt, size int64) (string, error) {
	archive, err := zip.NewReader(r, size)
	if err != nil {
		return "", ErrNotDocx
	}

	var doc *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", ErrNotDocx
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("opening document body: %w", err)
	}
	defer rc.Close()

	out, err := renderDocumentXML(rc)
	if err != nil {
		return "", err
	}
	return docxPolicy.Sanitize(out), nil
}

// renderDocumentXML streams WordprocessingML tokens into HTML. Only the
// constructs the notice editor can represent are kept: paragraphs, line
// breaks, bold and italic runs.
func renderDocumentXML(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	var b strings.Builder
	var para strings.Builder
	inParagraph := false
	pendingBold, pendingItalic := false, false

	flushParagraph := func() {
		text := para.String()
		para.Reset()
		if strings.TrimSpace(text) == "" {
			return
		}
		b.WriteString("<p>")
		b.WriteString(text)
		b.WriteString("</p>")
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed document body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
			case "r":
				pendingBold, pendingItalic = false, false
			case "b":
				pendingBold = runPropOn(t)
			case "i":
				pendingItalic = runPropOn(t)
			case "br":
				para.WriteString("<br/>")
			case "t":
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return "", fmt.Errorf("malformed document body: %w", err)
				}
				writeRun(&para, text, pendingBold, pendingItalic)
			}
		case xml.EndElement:
			if t.Name.Local == "p" && inParagraph {
				inParagraph = false
				flushParagraph()
			}
		}
	}
	flushParagraph()
	return b.String(), nil
}

// runPropOn reads a run property's w:val attribute. Word emits an explicit
// off value ("0"/"false") when a run disables a style-inherited property; a
// bare element means on.
func runPropOn(el xml.StartElement) bool {
	for _, a := range el.Attr {
		if a.Name.Local == "val" {
			return a.Value != "0" && !strings.EqualFold(a.Value, "false")
		}
	}
	return true
}

func writeRun(b *strings.Builder, text string, bold, italic bool) {
	if bold {
		b.WriteString("<strong>")
	}
	if italic {
		b.WriteString("<em>")
	}
	b.WriteString(html.EscapeString(text))
	if italic {
		b.WriteString("</em>")
	}
	if bold {
		b.WriteString("</strong>")
	}
}

package ocr

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDocx pulls the visible text out of word/document.xml. Some parents
// fill the form in Word and attach the document instead of a scan, so no OCR
// pass is needed here.
func extractDocx(path string) (Result, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return Result{}, fmt.Errorf("docx %s: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Result{}, fmt.Errorf("docx %s: %w", path, err)
		}
		text, err := docxText(rc)
		rc.Close()
		if err != nil {
			return Result{}, fmt.Errorf("docx %s: %w", path, err)
		}
		return Result{Text: text, Pages: 1, Method: "docx-text"}, nil
	}
	return Result{}, fmt.Errorf("docx %s: no word/document.xml", path)
}

// docxText walks the WordprocessingML token stream. Text runs (w:t) are
// concatenated, paragraphs (w:p) and line breaks (w:br) become newlines.
func docxText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	var inText bool
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "br":
				b.WriteByte('\n')
			case "tab":
				b.WriteByte(' ')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

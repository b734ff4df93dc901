package ocr

import (
	"archive/zip"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pta-tools/reimb-parser/constants"
)

type stubRunner struct {
	calls []string
	run   func(name string, args []string) (string, string, error)
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	out, errOut, err := s.run(name, args)
	return []byte(out), []byte(errOut), err
}

func newTestExtractor(t *testing.T, run func(name string, args []string) (string, string, error)) (*Extractor, *stubRunner) {
	t.Helper()
	stub := &stubRunner{run: run}
	e := NewExtractor(Config{}, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	e.runner = stub
	return e, stub
}

func stubPageCount(t *testing.T, n int) {
	t.Helper()
	orig := pageCount
	pageCount = func(string) (int, error) { return n, nil }
	t.Cleanup(func() { pageCount = orig })
}

func touch(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("placeholder"), 0o644))
	return path
}

func TestExtractFilePDFTextLayer(t *testing.T) {
	stubPageCount(t, 2)
	layer := "Check Requestor: Sarah Mitchell\nDate: 03-15-2024\nAmount: $127.50\n"
	e, stub := newTestExtractor(t, func(name string, _ []string) (string, string, error) {
		require.Equal(t, "pdftotext", name)
		return layer, "", nil
	})

	res, err := e.ExtractFile(context.Background(), touch(t, "form.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, layer, res.Text)
	assert.Equal(t, []string{"pdftotext"}, stub.calls)
}

func TestExtractFilePDFRasterFallback(t *testing.T) {
	stubPageCount(t, 2)
	e, stub := newTestExtractor(t, func(name string, args []string) (string, string, error) {
		switch name {
		case "pdftotext":
			return " \n", "", nil
		case "pdftoppm":
			prefix := args[len(args)-1]
			for _, suffix := range []string{"-1.png", "-2.png"} {
				if err := os.WriteFile(prefix+suffix, []byte("png"), 0o644); err != nil {
					return "", "", err
				}
			}
			return "", "", nil
		case "tesseract":
			if strings.HasSuffix(args[0], "-1.png") {
				return "first page", "", nil
			}
			return "second page", "", nil
		}
		t.Fatalf("unexpected command %q", name)
		return "", "", nil
	})

	res, err := e.ExtractFile(context.Background(), touch(t, "scan.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, "first page"+constants.PageBreakMarker+"second page", res.Text)
	assert.Equal(t, []string{"pdftotext", "pdftoppm", "tesseract", "tesseract"}, stub.calls)
}

func TestExtractFileImage(t *testing.T) {
	e, _ := newTestExtractor(t, func(name string, args []string) (string, string, error) {
		require.Equal(t, "tesseract", name)
		assert.Equal(t, []string{"stdout", "-l", "eng"}, args[1:])
		return "Event: Fall Festival", "", nil
	})

	res, err := e.ExtractFile(context.Background(), touch(t, "form.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "Event: Fall Festival", res.Text)
}

func TestExtractFileDocx(t *testing.T) {
	const doc = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Check Requestor: </w:t></w:r><w:r><w:t>Jennifer Walsh</w:t></w:r></w:p>
    <w:p><w:r><w:t>Amount: $85.00</w:t></w:r></w:p>
  </w:body>
</w:document>`

	path := filepath.Join(t.TempDir(), "form.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(doc))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	e, _ := newTestExtractor(t, func(string, []string) (string, string, error) {
		t.Fatal("docx extraction must not shell out")
		return "", "", nil
	})

	res, err := e.ExtractFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "docx-text", res.Method)
	assert.Contains(t, res.Text, "Check Requestor: Jennifer Walsh\n")
	assert.Contains(t, res.Text, "Amount: $85.00\n")
}

func TestExtractFileUnsupported(t *testing.T) {
	e, _ := newTestExtractor(t, func(string, []string) (string, string, error) {
		return "", "", nil
	})
	_, err := e.ExtractFile(context.Background(), touch(t, "notes.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

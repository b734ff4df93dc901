package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pta-tools/reimb-parser/constants"
)

// Scanned forms often yield a handful of stray glyphs from the embedded text
// layer. Anything below this is treated as "no usable text layer".
const minTextLayerBytes = 40

func (e *Extractor) extractPDF(ctx context.Context, path string) (Result, error) {
	pages, err := pageCount(path)
	if err != nil {
		return Result{}, fmt.Errorf("pdf %s: %w", path, err)
	}
	if pages == 0 {
		return Result{}, fmt.Errorf("pdf %s: no pages", path)
	}

	text, err := e.pdfTextLayer(ctx, path)
	if err == nil && len(strings.TrimSpace(text)) >= minTextLayerBytes {
		return Result{Text: text, Pages: pages, Method: "pdf-text"}, nil
	}
	if err != nil {
		e.logger.Debug("ocr.pdftotext_failed", "path", path, "error", err)
	}

	text, err = e.pdfRasterOCR(ctx, path, pages)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Pages: pages, Method: "pdf-ocr"}, nil
}

var pageCount = func(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return api.PageCount(f, nil)
}

// pdfTextLayer asks poppler for the embedded text layer, if any.
func (e *Extractor) pdfTextLayer(ctx context.Context, path string) (string, error) {
	stdout, stderr, err := e.runner.Run(ctx, e.cfg.Pdftotext,
		"-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w (%s)", err, strings.TrimSpace(string(stderr)))
	}
	return string(stdout), nil
}

// pdfRasterOCR rasterizes every page and runs tesseract over each one.
// Pages are joined with the page break marker so downstream extraction sees
// the whole form as one document.
func (e *Extractor) pdfRasterOCR(ctx context.Context, path string, pages int) (string, error) {
	tmpDir, err := os.MkdirTemp("", "reimb-ocr-*")
	if err != nil {
		return "", fmt.Errorf("scratch dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	_, stderr, err := e.runner.Run(ctx, e.cfg.Pdftoppm,
		"-png", "-r", strconv.Itoa(e.cfg.DPI), path, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %w (%s)", err, strings.TrimSpace(string(stderr)))
	}

	pngs, err := filepath.Glob(prefix + "*.png")
	if err != nil {
		return "", err
	}
	if len(pngs) == 0 {
		return "", fmt.Errorf("pdftoppm produced no pages for %s", path)
	}
	// pdftoppm zero pads page numbers, so lexicographic order is page order.
	sort.Strings(pngs)

	texts := make([]string, 0, len(pngs))
	for _, png := range pngs {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		stdout, stderr, err := e.runner.Run(ctx, e.cfg.Tesseract,
			png, "stdout", "-l", e.cfg.TesseractLang)
		if err != nil {
			return "", fmt.Errorf("tesseract %s: %w (%s)", filepath.Base(png), err, strings.TrimSpace(string(stderr)))
		}
		texts = append(texts, string(stdout))
	}

	if len(texts) != pages {
		e.logger.Warn("ocr.page_mismatch", "path", path, "expected", pages, "rasterized", len(texts))
	}
	return strings.Join(texts, constants.PageBreakMarker), nil
}

package ocr

import (
	"context"
	"fmt"
	"strings"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	stdout, stderr, err := e.runner.Run(ctx, e.cfg.Tesseract,
		path, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return Result{}, fmt.Errorf("tesseract %s: %w (%s)", path, err, strings.TrimSpace(string(stderr)))
	}
	return Result{Text: string(stdout), Pages: 1, Method: "image-ocr"}, nil
}

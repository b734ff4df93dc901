// Package archive files processed attachments into month folders under the
// archive root, renamed so the treasurer can match them to ledger rows.
package archive

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type Archiver struct {
	root   string
	logger *slog.Logger
}

func New(root string, logger *slog.Logger) *Archiver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Archiver{root: root, logger: logger}
}

// Store copies the given files into "<root>/<MONTH>/" named
// "<id> <LastName> <Type> <n>.<ext>", e.g. "156 Kim Reimbursement 1.pdf".
// month may be empty when the form date did not parse; those files land in
// an "UNDATED" folder rather than being dropped. It returns the archived
// paths.
func (a *Archiver) Store(paths []string, entryID int, requestor, month string) ([]string, error) {
	folder := strings.ToUpper(strings.TrimSpace(month))
	if folder == "" {
		folder = "UNDATED"
	}
	dir := filepath.Join(a.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("archive dir %s: %w", dir, err)
	}

	lastName := extractLastName(requestor)
	archived := make([]string, 0, len(paths))
	for i, src := range paths {
		name := fmt.Sprintf("%d %s %s %d%s",
			entryID, lastName, detectFileType(src), i+1,
			strings.ToLower(filepath.Ext(src)))
		dst := filepath.Join(dir, name)
		if err := copyFile(src, dst); err != nil {
			return archived, err
		}
		a.logger.Info("archive.stored", "src", filepath.Base(src), "dst", dst)
		archived = append(archived, dst)
	}
	return archived, nil
}

func extractLastName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "Unknown"
	}
	return parts[len(parts)-1]
}

// detectFileType classifies by the original filename so an attached invoice
// keeps that label in the archive.
func detectFileType(path string) string {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "invoice"):
		return "Invoice"
	case strings.Contains(name, "receipt"):
		return "Receipt"
	default:
		return "Reimbursement"
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy to %s: %w", dst, err)
	}
	return out.Close()
}

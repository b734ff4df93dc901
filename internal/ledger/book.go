package ledger

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pta-tools/reimb-parser/internal/common"
)

// Book is an open ledger workbook. It is not safe for concurrent use; the
// pipeline processes one request at a time.
type Book struct {
	f      *excelize.File
	path   string
	sheet  string
	logger *slog.Logger
}

// Open loads an existing workbook. A missing file is ErrLedgerMissing so the
// caller can tell the user to run init (or fix the configured path) instead
// of silently creating an empty book next to the real one.
func Open(path, sheet string, logger *slog.Logger) (*Book, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrLedgerMissing, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}
	if idx, _ := f.GetSheetIndex(sheet); idx == -1 {
		f.Close()
		return nil, fmt.Errorf("ledger %s has no sheet %q", path, sheet)
	}
	return &Book{f: f, path: path, sheet: sheet, logger: logger}, nil
}

// Create writes a fresh workbook with the header row and returns it open.
func Create(path, sheet string, logger *slog.Logger) (*Book, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	// Drop the default sheet unless it is the one we want.
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	if err := f.SaveAs(path); err != nil {
		return nil, fmt.Errorf("create ledger %s: %w", path, err)
	}
	return &Book{f: f, path: path, sheet: sheet, logger: logger}, nil
}

func (b *Book) Close() error {
	return b.f.Close()
}

// NextID scans column A and returns the highest numeric ID plus one. Header
// text and blank cells are skipped.
func (b *Book) NextID() (int, error) {
	rows, err := b.f.GetRows(b.sheet)
	if err != nil {
		return 0, fmt.Errorf("read ledger rows: %w", err)
	}
	maxID := 0
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1, nil
}

// Append validates the row, writes it after the last occupied row, and saves
// the workbook. It returns the 1-based row number written.
func (b *Book) Append(r Row) (int, error) {
	start := time.Now()
	if err := Validate(r); err != nil {
		return 0, err
	}

	rows, err := b.f.GetRows(b.sheet)
	if err != nil {
		return 0, fmt.Errorf("read ledger rows: %w", err)
	}
	rowNum := len(rows) + 1

	for i, v := range r.cells() {
		cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
		if err := b.f.SetCellValue(b.sheet, cell, v); err != nil {
			return 0, fmt.Errorf("write cell %s: %w", cell, err)
		}
	}
	if err := b.f.Save(); err != nil {
		return 0, fmt.Errorf("save ledger: %w", err)
	}

	b.logger.Info("ledger.append.ok",
		"id", r.ID,
		"row", rowNum,
		"submitted_by", r.SubmittedBy,
		"amount", r.AmountSubmitted,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rowNum, nil
}

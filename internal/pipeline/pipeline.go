// Package pipeline drives one reimbursement request from .eml file to ledger
// row: parse email, OCR attachments, extract fields, interactive review,
// append, archive.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pta-tools/reimb-parser/constants"
	"github.com/pta-tools/reimb-parser/internal/archive"
	"github.com/pta-tools/reimb-parser/internal/common"
	"github.com/pta-tools/reimb-parser/internal/email"
	"github.com/pta-tools/reimb-parser/internal/extract"
	"github.com/pta-tools/reimb-parser/internal/ledger"
	"github.com/pta-tools/reimb-parser/internal/ocr"
	"github.com/pta-tools/reimb-parser/internal/review"
)

// textExtractor is what the processor needs from the OCR layer.
type textExtractor interface {
	ExtractFile(ctx context.Context, path string) (ocr.Result, error)
}

// book is what the processor needs from an open ledger workbook.
type book interface {
	NextID() (int, error)
	Append(ledger.Row) (int, error)
	Close() error
}

// storer archives attachments after a successful append.
type storer interface {
	Store(paths []string, entryID int, requestor, month string) ([]string, error)
}

type Processor struct {
	cfg     *common.Config
	session *review.Session
	logger  *slog.Logger
	dryRun  bool

	extractor textExtractor
	archiver  storer
	openBook  func() (book, error)
}

func NewProcessor(cfg *common.Config, session *review.Session, logger *slog.Logger, dryRun bool) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:     cfg,
		session: session,
		logger:  logger,
		dryRun:  dryRun,
		extractor: ocr.NewExtractor(ocr.Config{
			Pdftotext:     cfg.OCR.Pdftotext,
			Pdftoppm:      cfg.OCR.Pdftoppm,
			Tesseract:     cfg.OCR.Tesseract,
			TesseractLang: cfg.OCR.TesseractLang,
			DPI:           cfg.OCR.DPI,
		}, logger),
		archiver: archive.New(cfg.Archive.Dir, logger),
		openBook: func() (book, error) {
			return ledger.Open(cfg.Ledger.Path, cfg.Ledger.SheetName, logger)
		},
	}
}

// ProcessFile runs the full pipeline for a single .eml file.
func (p *Processor) ProcessFile(ctx context.Context, path string) error {
	jobID := uuid.New()
	start := time.Now()
	logger := p.logger.With("job_id", jobID.String(), "eml", filepath.Base(path))
	logger.Info("pipeline.start")

	msg, err := email.ParseFile(path, logger)
	if err != nil {
		return err
	}
	if !msg.HasProcessable() {
		return fmt.Errorf("%w in %s", common.ErrNoAttachments, filepath.Base(path))
	}
	defer email.Cleanup(msg.Attachments, logger)

	p.session.Info(fmt.Sprintf("From: %s <%s>", msg.SenderName, msg.SenderEmail))

	combined, err := p.attachmentText(ctx, msg)
	if err != nil {
		return err
	}

	rec := extract.Extract(combined)
	form := review.NewForm(rec)
	if err := p.session.ReviewAndEdit(form); err != nil {
		return err
	}

	paymentType, budgetCategory, budgetItem, err := p.askClassification()
	if err != nil {
		return err
	}

	if p.dryRun {
		p.session.Info("Dry run mode, nothing will be written")
		p.printPlanned(form, paymentType, budgetCategory, budgetItem)
		logger.Info("pipeline.dry_run", "elapsed_ms", time.Since(start).Milliseconds())
		return nil
	}

	if !p.session.Confirm("Add to ledger?", true) {
		p.session.Info("Skipped adding to ledger.")
		return nil
	}

	b, err := p.openBook()
	if err != nil {
		return err
	}
	defer b.Close()

	nextID, err := b.NextID()
	if err != nil {
		return err
	}
	row := ledger.BuildRow(form.Values(), msg.Date, budgetCategory, budgetItem, nextID, paymentType)
	rowNum, err := b.Append(row)
	if err != nil {
		return err
	}
	p.session.Success(fmt.Sprintf("Added entry #%d (row %d) to %q", nextID, rowNum, p.cfg.Ledger.SheetName))

	p.archiveAttachments(msg, row, nextID, form.Get("Requestor"))

	logger.Info("pipeline.ok", "entry_id", nextID, "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}

// attachmentText OCRs every attachment (PDFs first, then images, then
// documents) and joins the results with the attachment marker.
func (p *Processor) attachmentText(ctx context.Context, msg *email.Message) (string, error) {
	var texts []string
	for _, group := range [][]email.Attachment{msg.PDFs(), msg.Images(), msg.Docs()} {
		for _, att := range group {
			res, err := p.extractor.ExtractFile(ctx, att.Path)
			if err != nil {
				return "", fmt.Errorf("extract %s: %w", att.Filename, err)
			}
			texts = append(texts, res.Text)
		}
	}
	return strings.Join(texts, constants.NextAttachmentMarker), nil
}

func (p *Processor) askClassification() (paymentType, budgetCategory, budgetItem string, err error) {
	types := p.cfg.Review.PaymentTypes
	if len(types) == 0 {
		types = constants.PaymentTypes
	}
	paymentType, err = p.session.SelectFromList(types, "Select Payment Type", true)
	if err != nil {
		return "", "", "", err
	}

	if cats := p.cfg.Review.BudgetCategories; len(cats) > 0 {
		budgetCategory, err = p.session.SelectFromList(cats, "Select Budget Category", true)
	} else {
		budgetCategory, err = p.session.Ask("Enter Budget Category")
	}
	if err != nil {
		return "", "", "", err
	}

	if items := p.cfg.Review.BudgetItems; len(items) > 0 {
		budgetItem, err = p.session.SelectFromList(items, "Select Budget Item", true)
	} else {
		budgetItem, err = p.session.Ask("Enter Budget Item")
	}
	if err != nil {
		return "", "", "", err
	}
	return paymentType, budgetCategory, budgetItem, nil
}

func (p *Processor) printPlanned(form *review.Form, paymentType, budgetCategory, budgetItem string) {
	p.session.Info(fmt.Sprintf("Payment Type: %s; Budget Category: %s; Budget Item: %s",
		paymentType, budgetCategory, budgetItem))
	p.session.PrintTable(form, "Data that would be written")
}

// archiveAttachments copies the attachments into the archive tree. Failures
// are reported but never fail the run; the ledger row is already written.
func (p *Processor) archiveAttachments(msg *email.Message, row ledger.Row, entryID int, requestor string) {
	if p.cfg.Archive.Dir == "" || len(msg.Attachments) == 0 {
		return
	}
	if !p.session.Confirm("Archive attachments?", true) {
		return
	}

	// Prefer the email received month, fall back to the form date's month.
	month := row.Month
	if !msg.Date.IsZero() {
		month = msg.Date.Month().String()
	}

	paths := make([]string, 0, len(msg.Attachments))
	for _, att := range msg.Attachments {
		paths = append(paths, att.Path)
	}
	archived, err := p.archiver.Store(paths, entryID, requestor, month)
	if err != nil {
		p.session.Failure(fmt.Sprintf("Failed to archive attachments: %v", err))
		return
	}
	p.session.Success(fmt.Sprintf("Archived %d file(s) to %s", len(archived), strings.ToUpper(month)))
}

// Stats summarizes a folder run.
type Stats struct {
	Processed int
	Succeeded int
	Failed    int
}

// ProcessFolder runs the pipeline over every .eml file in dir, pausing for
// confirmation between files. A user cancel inside one file counts as a
// failure for that file but does not stop the batch; declining to continue
// does.
func (p *Processor) ProcessFolder(ctx context.Context, dir string) (Stats, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Stats{}, fmt.Errorf("read folder %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".eml") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		p.session.Info(fmt.Sprintf("No .eml files found in %s", dir))
		return Stats{}, nil
	}
	p.session.Info(fmt.Sprintf("Found %d .eml file(s)", len(files)))

	var stats Stats
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Processed++
		if err := p.ProcessFile(ctx, file); err != nil {
			stats.Failed++
			if errors.Is(err, common.ErrUserCancelled) {
				p.session.Info(fmt.Sprintf("Cancelled %s", filepath.Base(file)))
			} else {
				p.session.Failure(fmt.Sprintf("Error processing %s: %v", filepath.Base(file), err))
			}
		} else {
			stats.Succeeded++
		}

		if i < len(files)-1 && !p.session.Confirm("Continue to next file?", true) {
			p.session.Info("Stopping batch processing.")
			break
		}
	}

	p.session.Info(fmt.Sprintf("Summary: %d successful, %d failed", stats.Succeeded, stats.Failed))
	return stats, nil
}

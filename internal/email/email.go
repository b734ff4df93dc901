// Package email pulls metadata, body text, and processable attachments out of
// .eml files saved from the PTA inbox.
package email

import (
	"fmt"
	"log/slog"
	"mime"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pta-tools/reimb-parser/constants"
)

// Message is the parsed email: who sent the request, when, and which
// attachments are worth feeding to OCR.
type Message struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Date        time.Time // zero when the header is missing or unparsable
	BodyText    string
	Attachments []Attachment
}

// Attachment is a single decoded attachment written to a scratch directory.
type Attachment struct {
	Path     string // location of the decoded payload on disk
	Filename string // original filename from the part header
	Format   string // constants.PDF, IMAGE, or DOC
}

// PDFs returns the PDF attachments in arrival order.
func (m *Message) PDFs() []Attachment { return m.byFormat(constants.PDF) }

// Images returns the image attachments in arrival order.
func (m *Message) Images() []Attachment { return m.byFormat(constants.IMAGE) }

// Docs returns the word-processor attachments in arrival order.
func (m *Message) Docs() []Attachment { return m.byFormat(constants.DOC) }

func (m *Message) byFormat(format string) []Attachment {
	var out []Attachment
	for _, a := range m.Attachments {
		if a.Format == format {
			out = append(out, a)
		}
	}
	return out
}

// HasProcessable reports whether anything OCR-able or text-extractable came
// with the email.
func (m *Message) HasProcessable() bool {
	return len(m.Attachments) > 0
}

// ParseFile parses an .eml file, decoding attachments into a fresh scratch
// directory the caller cleans up via Cleanup.
func ParseFile(path string, logger *slog.Logger) (*Message, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open eml: %w", err)
	}
	defer f.Close()

	msg, err := mail.ReadMessage(f)
	if err != nil {
		return nil, fmt.Errorf("parse eml %q: %w", path, err)
	}

	out := &Message{}

	if addr, err := mail.ParseAddress(msg.Header.Get("From")); err == nil {
		out.SenderName = addr.Name
		out.SenderEmail = addr.Address
	}
	if subj := msg.Header.Get("Subject"); subj != "" {
		dec := new(mime.WordDecoder)
		if decoded, err := dec.DecodeHeader(subj); err == nil {
			out.Subject = decoded
		} else {
			out.Subject = subj
		}
	}
	if t, err := msg.Header.Date(); err == nil {
		out.Date = t
	}

	scratch, err := os.MkdirTemp("", "reimb-eml-*")
	if err != nil {
		return nil, fmt.Errorf("scratch dir: %w", err)
	}

	body, atts, err := walkParts(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body, scratch)
	if err != nil {
		_ = os.RemoveAll(scratch)
		return nil, fmt.Errorf("parse eml %q: %w", path, err)
	}
	out.BodyText = strings.Join(body, "\n")
	out.Attachments = atts
	if len(atts) == 0 {
		_ = os.RemoveAll(scratch)
	}

	logger.Info("email.parsed",
		"path", path,
		"from", out.SenderEmail,
		"attachments", len(out.Attachments),
	)
	return out, nil
}

// Cleanup removes the scratch files behind the attachments. Safe to call with
// attachments that were already removed.
func Cleanup(atts []Attachment, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	dirs := map[string]struct{}{}
	for _, a := range atts {
		if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
			logger.Warn("email.cleanup", "path", a.Path, "error", err)
		}
		dirs[filepath.Dir(a.Path)] = struct{}{}
	}
	for d := range dirs {
		// only removed when empty, which is the normal case
		_ = os.Remove(d)
	}
}

package email

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"os"
	"path/filepath"
	"strings"

	"github.com/pta-tools/reimb-parser/constants"
)

// walkParts recursively descends a MIME tree, collecting text/plain bodies
// and decoding attachments with processable extensions into destDir.
func walkParts(contentType, transferEncoding string, body io.Reader, destDir string) ([]string, []Attachment, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		// unlabeled single-part messages are treated as plain text
		mediaType = "text/plain"
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return nil, nil, fmt.Errorf("multipart message without boundary")
		}
		var bodies []string
		var atts []Attachment
		mr := multipart.NewReader(body, boundary)
		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				return bodies, atts, fmt.Errorf("read part: %w", err)
			}
			pb, pa, err := handlePart(part, destDir)
			if err != nil {
				return bodies, atts, err
			}
			bodies = append(bodies, pb...)
			atts = append(atts, pa...)
		}
		return bodies, atts, nil
	}

	if mediaType == "text/plain" {
		text, err := io.ReadAll(decodeTransfer(body, transferEncoding))
		if err != nil {
			return nil, nil, fmt.Errorf("read body: %w", err)
		}
		return []string{string(text)}, nil, nil
	}

	return nil, nil, nil
}

func handlePart(part *multipart.Part, destDir string) ([]string, []Attachment, error) {
	defer part.Close()

	contentType := part.Header.Get("Content-Type")
	encoding := part.Header.Get("Content-Transfer-Encoding")
	disposition := strings.ToLower(part.Header.Get("Content-Disposition"))

	filename := part.FileName()
	if filename != "" {
		format := constants.MapExtToFormat(filepath.Ext(filename))
		if format == "" {
			return nil, nil, nil // not a processable attachment type
		}
		att, err := saveAttachment(part, encoding, filename, format, destDir)
		if err != nil {
			return nil, nil, err
		}
		return nil, []Attachment{att}, nil
	}

	// inline content: recurse for nested multiparts, collect plain text,
	// skip everything else (html alternatives, inline images without names)
	if strings.Contains(disposition, "attachment") {
		return nil, nil, nil
	}
	return walkParts(contentType, encoding, part, destDir)
}

func saveAttachment(r io.Reader, encoding, filename, format, destDir string) (Attachment, error) {
	// flatten any path components a hostile or broken client put in the name
	safe := filepath.Base(filename)

	dest := filepath.Join(destDir, safe)
	f, err := os.Create(dest)
	if err != nil {
		return Attachment{}, fmt.Errorf("create attachment file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, decodeTransfer(r, encoding)); err != nil {
		return Attachment{}, fmt.Errorf("decode attachment %q: %w", filename, err)
	}

	return Attachment{Path: dest, Filename: safe, Format: format}, nil
}

func decodeTransfer(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}

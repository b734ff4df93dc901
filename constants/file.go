package constants

import "strings"

// Attachment formats the pipeline can turn into text.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
	DOC   = "DOC"
)

// AllowedExtensions holds the attachment extensions worth pulling out of a
// reimbursement email.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"docx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its processing format, or ""
// when the extension is not processable.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	case "docx":
		return DOC
	default:
		return ""
	}
}

package constants

// Separator markers inserted when concatenating OCR text from multiple pages
// or attachments. The extraction engine treats them as ordinary text, so they
// double as visual anchors for the human reviewer reading raw output.
const (
	PageBreakMarker      = "\n\n--- Page Break ---\n\n"
	NextAttachmentMarker = "\n\n=== Next Attachment ===\n\n"
)

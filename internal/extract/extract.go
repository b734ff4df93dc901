// Package extract recovers named reimbursement-form fields from noisy,
// layout-free OCR text. Each field has its own recognizer: an ordered cascade
// of pattern rules evaluated until the first non-rejected capture, preferring
// label-anchored precision over bare heuristics. Absence of a recognizable
// pattern is a valid outcome (empty field), never an error.
package extract

// Extract runs all recognizers against the same normalized text and assembles
// a FormRecord. Construction is a pure, deterministic function of the input:
// recognizers read only the source text and never each other's output, so
// they could run in any order. Page-break and attachment-separator markers in
// combined inputs are treated as ordinary noise.
func Extract(ocrText string) FormRecord {
	text := Normalize(ocrText)

	return FormRecord{
		Requestor:         recognizeRequestor(text),
		Date:              recognizeDate(text),
		Amount:            recognizeAmount(text),
		Email:             recognizeEmail(text),
		Phone:             recognizePhone(text),
		ChildName:         recognizeChildName(text),
		TeacherGrade:      recognizeTeacherGrade(text),
		ReimbursementType: recognizeReimbursementType(text),
		Event:             recognizeEvent(text),
		PayableTo:         recognizePayableTo(text),
		Delivery:          recognizeDelivery(text),
		RawText:           ocrText,
	}
}

package extract

// FormRecord is the structured result of one extraction pass over a form's
// OCR text. Every field is either "" (not found) or a trimmed,
// whitespace-collapsed value. A record is never mutated after construction;
// interactive correction happens on a derived mapping, not here.
type FormRecord struct {
	Requestor         string
	Date              string
	Amount            string
	Email             string
	Phone             string
	ChildName         string
	TeacherGrade      string
	ReimbursementType string
	Event             string
	PayableTo         string
	Delivery          string

	// RawText holds the exact input text that produced the record, kept
	// verbatim (not the normalized copy) for auditability.
	RawText string
}

// Field is one label/value pair of the display projection.
type Field struct {
	Label string
	Value string
}

// Fields returns the ordered display projection consumed by the review loop
// and the ledger writer. RawText is internal-only and deliberately excluded;
// collaborators that need it ask for it explicitly.
func (r FormRecord) Fields() []Field {
	return []Field{
		{"Requestor", r.Requestor},
		{"Date", r.Date},
		{"Amount", r.Amount},
		{"Email", r.Email},
		{"Phone", r.Phone},
		{"Child", r.ChildName},
		{"Teacher/Grade", r.TeacherGrade},
		{"Type", r.ReimbursementType},
		{"Event", r.Event},
		{"Payable To", r.PayableTo},
		{"Delivery", r.Delivery},
	}
}

// Package ledger appends reviewed reimbursement records to the treasurer's
// "Income and Expenses" XLSX workbook, one row per request, columns A-T.
package ledger

import (
	"strings"
	"time"

	"github.com/pta-tools/reimb-parser/constants"
)

// Row models one ledger row. Field order matches the workbook's columns A-T;
// several columns (MyPTEZ through Double Signed) are reconciliation
// checkboxes the treasurer fills in later and stay empty on insert.
type Row struct {
	ID              int    `json:"id"`               // A
	IncomeExpense   string `json:"income_expense"`   // B
	Year            int    `json:"year"`             // C
	Month           string `json:"month"`            // D
	DateReceived    string `json:"date_received"`    // E
	SubmittedBy     string `json:"submitted_by"`     // F
	Grade           string `json:"grade"`            // G
	Type            string `json:"type"`             // H
	BudgetCategory  string `json:"budget_category"`  // I
	BudgetItem      string `json:"budget_item"`      // J
	AmountSubmitted string `json:"amount_submitted"` // K
	AmountPaid      string `json:"amount_paid"`      // L
	CheckNumber     string `json:"check_number"`     // M
	MyPTEZ          string `json:"myptez"`           // N
	Bank            string `json:"bank"`             // O
	Reconcile       string `json:"reconcile"`        // P
	Report          string `json:"report"`           // Q
	AllMatsPrinted  string `json:"all_mats_printed"` // R
	DoubleSigned    string `json:"double_signed"`    // S
	Notes           string `json:"notes"`            // T
}

var headers = []string{
	"ID", "Income/Expense", "Year", "Month", "Date Received",
	"Submitted By", "Grade", "Type", "Budget Category", "Budget Item",
	"Amount Submitted", "Amount Paid", "Check Number", "MyPTEZ", "Bank",
	"Reconcile", "Report", "All Mats Printed", "Double Signed", "Notes",
}

func (r Row) cells() []any {
	return []any{
		r.ID, r.IncomeExpense, r.Year, r.Month, r.DateReceived,
		r.SubmittedBy, r.Grade, r.Type, r.BudgetCategory, r.BudgetItem,
		r.AmountSubmitted, r.AmountPaid, r.CheckNumber, r.MyPTEZ, r.Bank,
		r.Reconcile, r.Report, r.AllMatsPrinted, r.DoubleSigned, r.Notes,
	}
}

// dateFormats covers the numeric layouts the extractor produces. Written
// month dates ("March 15, 2024") parse under none of these and degrade to an
// empty Year/Month, which is acceptable for the workbook.
var dateFormats = []string{"01-02-2006", "01/02/2006", "01-02-06", "01/02/06"}

// BuildRow assembles a ledger row from reviewed field values. values is the
// label -> value mapping produced by the review pass.
func BuildRow(values map[string]string, receivedAt time.Time, budgetCategory, budgetItem string, nextID int, paymentType string) Row {
	var year int
	var month string
	if d := values["Date"]; d != "" {
		for _, layout := range dateFormats {
			if parsed, err := time.Parse(layout, d); err == nil {
				year = parsed.Year()
				month = parsed.Month().String()
				break
			}
		}
	}

	var dateReceived string
	if !receivedAt.IsZero() {
		dateReceived = receivedAt.Format("01/02/2006")
	}

	// The workbook wants only the grade, not "Mrs. Chen / 3rd Grade".
	grade := values["Teacher/Grade"]
	if i := strings.LastIndex(grade, "/"); i >= 0 {
		grade = strings.TrimSpace(grade[i+1:])
	}

	amount := strings.TrimPrefix(values["Amount"], "$")

	return Row{
		ID:              nextID,
		IncomeExpense:   "Expense",
		Year:            year,
		Month:           month,
		DateReceived:    dateReceived,
		SubmittedBy:     values["Requestor"],
		Grade:           grade,
		Type:            paymentType,
		BudgetCategory:  budgetCategory,
		BudgetItem:      budgetItem,
		AmountSubmitted: amount,
		Notes:           buildNotes(values, paymentType),
	}
}

func buildNotes(values map[string]string, paymentType string) string {
	var parts []string
	switch strings.ToLower(paymentType) {
	case "check", "cheque":
		parts = append(parts, constants.TodoWriteCheck)
	case "amazon", "debit":
		parts = append(parts, constants.TodoOrderOnAmazon)
	}
	if v := values["Event"]; v != "" {
		parts = append(parts, "Event: "+v)
	}
	if v := values["Child"]; v != "" {
		parts = append(parts, "Child: "+v)
	}
	if v := values["Delivery"]; v != "" {
		parts = append(parts, "Delivery: "+v)
	}
	return strings.Join(parts, "; ")
}

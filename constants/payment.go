package constants

// PaymentTypes are the ways a reimbursement gets paid out, in the order they
// are offered during review. The first entry is the default.
var PaymentTypes = []string{"Check", "Debit", "Amazon"}

// Ledger notes prompts keyed by payment type.
const (
	TodoWriteCheck    = "TODO: WRITE CHECK"
	TodoOrderOnAmazon = "TODO: ORDER ON AMAZON"
)

package extract

import (
	"regexp"
	"strings"
)

// Reimbursement categories on the request form.
const (
	TypeHomeRoom = "Home Room Parent"
	TypeTeacher  = "Teacher"
	TypePTA      = "PTA Program"
)

// Delivery preferences for the written check.
const (
	DeliveryMailbox  = "Teacher mailbox"
	DeliverySendHome = "Send home with child"
	DeliveryPickup   = "Pickup"
)

// categoryRule maps a pattern to the category it denotes. Rules run against
// lowercased text in a fixed priority order; the first match wins outright,
// with no scoring across categories. Checkbox-anchored rules come before
// bare-keyword fallbacks.
type categoryRule struct {
	re    *regexp.Regexp
	value string
}

const checkbox = `(?:☑|✓|✔|x|\[x\])`

var typeRules = []categoryRule{
	{regexp.MustCompile(checkbox + `\s*home\s*room`), TypeHomeRoom},
	{regexp.MustCompile(checkbox + `\s*teacher`), TypeTeacher},
	{regexp.MustCompile(checkbox + `\s*pta\s*program`), TypePTA},
	{regexp.MustCompile(`home\s*room\s*parent\s*reimbursement`), TypeHomeRoom},
	{regexp.MustCompile(`teacher\s*reimbursement`), TypeTeacher},
	{regexp.MustCompile(`pta\s*program\s*reimbursement`), TypePTA},
	{regexp.MustCompile(`reimbursement\s*type[\s:]*home\s*room`), TypeHomeRoom},
	{regexp.MustCompile(`reimbursement\s*type[\s:]*teacher`), TypeTeacher},
	{regexp.MustCompile(`reimbursement\s*type[\s:]*pta`), TypePTA},
}

var deliveryRules = []categoryRule{
	{regexp.MustCompile(checkbox + `\s*(?:teacher'?s?\s*)?mailbox`), DeliveryMailbox},
	{regexp.MustCompile(checkbox + `\s*send\s*home\s*with\s*child`), DeliverySendHome},
	{regexp.MustCompile(checkbox + `\s*(?:i'?ll\s*)?pick\s*(?:it\s*)?up`), DeliveryPickup},
	{regexp.MustCompile(`mailbox`), DeliveryMailbox},
	{regexp.MustCompile(`send\s*home`), DeliverySendHome},
	{regexp.MustCompile(`pick\s*up`), DeliveryPickup},
}

func classify(text string, rules []categoryRule) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.re.MatchString(lower) {
			return r.value
		}
	}
	return ""
}

func recognizeReimbursementType(text string) string {
	return classify(text, typeRules)
}

func recognizeDelivery(text string) string {
	return classify(text, deliveryRules)
}

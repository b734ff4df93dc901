package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var requestorRules = []rule{
	{regexp.MustCompile(`(?i)Check\s+Request(?:or|er)[\s:]*([A-Za-z\s]+?)(?:\n|$|Date)`), 1},
	{regexp.MustCompile(`(?i)Request(?:or|er)[\s:]+([A-Za-z\s]+?)(?:\n|$)`), 1},
	{regexp.MustCompile(`(?i)Name[\s:]+([A-Za-z\s]+?)(?:\n|$|Email|Phone)`), 1},
	{regexp.MustCompile(`(?i)Submitted\s+By[\s:]+([A-Za-z\s]+?)(?:\n|$)`), 1},
}

func recognizeRequestor(text string) string {
	return firstMatch(text, requestorRules, 1)
}

var dateRules = []rule{
	// MM-DD-YYYY or MM/DD/YYYY, label-anchored first
	{regexp.MustCompile(`(?i)Date[\s:]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`), 1},
	{regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{4})`), 1},
	{regexp.MustCompile(`(\d{1,2}[-/]\d{1,2}[-/]\d{2})`), 1},
	// written months
	{regexp.MustCompile(`(?i)Date[\s:]*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`), 1},
	{regexp.MustCompile(`(?i)([A-Za-z]+\s+\d{1,2},?\s+\d{4})`), 1},
}

func recognizeDate(text string) string {
	return firstMatch(text, dateRules, 1)
}

var amountRules = []rule{
	{regexp.MustCompile(`(?i)Amount\s+Requested[\s:]*\$?([\d,]+\.?\d*)`), 1},
	{regexp.MustCompile(`(?i)Amount[\s:]*\$?([\d,]+\.?\d*)`), 1},
	{regexp.MustCompile(`(?i)Total[\s:]*\$?([\d,]+\.?\d*)`), 1},
	{regexp.MustCompile(`\$\s*([\d,]+\.\d{2})`), 1},
}

// recognizeAmount re-renders the captured value as $N.NN. If the capture is
// not parseable as a number (OCR leftovers), the raw digits are still returned
// with the currency marker rather than discarded.
func recognizeAmount(text string) string {
	for _, r := range amountRules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := collapseSpace(m[r.group])
		if len(raw) <= 1 {
			continue
		}
		clean := strings.ReplaceAll(raw, ",", "")
		if v, err := strconv.ParseFloat(clean, 64); err == nil {
			return fmt.Sprintf("$%.2f", v)
		}
		return "$" + raw
	}
	return ""
}

var emailRules = []rule{
	{regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`), 0},
}

func recognizeEmail(text string) string {
	return strings.ToLower(firstMatch(text, emailRules, 1))
}

var phoneRules = []rule{
	// (XXX) XXX-XXXX
	{regexp.MustCompile(`\(\d{3}\)[-.\s]?\d{3}[-.\s]?\d{4}`), 0},
	// XXX-XXX-XXXX (or dot/space separated)
	{regexp.MustCompile(`\d{3}[-.\s]\d{3}[-.\s]\d{4}`), 0},
	// bare 10-digit run, guarded against longer digit runs (tracking numbers)
	{regexp.MustCompile(`(?:^|[^0-9])(\d{10})(?:[^0-9]|$)`), 1},
}

func recognizePhone(text string) string {
	return firstMatch(text, phoneRules, 1)
}

var childNameRules = []rule{
	{regexp.MustCompile(`(?i)Child(?:'s)?\s+Name[\s:]+([A-Za-z\s]+?)(?:\n|$|Teacher|Grade)`), 1},
	{regexp.MustCompile(`(?i)Student(?:'s)?\s+Name[\s:]+([A-Za-z\s]+?)(?:\n|$|Teacher|Grade)`), 1},
	{regexp.MustCompile(`(?i)Child[\s:]+([A-Za-z\s]+?)(?:\n|$)`), 1},
}

func recognizeChildName(text string) string {
	return firstMatch(text, childNameRules, 1)
}

var eventRules = []rule{
	{regexp.MustCompile(`(?i)Event[\s:]+([A-Za-z\s]+?)(?:\n|$|Amount)`), 1},
	{regexp.MustCompile(`(?i)For[\s:]+([A-Za-z\s]+?(?:Party|Event|Activity))(?:\n|$)`), 1},
	{regexp.MustCompile(`(?i)Purpose[\s:]+([A-Za-z\s]+?)(?:\n|$)`), 1},
	// recurring event names, matched anywhere
	{regexp.MustCompile(`(?i)(Winter\s+Party)`), 1},
	{regexp.MustCompile(`(?i)(Fall\s+Party)`), 1},
	{regexp.MustCompile(`(?i)(Spring\s+Party)`), 1},
	{regexp.MustCompile(`(?i)(Valentine(?:'?s)?\s+(?:Day\s+)?Party)`), 1},
	{regexp.MustCompile(`(?i)(Halloween\s+Party)`), 1},
	{regexp.MustCompile(`(?i)(End\s+of\s+Year\s+Party)`), 1},
	{regexp.MustCompile(`(?i)(Field\s+Day)`), 1},
	{regexp.MustCompile(`(?i)(Teacher\s+Appreciation)`), 1},
}

var (
	reEventLabel = regexp.MustCompile(`(?i)^Event[\s:]+`)
	reForLabel   = regexp.MustCompile(`(?i)^For[\s:]+`)
)

func recognizeEvent(text string) string {
	for _, r := range eventRules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v := collapseSpace(m[r.group])
		// a label fragment can leak into the capture on noisy scans
		v = reEventLabel.ReplaceAllString(v, "")
		v = reForLabel.ReplaceAllString(v, "")
		if len(v) > 2 {
			return v
		}
	}
	return ""
}

var payableToRules = []rule{
	{regexp.MustCompile(`(?i)Make\s+Check\s+Payable\s+To[\s:]+([A-Za-z\s]+?)(?:\n|$)`), 1},
	{regexp.MustCompile(`(?i)Payable\s+To[\s:]+([A-Za-z\s]+?)(?:\n|$)`), 1},
	{regexp.MustCompile(`(?i)Pay\s+To[\s:]+([A-Za-z\s]+?)(?:\n|$)`), 1},
}

func recognizePayableTo(text string) string {
	return firstMatch(text, payableToRules, 1)
}

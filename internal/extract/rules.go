package extract

import (
	"regexp"
	"strings"
)

// rule is one tier of a recognizer cascade: a pattern plus the index of the
// submatch carrying the field value (0 = whole match). Rules are ordered from
// most-specific label-anchored to least-specific heuristic; the first rule
// whose capture survives cleanup wins and later rules are never consulted.
type rule struct {
	re    *regexp.Regexp
	group int
}

var reSpaceRun = regexp.MustCompile(`\s+`)

// collapseSpace folds interior whitespace runs (including newlines picked up
// by permissive character classes) into single spaces and trims the ends.
func collapseSpace(s string) string {
	return strings.TrimSpace(reSpaceRun.ReplaceAllString(s, " "))
}

// firstMatch evaluates rules in order and returns the first accepted capture.
// Captures that collapse to minLen characters or fewer are OCR noise; the
// cascade continues past them.
func firstMatch(text string, rules []rule, minLen int) string {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v := collapseSpace(m[r.group])
		if len(v) > minLen {
			return v
		}
	}
	return ""
}

package extract

import "regexp"

var reLineEndings = regexp.MustCompile(`\r\n?`)

// Normalize canonicalizes line terminators to "\n". Nothing else is touched
// globally: each recognizer applies its own trimming and casing policy, since
// some need case-sensitive cues (courtesy titles) and others fold case
// (checkbox keywords).
func Normalize(s string) string {
	if s == "" {
		return s
	}
	return reLineEndings.ReplaceAllString(s, "\n")
}

package extract

import "regexp"

// The teacher/grade field is the least standardized across form templates:
// "Mrs. Lanford 5th", "K Michaud", "McCord / 3rd", "5th - Johnson", or a
// combined "Teacher/Grade: Mrs. Lanford - Kindergarten". Resolution is a
// five-tier fallback, each tier returning immediately on success.
var (
	// tier 1: combined label, value runs to the end of the line
	reTeacherGradeCombined = regexp.MustCompile(`(?i)Teacher\s*/\s*Grade[\s:]+([^\n]+)`)

	// tiers 2-4: separate labels
	reTeacherLabel = regexp.MustCompile(`(?i)\bTeacher[\s:]+([A-Za-z][A-Za-z.,\s]+?)(?:\n|$)`)
	reGradeLabel   = regexp.MustCompile(`(?i)\bGrade[\s:]+([A-Za-z0-9][A-Za-z0-9\s]+?)(?:\n|$)`)

	// tier 5: unanchored courtesy-title + surname next to a grade token,
	// title-then-grade first, then grade-then-title (case-sensitive so bare
	// surnames are not confused with surrounding prose)
	reTitleThenGrade = regexp.MustCompile(`(?i)((?:Mrs?\.?|Ms\.?|Miss)\s+[A-Z][a-z]+)[\s,/-]*((?:Pre-?)?K(?:indergarten)?|[1-5](?:st|nd|rd|th)?(?:\s*grade)?)`)
	reGradeThenName  = regexp.MustCompile(`\b((?:Pre-?)?K(?:indergarten)?|[1-5](?:st|nd|rd|th)?)\b[\s,/-]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
)

func recognizeTeacherGrade(text string) string {
	// combined label is the most reliable: the label itself disambiguates
	if m := reTeacherGradeCombined.FindStringSubmatch(text); m != nil {
		if v := collapseSpace(m[1]); len(v) > 1 {
			return v
		}
	}

	teacher := reTeacherLabel.FindStringSubmatch(text)
	grade := reGradeLabel.FindStringSubmatch(text)

	if teacher != nil && grade != nil {
		t, g := collapseSpace(teacher[1]), collapseSpace(grade[1])
		if t != "" && g != "" {
			return t + " - " + g
		}
	}
	if teacher != nil {
		if v := collapseSpace(teacher[1]); len(v) > 1 {
			return v
		}
	}
	if grade != nil {
		if v := collapseSpace(grade[1]); len(v) > 1 {
			return v
		}
	}

	if m := reTitleThenGrade.FindStringSubmatch(text); m != nil {
		return collapseSpace(m[1]) + " - " + collapseSpace(m[2])
	}
	if m := reGradeThenName.FindStringSubmatch(text); m != nil {
		return collapseSpace(m[1] + " " + m[2])
	}

	return ""
}

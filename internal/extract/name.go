package extract

import (
	"regexp"
	"strings"
)

// namePattern matches 2-3 consecutive capitalized words at the start of a line
var namePattern = regexp.MustCompile(`^([A-Z][a-z]+(?: [A-Z][a-z]+){1,2})`)

// nameHeaderMarkers flag lines that are resume boilerplate rather than a name
var nameHeaderMarkers = []string{"resume", "cv", "curriculum", "@", "phone"}

// CandidateName applies a best-effort heuristic to guess the candidate's
// name from the first three non-empty lines of raw resume text. It returns
// the empty string when no line qualifies. Known limitation: the pattern
// misfires on layouts that do not lead with a plain capitalized name.
func CandidateName(raw string) string {
	if raw == "" {
		return ""
	}

	seen := 0
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > 3 {
			break
		}

		lower := strings.ToLower(line)
		skip := false
		for _, marker := range nameHeaderMarkers {
			if strings.Contains(lower, marker) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		m := namePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(name) >= 4 && len(name) <= 30 {
			return name
		}
	}
	return ""
}

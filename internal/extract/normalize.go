package extract

import (
	"regexp"
	"strings"
)

// phraseCanonicalizations maps multi-word domain phrases to single tokens.
// Applied in order after character stripping so the phrases are already
// lowercase with collapsed whitespace.
var phraseCanonicalizations = []struct {
	phrase string
	token  string
}{
	{"machine learning", "machine_learning"},
	{"data science", "data_science"},
	{"computer vision", "computer_vision"},
	{"natural language processing", "nlp"},
	{"artificial intelligence", "ai"},
	{"deep learning", "deep_learning"},
	{"big data", "big_data"},
	{"cloud computing", "cloud_computing"},
	{"software engineering", "software_engineering"},
	{"web development", "web_development"},
	{"mobile development", "mobile_development"},
	{"database management", "database_management"},
	{"project management", "project_management"},
	{"quality assurance", "qa"},
	{"user experience", "ux"},
	{"user interface", "ui"},
}

// abbreviationExpansions is applied only to text destined for skill
// matching, where expanded forms improve taxonomy hits
var abbreviationExpansions = map[string]string{
	"js":   "javascript",
	"ts":   "typescript",
	"py":   "python",
	"db":   "database",
	"nlp":  "natural language processing",
	"cv":   "computer vision",
	"dl":   "deep learning",
	"rnn":  "recurrent neural network",
	"cnn":  "convolutional neural network",
	"api":  "application programming interface",
	"rest": "representational state transfer",
	"crud": "create read update delete",
	"orm":  "object relational mapping",
	"mvc":  "model view controller",
	"spa":  "single page application",
	"pwa":  "progressive web application",
}

// shortTechTerms are single-letter tokens kept by the short-token filter
var shortTechTerms = map[string]bool{
	"c": true,
	"r": true,
}

// stripRe matches characters outside the kept set: alphanumeric,
// whitespace, dot, hyphen, plus, hash. Keeping "#" lets "c#" survive as
// its own token instead of collapsing into a bare "c".
var stripRe = regexp.MustCompile(`[^a-z0-9\s.+#-]`)

// Normalize lowers, collapses whitespace, strips special characters and
// canonicalizes known multi-word phrases. It is idempotent: normalizing
// twice yields the same result.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = stripRe.ReplaceAllString(text, " ")

	// collapse whitespace and drop single-character noise tokens
	words := strings.Fields(text)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= 2 || shortTechTerms[w] {
			kept = append(kept, w)
		}
	}
	text = strings.Join(kept, " ")

	return strings.TrimSpace(canonicalizePhrases(text))
}

func canonicalizePhrases(text string) string {
	for _, c := range phraseCanonicalizations {
		text = strings.ReplaceAll(text, c.phrase, c.token)
	}
	return text
}

// NormalizeForMatching normalizes and additionally expands known
// abbreviations, for text that will be checked against the skill taxonomy
func NormalizeForMatching(text string) string {
	text = Normalize(text)
	if text == "" {
		return ""
	}

	words := strings.Split(text, " ")
	expanded := make([]string, 0, len(words))
	for _, w := range words {
		if full, ok := abbreviationExpansions[w]; ok {
			expanded = append(expanded, strings.Split(full, " ")...)
			continue
		}
		expanded = append(expanded, w)
	}
	// expanded phrases must land in the same token space as the source
	// text, so "dl" ends up as deep_learning and "nlp" stays nlp
	return canonicalizePhrases(strings.Join(expanded, " "))
}

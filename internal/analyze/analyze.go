// Package analyze cross-references extracted text against the skill
// taxonomy to classify skills as matched or missing per category.
package analyze

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Analysis is the full skill-gap breakdown for one resume/JD pair
type Analysis struct {
	// OverallScore is the mean of per-category coverage across categories
	// with at least one required skill, as a percentage with 1 decimal
	OverallScore float64
	// Categories follow taxonomy order; matched/missing lists follow the
	// skill order within each category
	Categories []types.CategoryResult
	// Raw per-skill occurrence counts in each document. Higher JD
	// frequency means the skill matters more to this role.
	ResumeFreq map[string]int
	JDFreq     map[string]int
}

// Analyze tests every taxonomy skill for whole-word presence in the
// resume and JD texts. A skill counts as required only when it appears in
// the JD; matched means required and present in the resume.
func Analyze(resumeText, jdText string, tax *taxonomy.Taxonomy) *Analysis {
	a := &Analysis{
		ResumeFreq: make(map[string]int),
		JDFreq:     make(map[string]int),
	}

	coverageSum := 0.0
	coveredCategories := 0

	for _, cat := range tax.Categories() {
		cr := types.CategoryResult{
			Category: cat.Name,
			Matched:  []string{},
			Missing:  []string{},
		}

		for _, skill := range cat.Skills {
			// run the term through the same normalization as the texts so
			// canonicalized phrases still match
			term := extract.Normalize(skill)
			if term == "" {
				continue
			}

			resumeCount := countWholeWord(resumeText, term)
			jdCount := countWholeWord(jdText, term)
			a.ResumeFreq[skill] = resumeCount
			a.JDFreq[skill] = jdCount

			if jdCount == 0 {
				continue
			}
			cr.Required++
			if resumeCount > 0 {
				cr.Matched = append(cr.Matched, skill)
			} else {
				cr.Missing = append(cr.Missing, skill)
			}
		}

		if cr.Required > 0 {
			cr.Coverage = float64(len(cr.Matched)) / float64(cr.Required)
			coverageSum += cr.Coverage
			coveredCategories++
		}
		cr.Score = round1(cr.Coverage * 100)
		a.Categories = append(a.Categories, cr)
	}

	if coveredCategories > 0 {
		a.OverallScore = round1(coverageSum / float64(coveredCategories) * 100)
	}
	return a
}

// MatchedSkills returns all matched skills flattened in category order
func (a *Analysis) MatchedSkills() []string {
	return a.flatten(func(cr types.CategoryResult) []string { return cr.Matched })
}

// MissingSkills returns all missing skills flattened in category order
func (a *Analysis) MissingSkills() []string {
	return a.flatten(func(cr types.CategoryResult) []string { return cr.Missing })
}

func (a *Analysis) flatten(pick func(types.CategoryResult) []string) []string {
	out := []string{}
	for _, cr := range a.Categories {
		out = append(out, pick(cr)...)
	}
	return out
}

// countWholeWord counts delimited occurrences of term in text. The term
// must not be embedded in a longer word: letters, digits, underscore,
// plus and hash all extend a word, so "javascript" does not match inside
// "javascripting" and "c" does not match inside "c++".
func countWholeWord(text, term string) int {
	if term == "" || text == "" {
		return 0
	}
	count := 0
	for i := 0; ; {
		idx := strings.Index(text[i:], term)
		if idx < 0 {
			break
		}
		start := i + idx
		end := start + len(term)
		if (start == 0 || !isSkillWordChar(text[start-1])) &&
			(end == len(text) || !isSkillWordChar(text[end])) {
			count++
		}
		i = end
	}
	return count
}

func isSkillWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '_' || c == '+' || c == '#'
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Package compose combines lexical, semantic and skill-coverage signals
// into the final score, verdict and improvement plan.
package compose

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonathan/resume-matcher/internal/analyze"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weights blend the lexical and semantic scores into the combined
// text-similarity score
type Weights struct {
	Hard     float64
	Semantic float64
}

// DefaultWeights favor semantic similarity over exact keyword overlap
func DefaultWeights() Weights {
	return Weights{Hard: 0.4, Semantic: 0.6}
}

// Thresholds below which diagnostic recommendations fire
const (
	lowLexicalThreshold  = 0.3
	lowSemanticThreshold = 0.4
	lowCoveragePercent   = 30.0
	maxRecommendations   = 5
)

// highPriorityCategories mark skills whose absence matters most
var highPriorityCategories = map[string]bool{
	"programming":  true,
	"data_science": true,
}

// Output carries everything the composer derives for one analysis
type Output struct {
	// Score is the headline skills-coverage score: matched over required
	// across the flattened skill list, 0-100
	Score   int
	Verdict types.Verdict

	MatchedSkills []string
	MissingSkills []string
	TotalRequired int
	TotalMatched  int

	Plan            []types.ImprovementItem
	Recommendations []string

	// TextSimilarity is the secondary, diagnostic score; it must not be
	// conflated with the headline Score
	TextSimilarity types.MatchScore
}

// VerdictFor maps a 0-100 score to its qualitative verdict. Lower bounds
// are inclusive: 80 is Excellent, 60 is Good, 40 is Average.
func VerdictFor(score float64) types.Verdict {
	switch {
	case score >= 80:
		return types.VerdictExcellent
	case score >= 60:
		return types.VerdictGood
	case score >= 40:
		return types.VerdictAverage
	default:
		return types.VerdictNeedsImprovement
	}
}

// Compose derives the final scores, verdicts, improvement plan and
// recommendations from the matcher outputs
func Compose(lexical, semantic float64, analysis *analyze.Analysis, w Weights) *Output {
	combined := round2((w.Hard*lexical + w.Semantic*semantic) * 100)

	matched := analysis.MatchedSkills()
	missing := analysis.MissingSkills()
	totalRequired := len(matched) + len(missing)

	coverage := 0
	if totalRequired > 0 {
		coverage = int(math.Round(float64(len(matched)) / float64(totalRequired) * 100))
	}

	return &Output{
		Score:           coverage,
		Verdict:         VerdictFor(float64(coverage)),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		TotalRequired:   totalRequired,
		TotalMatched:    len(matched),
		Plan:            buildPlan(analysis),
		Recommendations: buildRecommendations(analysis, lexical, semantic),
		TextSimilarity: types.MatchScore{
			Lexical:  lexical,
			Semantic: semantic,
			Combined: combined,
			Verdict:  VerdictFor(combined),
		},
	}
}

// buildPlan emits one improvement item per missing skill, ordered by
// category iteration order then taxonomy list order
func buildPlan(analysis *analyze.Analysis) []types.ImprovementItem {
	plan := []types.ImprovementItem{}
	for _, cr := range analysis.Categories {
		for _, skill := range cr.Missing {
			priority := types.PriorityMedium
			if highPriorityCategories[cr.Category] {
				priority = types.PriorityHigh
			}
			plan = append(plan, types.ImprovementItem{
				Skill:      titleCase(skill),
				Category:   displayCategory(cr.Category),
				Suggestion: suggestionFor(skill, cr.Category),
				Priority:   priority,
			})
		}
	}
	return plan
}

// buildRecommendations emits up to five prioritized natural-language
// recommendations in generation order
func buildRecommendations(analysis *analyze.Analysis, lexical, semantic float64) []string {
	recs := []string{}

	if lexical < lowLexicalThreshold {
		recs = append(recs, "Include more specific keywords from the job description in your resume")
	}
	if semantic < lowSemanticThreshold {
		recs = append(recs, "Restructure your resume content to better align with the job requirements")
	}

	for _, cr := range analysis.Categories {
		if len(cr.Missing) == 0 {
			continue
		}
		if highPriorityCategories[cr.Category] {
			recs = append(recs, fmt.Sprintf("Consider gaining experience in %s skills: %s",
				cr.Category, strings.Join(firstN(cr.Missing, 3), ", ")))
		} else {
			recs = append(recs, fmt.Sprintf("Highlight any experience with %s tools: %s",
				cr.Category, strings.Join(firstN(cr.Missing, 2), ", ")))
		}
	}

	for _, cr := range analysis.Categories {
		if cr.Required > 0 && cr.Score < lowCoveragePercent {
			recs = append(recs, fmt.Sprintf("Focus on developing %s skills as they are important for this role", cr.Category))
		}
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// displayCategory turns "data_science" into "Data Science"
func displayCategory(category string) string {
	return titleCase(strings.ReplaceAll(category, "_", " "))
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestAnalyze_SkillGap(t *testing.T) {
	tax := taxonomy.Default()

	resume := "experienced developer python docker"
	jd := "looking for python aws react"

	a := Analyze(resume, jd, tax)

	assert.Equal(t, []string{"python"}, a.MatchedSkills())
	assert.Equal(t, []string{"aws", "react"}, a.MissingSkills())

	byName := categoriesByName(a)
	assert.Equal(t, 1, byName["programming"].Required)
	assert.Equal(t, 1.0, byName["programming"].Coverage)
	assert.Equal(t, 1, byName["cloud"].Required)
	assert.Equal(t, 0.0, byName["cloud"].Coverage)
	assert.Equal(t, 1, byName["web"].Required)
	assert.Equal(t, 0, byName["databases"].Required)

	// three categories have requirements, one is fully covered
	assert.InDelta(t, 33.3, a.OverallScore, 0.01)

	// docker appears in the resume but the JD never asks for it
	assert.Equal(t, 1, a.ResumeFreq["docker"])
	assert.Equal(t, 0, a.JDFreq["docker"])
}

func TestAnalyze_WholeWordMatching(t *testing.T) {
	tax := taxonomy.Default()

	tests := []struct {
		name    string
		resume  string
		jd      string
		matched []string
		missing []string
	}{
		{
			"Embedded term does not match",
			"javascripting enthusiast",
			"javascript required",
			[]string{},
			[]string{"javascript"},
		},
		{
			"Plus suffix is part of the word",
			"c++ developer",
			"c++ and go required",
			[]string{"c++"},
			[]string{"go"},
		},
		{
			"Bare c does not satisfy c++",
			"c developer",
			"c++ required",
			[]string{},
			[]string{"c++"},
		},
		{
			"Java does not match inside javascript",
			"javascript developer",
			"java required",
			[]string{},
			[]string{"java"},
		},
		{
			"Hash suffix is part of the word",
			"c# expert",
			"c# and python needed",
			[]string{"c#"},
			[]string{"python"},
		},
		{
			"Bare c does not satisfy c#",
			"c programming",
			"c# needed",
			[]string{},
			[]string{"c#"},
		},
		{
			"Canonicalized phrase matches",
			"built machine_learning pipelines",
			"machine_learning skills needed",
			[]string{"machine learning"},
			[]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.resume, tt.jd, tax)
			assert.Equal(t, tt.matched, a.MatchedSkills())
			assert.Equal(t, tt.missing, a.MissingSkills())
		})
	}
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	tax := taxonomy.Default()

	t.Run("Empty JD requires nothing", func(t *testing.T) {
		a := Analyze("python java aws", "", tax)
		assert.Empty(t, a.MatchedSkills())
		assert.Empty(t, a.MissingSkills())
		assert.Equal(t, 0.0, a.OverallScore)
	})

	t.Run("Empty resume misses everything required", func(t *testing.T) {
		a := Analyze("", "python and aws", tax)
		assert.Empty(t, a.MatchedSkills())
		assert.Equal(t, []string{"python", "aws"}, a.MissingSkills())
		assert.Equal(t, 0.0, a.OverallScore)
	})
}

func TestAnalyze_Frequencies(t *testing.T) {
	tax := taxonomy.Default()

	a := Analyze(
		"python python python sql",
		"python needed sql needed python",
		tax,
	)

	assert.Equal(t, 3, a.ResumeFreq["python"])
	assert.Equal(t, 2, a.JDFreq["python"])
	assert.Equal(t, 1, a.ResumeFreq["sql"])
	assert.Equal(t, 1, a.JDFreq["sql"])
}

func TestCountWholeWord(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		term  string
		count int
	}{
		{"Exact match", "python", "python", 1},
		{"Match at start", "python developer", "python", 1},
		{"Match at end", "senior python", "python", 1},
		{"Multiple matches", "python and python and python", "python", 3},
		{"Embedded no match", "micropython", "python", 0},
		{"Suffix no match", "pythonic", "python", 0},
		{"Dot is a boundary", "node.js", "node.js", 1},
		{"Hyphen is a boundary", "scikit-learn", "scikit-learn", 1},
		{"Plus extends the word", "c++", "c", 0},
		{"Hash extends the word", "c# and f#", "c", 0},
		{"Underscore extends the word", "machine_learning", "machine", 0},
		{"Empty term", "python", "", 0},
		{"Empty text", "", "python", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, countWholeWord(tt.text, tt.term))
		})
	}
}

func categoriesByName(a *Analysis) map[string]types.CategoryResult {
	out := make(map[string]types.CategoryResult, len(a.Categories))
	for _, cr := range a.Categories {
		out[cr.Category] = cr
	}
	return out
}

// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Document represents an uploaded file to be analyzed. It is consumed once
// by the text extractor and discarded; the core holds no reference to it
// after extraction.
type Document struct {
	Filename string
	Data     []byte
}

// Verdict is the qualitative label derived from a 0-100 score
type Verdict string

// Verdict levels, from best to worst
const (
	VerdictExcellent        Verdict = "Excellent"
	VerdictGood             Verdict = "Good"
	VerdictAverage          Verdict = "Average"
	VerdictNeedsImprovement Verdict = "Needs Improvement"
)

// Priority indicates how urgently a missing skill should be addressed
type Priority string

// Priority levels for improvement items
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
)

// CategoryResult holds the skill-gap breakdown for a single taxonomy category
type CategoryResult struct {
	Category string   `json:"category"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
	Required int      `json:"required"`
	Coverage float64  `json:"coverage"` // matched / required, 0 when nothing required
	Score    float64  `json:"score"`    // coverage as a percentage, 1 decimal
}

// MatchScore holds the raw text-similarity components and their weighted
// blend. This is a diagnostic score, distinct from the headline
// skills-coverage score on AnalysisResult; the two must not be conflated.
type MatchScore struct {
	Lexical  float64 `json:"lexical"`  // 0-1
	Semantic float64 `json:"semantic"` // 0-1
	Combined float64 `json:"combined"` // 0-100, 2 decimals
	Verdict  Verdict `json:"verdict"`
}

// ImprovementItem is one actionable suggestion for a skill missing from the resume
type ImprovementItem struct {
	Skill      string   `json:"skill"`
	Category   string   `json:"category"`
	Suggestion string   `json:"suggestion"`
	Priority   Priority `json:"priority"`
}

// AnalysisResult is the artifact returned to callers for one resume/JD
// pair. It is immutable once constructed; persistence is the caller's
// responsibility.
type AnalysisResult struct {
	Score               int               `json:"score"` // skills-coverage score, 0-100
	Verdict             Verdict           `json:"verdict"`
	MissingSkills       []string          `json:"missing_skills"`
	MatchedSkills       []string          `json:"matched_skills"`
	ImprovementPlan     []ImprovementItem `json:"improvement_plan"`
	TotalSkillsRequired int               `json:"total_skills_required"`
	SkillsMatched       int               `json:"skills_matched"`
	ResumeFilename      string            `json:"resume_filename"`
	JDFilename          string            `json:"jd_filename"`
	ResumeWordCount     int               `json:"resume_word_count"`
	JDWordCount         int               `json:"jd_word_count"`
	CandidateName       string            `json:"candidate_name,omitempty"`
	Timestamp           time.Time         `json:"timestamp"`

	// Diagnostic outputs, also handed to the persistence boundary
	TextSimilarity  MatchScore       `json:"text_similarity"`
	Categories      []CategoryResult `json:"categories"`
	Recommendations []string         `json:"recommendations,omitempty"`
}

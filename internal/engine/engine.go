// Package engine orchestrates the resume-to-JD matching pipeline:
// extraction, lexical and semantic scoring, skill-gap analysis and score
// composition.
package engine

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/analyze"
	"github.com/jonathan/resume-matcher/internal/compose"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/textsim"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Engine scores resumes against job descriptions. It is stateless between
// calls: the taxonomy and the semantic backend are initialized once and
// only read, so concurrent Match calls are safe.
type Engine struct {
	taxonomy *taxonomy.Taxonomy
	semantic *textsim.SemanticMatcher
	weights  compose.Weights
	logger   *zap.Logger
}

// New creates an engine. A nil taxonomy uses the built-in default; a nil
// semantic matcher uses the TF-IDF proxy; zero weights use the defaults.
func New(tax *taxonomy.Taxonomy, semantic *textsim.SemanticMatcher, weights compose.Weights, logger *zap.Logger) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if semantic == nil {
		semantic = textsim.NewSemanticMatcher(nil, logger)
	}
	if weights.Hard == 0 && weights.Semantic == 0 {
		weights = compose.DefaultWeights()
	}
	return &Engine{taxonomy: tax, semantic: semantic, weights: weights, logger: logger}
}

// Match scores a resume against a job description and assembles the full
// analysis result. It fails with *InputError when either document is
// missing, unnamed, or extracts to empty text. The engine performs no
// persistence; storing the result is the caller's responsibility.
func (e *Engine) Match(ctx context.Context, resume, jd types.Document) (*types.AnalysisResult, error) {
	resumeRes, err := e.extractDocument(resume, "resume")
	if err != nil {
		return nil, err
	}
	jdRes, err := e.extractDocument(jd, "jd")
	if err != nil {
		return nil, err
	}

	lexical := textsim.HardMatch(resumeRes.Text, jdRes.Text)
	semantic := e.semantic.Score(ctx, resumeRes.Text, jdRes.Text)

	analysis := analyze.Analyze(resumeRes.MatchText, jdRes.MatchText, e.taxonomy)
	out := compose.Compose(lexical, semantic, analysis, e.weights)

	return &types.AnalysisResult{
		Score:               out.Score,
		Verdict:             out.Verdict,
		MissingSkills:       out.MissingSkills,
		MatchedSkills:       out.MatchedSkills,
		ImprovementPlan:     out.Plan,
		TotalSkillsRequired: out.TotalRequired,
		SkillsMatched:       out.TotalMatched,
		ResumeFilename:      resume.Filename,
		JDFilename:          jd.Filename,
		ResumeWordCount:     len(strings.Fields(resumeRes.Text)),
		JDWordCount:         len(strings.Fields(jdRes.Text)),
		CandidateName:       extract.CandidateName(resumeRes.Raw),
		Timestamp:           time.Now().UTC(),
		TextSimilarity:      out.TextSimilarity,
		Categories:          analysis.Categories,
		Recommendations:     out.Recommendations,
	}, nil
}

// extractDocument validates a document and extracts its text. Section
// warnings are logged and skipped, never fatal; empty extraction is.
func (e *Engine) extractDocument(doc types.Document, name string) (*extract.Result, error) {
	if doc.Filename == "" {
		return nil, &InputError{Document: name, Message: "filename is required"}
	}
	if len(doc.Data) == 0 {
		return nil, &InputError{Document: name, Message: "document is empty"}
	}

	res, err := extract.Extract(doc)
	if err != nil {
		return nil, &InputError{Document: name, Message: "could not extract text", Cause: err}
	}
	for _, w := range res.Warnings {
		e.logger.Warn("skipped unreadable section",
			zap.String("document", name),
			zap.String("filename", doc.Filename),
			zap.String("section", w.Section),
			zap.Error(w.Err))
	}
	if res.Text == "" {
		return nil, &InputError{Document: name, Message: "no usable text extracted"}
	}
	return res, nil
}

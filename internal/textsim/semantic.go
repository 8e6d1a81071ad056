package textsim

import (
	"context"

	"go.uber.org/zap"
)

// Vector space for the TF-IDF semantic proxy: a wider n-gram range and a
// larger vocabulary than the hard match, a coarser meaning-level signal
const (
	proxyMaxFeatures = 5000
	proxyNgramMax    = 3
)

// Similarity scores meaning-level similarity between a resume and a JD
type Similarity interface {
	// Score returns a similarity in [0, 1]
	Score(ctx context.Context, resumeText, jdText string) (float64, error)
	// Name identifies the backend for logging
	Name() string
}

// LexicalProxy approximates semantic similarity with a wide TF-IDF cosine.
// It is always available and never returns an error; degenerate input
// scores 0.
type LexicalProxy struct{}

// Name implements Similarity
func (LexicalProxy) Name() string { return "tfidf-proxy" }

// Score implements Similarity
func (LexicalProxy) Score(_ context.Context, resumeText, jdText string) (float64, error) {
	score, err := tfidfCosine(jdText, resumeText, vectorizerOptions{
		maxFeatures: proxyMaxFeatures,
		ngramMin:    1,
		ngramMax:    proxyNgramMax,
	})
	if err != nil {
		return 0, nil
	}
	return clamp01(score), nil
}

// SemanticMatcher wraps a similarity backend selected once at startup and
// guarantees a usable score: backend errors fall back to the lexical proxy
// and are never surfaced to callers.
type SemanticMatcher struct {
	backend Similarity
	proxy   LexicalProxy
	logger  *zap.Logger
}

// NewSemanticMatcher creates a matcher around the given backend. A nil
// backend means no embedding model is configured and the proxy is used
// directly.
func NewSemanticMatcher(backend Similarity, logger *zap.Logger) *SemanticMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemanticMatcher{backend: backend, logger: logger}
}

// Score returns a semantic similarity in [0, 1]
func (m *SemanticMatcher) Score(ctx context.Context, resumeText, jdText string) float64 {
	if m.backend != nil {
		score, err := m.backend.Score(ctx, resumeText, jdText)
		if err == nil {
			return clamp01(score)
		}
		m.logger.Warn("semantic backend failed, falling back to lexical proxy",
			zap.String("backend", m.backend.Name()),
			zap.Error(err))
	}
	score, _ := m.proxy.Score(ctx, resumeText, jdText)
	return score
}

// BackendName reports which backend is configured
func (m *SemanticMatcher) BackendName() string {
	if m.backend != nil {
		return m.backend.Name()
	}
	return m.proxy.Name()
}

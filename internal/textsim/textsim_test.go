package textsim

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardMatch(t *testing.T) {
	t.Run("Identical texts score 1", func(t *testing.T) {
		text := "python developer machine_learning aws docker kubernetes"
		assert.InDelta(t, 1.0, HardMatch(text, text), 1e-9)
	})

	t.Run("Disjoint texts score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, HardMatch("python pandas numpy", "accounting payroll invoicing"))
	})

	t.Run("Partial overlap scores between 0 and 1", func(t *testing.T) {
		score := HardMatch(
			"python developer docker experience",
			"python developer aws required",
		)
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 1.0)
	})

	t.Run("Empty inputs score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, HardMatch("", ""))
		assert.Equal(t, 0.0, HardMatch("python", ""))
		assert.Equal(t, 0.0, HardMatch("", "python"))
	})

	t.Run("Stop-word-only input falls back to word overlap", func(t *testing.T) {
		// every token is a stop word, so the vector space is empty and the
		// raw word-set overlap takes over
		score := HardMatch("the and with", "the and with")
		assert.Equal(t, 1.0, score)
	})

	t.Run("Deterministic", func(t *testing.T) {
		resume := "python java go docker kubernetes terraform jenkins"
		jd := "python go aws gcp azure docker helm"
		first := HardMatch(resume, jd)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, HardMatch(resume, jd))
		}
	})
}

func TestLexicalProxy(t *testing.T) {
	proxy := LexicalProxy{}

	t.Run("Identical texts score 1", func(t *testing.T) {
		text := "senior engineer distributed systems golang"
		score, err := proxy.Score(context.Background(), text, text)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("Degenerate input scores 0 without error", func(t *testing.T) {
		score, err := proxy.Score(context.Background(), "", "")
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("Name identifies the proxy", func(t *testing.T) {
		assert.Equal(t, "tfidf-proxy", proxy.Name())
	})
}

// failingBackend always errors, to exercise the fallback path
type failingBackend struct{}

func (failingBackend) Name() string { return "failing" }

func (failingBackend) Score(context.Context, string, string) (float64, error) {
	return 0, errors.New("backend unavailable")
}

// fixedBackend returns a constant score
type fixedBackend struct{ score float64 }

func (fixedBackend) Name() string { return "fixed" }

func (b fixedBackend) Score(context.Context, string, string) (float64, error) {
	return b.score, nil
}

func TestSemanticMatcher(t *testing.T) {
	ctx := context.Background()
	resume := "python developer with docker"
	jd := "python developer with kubernetes"

	t.Run("Nil backend uses the proxy", func(t *testing.T) {
		m := NewSemanticMatcher(nil, nil)
		assert.Equal(t, "tfidf-proxy", m.BackendName())

		want, err := LexicalProxy{}.Score(ctx, resume, jd)
		require.NoError(t, err)
		assert.Equal(t, want, m.Score(ctx, resume, jd))
	})

	t.Run("Backend score is used when it succeeds", func(t *testing.T) {
		m := NewSemanticMatcher(fixedBackend{score: 0.73}, nil)
		assert.Equal(t, "fixed", m.BackendName())
		assert.Equal(t, 0.73, m.Score(ctx, resume, jd))
	})

	t.Run("Backend score is clamped", func(t *testing.T) {
		m := NewSemanticMatcher(fixedBackend{score: 1.7}, nil)
		assert.Equal(t, 1.0, m.Score(ctx, resume, jd))
	})

	t.Run("Backend failure falls back to the proxy", func(t *testing.T) {
		m := NewSemanticMatcher(failingBackend{}, nil)

		want, err := LexicalProxy{}.Score(ctx, resume, jd)
		require.NoError(t, err)
		assert.Equal(t, want, m.Score(ctx, resume, jd))
	})
}

func TestNgrams(t *testing.T) {
	tokens := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "b", "c"}, ngrams(tokens, 1, 1))
	assert.Equal(t,
		[]string{"a", "b", "c", "a b", "b c", "a b c"},
		ngrams(tokens, 1, 3))
	assert.Nil(t, ngrams(nil, 1, 2))
}

func TestCosine32(t *testing.T) {
	assert.InDelta(t, 1.0, cosine32([]float32{1, 2, 3}, []float32{1, 2, 3}), 1e-6)
	assert.Equal(t, 0.0, cosine32([]float32{1, 0}, []float32{0, 1}))
	assert.Equal(t, 0.0, cosine32([]float32{1, 2}, []float32{1, 2, 3}), "length mismatch scores 0")
	assert.Equal(t, 0.0, cosine32(nil, nil))
}

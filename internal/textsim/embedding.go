package textsim

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is used when no embedding model is configured
const DefaultEmbeddingModel = "text-embedding-004"

// GeminiEmbedding scores similarity as the cosine of Gemini text
// embeddings. It implements Similarity.
type GeminiEmbedding struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedding creates an embedding backend
func NewGeminiEmbedding(ctx context.Context, apiKey, model string) (*GeminiEmbedding, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedding{client: client, model: model}, nil
}

// Name implements Similarity
func (g *GeminiEmbedding) Name() string {
	return "gemini:" + g.model
}

// Score implements Similarity
func (g *GeminiEmbedding) Score(ctx context.Context, resumeText, jdText string) (float64, error) {
	em := g.client.EmbeddingModel(g.model)

	batch := em.NewBatch().
		AddContent(genai.Text(resumeText)).
		AddContent(genai.Text(jdText))

	res, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("failed to embed texts: %w", err)
	}
	if len(res.Embeddings) != 2 || res.Embeddings[0] == nil || res.Embeddings[1] == nil {
		return 0, fmt.Errorf("expected 2 embeddings, got %d", len(res.Embeddings))
	}

	return clamp01(cosine32(res.Embeddings[0].Values, res.Embeddings[1].Values)), nil
}

// Close releases the underlying client
func (g *GeminiEmbedding) Close() error {
	return g.client.Close()
}

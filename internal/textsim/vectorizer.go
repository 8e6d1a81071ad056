// Package textsim computes lexical and semantic similarity between
// normalized texts.
package textsim

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// errEmptyVocabulary signals degenerate input: no informative terms
// survived tokenization in either document
var errEmptyVocabulary = errors.New("empty vocabulary")

// vectorizerOptions control the joint TF-IDF vector space built over the
// two documents
type vectorizerOptions struct {
	maxFeatures int
	ngramMin    int
	ngramMax    int
}

// tokenize splits normalized text into terms, dropping stop words
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if !stopWords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// ngrams expands tokens into space-joined n-grams for n in [min, max]
func ngrams(tokens []string, min, max int) []string {
	if min < 1 {
		min = 1
	}
	var out []string
	for n := min; n <= max; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}

// tfidfCosine builds a TF-IDF vector space jointly over the two documents,
// restricted to the most frequent maxFeatures terms, and returns the
// cosine similarity of the two vectors.
func tfidfCosine(docA, docB string, opts vectorizerOptions) (float64, error) {
	termsA := ngrams(tokenize(docA), opts.ngramMin, opts.ngramMax)
	termsB := ngrams(tokenize(docB), opts.ngramMin, opts.ngramMax)

	countsA := termCounts(termsA)
	countsB := termCounts(termsB)

	vocab := make([]string, 0, len(countsA)+len(countsB))
	seen := make(map[string]bool, len(countsA)+len(countsB))
	for term := range countsA {
		if !seen[term] {
			seen[term] = true
			vocab = append(vocab, term)
		}
	}
	for term := range countsB {
		if !seen[term] {
			seen[term] = true
			vocab = append(vocab, term)
		}
	}
	if len(vocab) == 0 {
		return 0, errEmptyVocabulary
	}

	// keep the most frequent terms; ties break alphabetically so the
	// vocabulary is deterministic
	sort.Slice(vocab, func(i, j int) bool {
		ci := countsA[vocab[i]] + countsB[vocab[i]]
		cj := countsA[vocab[j]] + countsB[vocab[j]]
		if ci != cj {
			return ci > cj
		}
		return vocab[i] < vocab[j]
	})
	if opts.maxFeatures > 0 && len(vocab) > opts.maxFeatures {
		vocab = vocab[:opts.maxFeatures]
	}

	// smoothed idf over the two-document corpus
	const numDocs = 2.0
	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, term := range vocab {
		df := 0.0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log((1+numDocs)/(1+df)) + 1
		vecA[i] = float64(countsA[term]) * idf
		vecB[i] = float64(countsB[term]) * idf
	}

	return cosine(vecA, vecB), nil
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t]++
	}
	return counts
}

// cosine returns the cosine similarity of two equal-length vectors,
// 0 when either has zero magnitude
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// cosine32 is cosine for embedding vectors
func cosine32(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// clamp01 bounds a score to [0, 1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

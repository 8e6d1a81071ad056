package textsim

import "strings"

// Vector space for the hard match: unigrams and bigrams over the top 1000 terms
const (
	hardMatchMaxFeatures = 1000
	hardMatchNgramMax    = 2
)

// HardMatch computes exact keyword-level similarity between two normalized
// texts as the TF-IDF cosine similarity of the JD and resume vectors.
// Deterministic and pure: the same inputs always produce the same score.
func HardMatch(resumeText, jdText string) float64 {
	score, err := tfidfCosine(jdText, resumeText, vectorizerOptions{
		maxFeatures: hardMatchMaxFeatures,
		ngramMin:    1,
		ngramMax:    hardMatchNgramMax,
	})
	if err != nil {
		// degenerate input: fall back to plain word-set overlap
		return wordOverlap(resumeText, jdText)
	}
	return clamp01(score)
}

// wordOverlap returns |jd words ∩ resume words| / |jd words|, 0 when the
// JD has no words
func wordOverlap(resumeText, jdText string) float64 {
	jdWords := wordSet(jdText)
	if len(jdWords) == 0 {
		return 0
	}
	resumeWords := wordSet(resumeText)
	overlap := 0
	for w := range jdWords {
		if resumeWords[w] {
			overlap++
		}
	}
	return float64(overlap) / float64(len(jdWords))
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		set[w] = true
	}
	return set
}

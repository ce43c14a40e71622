package classifier

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/feedguard/feedguard/lib/feedback"
)

// scoreSentiment aggregates per-token lexicon matches into a verdict.
// Exact matches against the normalized token win; otherwise the best fuzzy
// score against each lexicon decides, and a tie between the positive and
// negative best scores counts toward neither side.
func (c *Classifier) scoreSentiment(tokens []string) feedback.Sentiment {
	positive, negative := 0, 0
	for _, token := range tokens {
		if isEmojiToken(token) {
			continue // no sentiment lexicon to match emoji against
		}
		norm := normalize(token)
		if norm == "" {
			continue
		}

		// exact matches first to avoid fuzzy false positives
		if c.positive.has(norm) {
			positive++
			continue
		}
		if c.negative.has(norm) {
			negative++
			continue
		}
		if c.stopWords.has(norm) {
			continue
		}

		bestPos := bestSimilarity(norm, c.positive)
		bestNeg := bestSimilarity(norm, c.negative)
		if bestPos < c.SimilarityThreshold && bestNeg < c.SimilarityThreshold {
			continue
		}
		switch {
		case bestPos > bestNeg:
			positive++
		case bestNeg > bestPos:
			negative++
		}
	}

	switch {
	case positive > negative:
		return feedback.Positive
	case negative > positive:
		return feedback.Negative
	}
	return feedback.Neutral
}

// bestSimilarity returns the highest similarity between the token and any
// lexicon entry
func bestSimilarity(token string, lex lexicon) float64 {
	best := 0.0
	for word := range lex {
		if s := similarity(token, word); s > best {
			best = s
		}
	}
	return best
}

// similarity is a normalized levenshtein closeness: symmetric,
// deterministic and bounded to [0, 1] with 1 for identical strings.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}

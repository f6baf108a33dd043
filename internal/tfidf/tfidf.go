// Package tfidf implements the corpus-relative relevance scorer.
// It keeps an append-only corpus of normalized document texts and
// computes term-frequency/inverse-document-frequency scores for ad hoc
// queries against it.
package tfidf

import (
	"math"
	"strings"
	"sync"

	"warraq/internal/textnorm"
)

// Scorer owns the corpus and the per-term document-frequency counts,
// maintained incrementally as documents are added. Adds are serialized
// behind the write lock; Score takes the read lock, so concurrent reads
// proceed in parallel and never observe a half-applied add.
type Scorer struct {
	mu   sync.RWMutex
	docs int            // number of corpus documents
	df   map[string]int // term -> number of corpus documents containing it
}

// NewScorer returns a scorer with an empty corpus.
func NewScorer() *Scorer {
	return &Scorer{df: make(map[string]int)}
}

// AddDocument normalizes rawText, appends it to the corpus, and bumps
// the document frequency of every distinct term in it. Adding the same
// text twice is legal and counts as two corpus documents. A text that
// normalizes to nothing still grows the corpus.
func (s *Scorer) AddDocument(rawText string) {
	terms := strings.Fields(textnorm.Normalize(rawText))
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs++
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		s.df[t]++
	}
}

// Documents reports the current corpus size.
func (s *Scorer) Documents() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs
}

// Score normalizes and tokenizes queryText and sums tf*idf over its
// distinct terms. Term frequency is relative to the query's matched
// token count; IDF is log((1+N)/(1+df)) + 1 over the current corpus.
// Terms absent from the corpus contribute nothing, so degenerate inputs
// — empty corpus, empty query, a query with no Arabic tokens, or only
// unknown terms — score exactly 0.0. The result is always finite.
func (s *Scorer) Score(queryText string) float64 {
	terms := strings.Fields(textnorm.Normalize(queryText))
	if len(terms) == 0 {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tf := make(map[string]int, len(terms))
	matched := 0
	for _, t := range terms {
		if s.df[t] == 0 {
			continue
		}
		tf[t]++
		matched++
	}
	if matched == 0 {
		return 0
	}

	n := float64(s.docs)
	score := 0.0
	for term, count := range tf {
		termFreq := float64(count) / float64(matched)
		idf := math.Log((1+n)/(1+float64(s.df[term]))) + 1
		score += termFreq * idf
	}
	return score
}

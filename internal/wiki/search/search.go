// Package search ranks documents against free-text queries using
// Okapi BM25 over weighted fields. It knows nothing about the wiki;
// callers map their pages into Documents.
package search

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// BM25 parameters, standard Okapi values.
const (
	paramK1      = 1.2
	paramB       = 0.75
	paramEpsilon = 0.25
)

// Field weights: a match in the title outranks the same match buried
// in the body.
const (
	weightTitle   = 3
	weightTags    = 2
	weightSummary = 2
	weightContent = 1
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Document is one indexable item. Slug identifies it in hits.
type Document struct {
	Slug    string
	Title   string
	Summary string
	Tags    []string
	Content string
}

// Hit is a single search result.
type Hit struct {
	Slug    string
	Title   string
	Summary string

	// Score is the BM25 relevance. Higher is more relevant; the scale
	// depends on the corpus.
	Score float64
}

// Index is an immutable BM25 index. Build a new one after every
// document mutation; construction is linear in total tokens and cheap
// for wiki-sized corpora. Safe for concurrent reads.
type Index struct {
	documents       []Document
	termFrequencies []map[string]int
	lengths         []int
	averageLength   float64
	idf             map[string]float64
}

// New indexes the given documents.
func New(documents []Document) *Index {
	index := &Index{
		documents:       documents,
		termFrequencies: make([]map[string]int, len(documents)),
		lengths:         make([]int, len(documents)),
		idf:             make(map[string]float64),
	}

	documentFrequency := make(map[string]int)
	var totalLength int

	for i, document := range documents {
		tokens := documentTokens(document)
		index.lengths[i] = len(tokens)
		totalLength += len(tokens)

		frequencies := make(map[string]int)
		seen := make(map[string]bool)
		for _, token := range tokens {
			frequencies[token]++
			if !seen[token] {
				seen[token] = true
				documentFrequency[token]++
			}
		}
		index.termFrequencies[i] = frequencies
	}

	if len(documents) > 0 {
		index.averageLength = float64(totalLength) / float64(len(documents))
	}

	// Terms present in every document keep a small positive IDF so
	// they still break ties.
	documentCount := float64(len(documents))
	for term, frequency := range documentFrequency {
		idf := math.Log(1 + (documentCount-float64(frequency)+0.5)/(float64(frequency)+0.5))
		if idf < 0 {
			idf = paramEpsilon
		}
		index.idf[term] = idf
	}

	return index
}

// Search returns up to limit documents ranked by relevance. A query
// that produces no tokens or matches nothing returns an empty slice.
func (index *Index) Search(query string, limit int) []Hit {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	type scored struct {
		document int
		score    float64
	}
	var hits []scored
	for i := range index.documents {
		if score := index.score(i, queryTokens); score > 0 {
			hits = append(hits, scored{document: i, score: score})
		}
	}

	sort.Slice(hits, func(a, b int) bool { return hits[a].score > hits[b].score })
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]Hit, len(hits))
	for i, hit := range hits {
		document := index.documents[hit.document]
		results[i] = Hit{Slug: document.Slug, Title: document.Title, Summary: document.Summary, Score: hit.score}
	}
	return results
}

func (index *Index) score(document int, queryTokens []string) float64 {
	frequencies := index.termFrequencies[document]
	length := float64(index.lengths[document])

	var score float64
	for _, token := range queryTokens {
		idf, known := index.idf[token]
		if !known {
			continue
		}
		frequency := float64(frequencies[token])
		if frequency == 0 {
			continue
		}
		numerator := frequency * (paramK1 + 1)
		denominator := frequency + paramK1*(1-paramB+paramB*length/index.averageLength)
		score += idf * numerator / denominator
	}
	return score
}

// documentTokens builds the weighted composite token stream for a
// document by repeating each field's tokens by its weight.
func documentTokens(document Document) []string {
	var tokens []string
	appendWeighted := func(text string, weight int) {
		fieldTokens := tokenize(text)
		for i := 0; i < weight; i++ {
			tokens = append(tokens, fieldTokens...)
		}
	}
	appendWeighted(document.Title, weightTitle)
	appendWeighted(strings.Join(document.Tags, " "), weightTags)
	appendWeighted(document.Summary, weightSummary)
	appendWeighted(document.Content, weightContent)
	return tokens
}

// tokenize splits text into lowercase alphanumeric tokens, discarding
// single-character noise.
func tokenize(text string) []string {
	matches := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := matches[:0]
	for _, match := range matches {
		if len(match) >= 2 {
			tokens = append(tokens, match)
		}
	}
	return tokens
}

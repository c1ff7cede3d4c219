package services

import (
	"regexp"
	"sort"
	"strings"

	model "github.com/Itish41/NyayaMitra/models"
)

// defaultTopK is the number of ranked matches returned when the caller
// does not ask for a specific count.
const defaultTopK = 3

// Scoring weights. Design constants, not runtime tunables.
const (
	phraseInContentWeight = 10
	phraseInTitleWeight   = 15
	sectionInQueryWeight  = 8
	keywordInQueryWeight  = 5
	keywordPartialWeight  = 2
	tokenInContentWeight  = 1
	tokenInTitleWeight    = 2
	tokenInSectionWeight  = 3
	tokenInCategoryWeight = 2
	categoryWordWeight    = 3
	minTokenLength        = 3
	relevanceCap          = 20.0
)

// stopWords are stripped from the per-token scoring pass. The raw
// lowercase query string is still used for phrase and keyword checks.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "are": {}, "was": {}, "were": {}, "a": {}, "an": {},
	"and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "of": {}, "with": {}, "by": {}, "what": {}, "how": {},
	"when": {}, "where": {}, "why": {}, "who": {},
}

// boostTerms are legal-vocabulary words carrying an extra fixed weight
// when present in both the query and a document's content.
var boostTerms = map[string]int{
	"constitution": 8, "article": 6, "fundamental": 6, "rights": 6,
	"ipc": 8, "section": 4, "penal": 6, "criminal": 6, "murder": 8,
	"contract": 8, "agreement": 6, "consideration": 6,
	"consumer": 8, "protection": 6, "goods": 4,
	"company": 8, "corporate": 6, "incorporation": 6,
	"evidence": 8, "witness": 6, "court": 4,
	"information": 6, "rti": 8, "transparency": 4,
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// RankDocuments scores every corpus document against the query and
// returns the topK nonzero matches ordered by score descending. Ties keep
// corpus order. An empty corpus or an empty query yields an empty slice;
// ranking never fails.
func RankDocuments(query string, corpus []model.CorpusDocument, topK int) []model.ScoredMatch {
	if topK < 1 {
		topK = defaultTopK
	}
	queryLower := strings.ToLower(strings.TrimSpace(query))
	tokens := queryTokens(queryLower)

	matches := make([]model.ScoredMatch, 0, len(corpus))
	for i := range corpus {
		doc := &corpus[i]
		score := scoreDocument(queryLower, tokens, doc)
		if score == 0 {
			continue
		}
		relevance := float64(score) / relevanceCap
		if relevance > 1.0 {
			relevance = 1.0
		}
		matches = append(matches, model.ScoredMatch{Document: doc, Score: score, Relevance: relevance})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > topK {
		matches = matches[:topK]
	}
	for i := range matches {
		matches[i].Rank = i + 1
	}
	return matches
}

func scoreDocument(queryLower string, tokens []string, doc *model.CorpusDocument) int {
	contentLower := strings.ToLower(doc.Content)
	titleLower := strings.ToLower(doc.Title)
	sectionLower := strings.ToLower(doc.Section)
	categoryLower := strings.ToLower(doc.Category)

	score := 0

	// Exact phrase match of the whole query. Guarded against the empty
	// query, which would otherwise be a substring of everything.
	if queryLower != "" {
		if strings.Contains(contentLower, queryLower) {
			score += phraseInContentWeight
		}
		if strings.Contains(titleLower, queryLower) {
			score += phraseInTitleWeight
		}
		// Credit a query that names the section verbatim ("article 21",
		// "section 302"); the bare number never scores as a token.
		if sectionLower != "" && strings.Contains(queryLower, sectionLower) {
			score += sectionInQueryWeight
		}
	}

	// Keyword matches. A literal keyword hit outranks a partial overlap;
	// the partial bonus applies at most once per keyword.
	for _, kw := range doc.Keywords {
		k := strings.ToLower(kw)
		if k == "" {
			continue
		}
		if strings.Contains(queryLower, k) {
			score += keywordInQueryWeight
			continue
		}
		for _, tok := range tokens {
			if strings.Contains(k, tok) || strings.Contains(tok, k) {
				score += keywordPartialWeight
				break
			}
		}
	}

	for _, tok := range tokens {
		if len(tok) < minTokenLength {
			continue
		}
		if strings.Contains(contentLower, tok) {
			score += tokenInContentWeight
		}
		if strings.Contains(titleLower, tok) {
			score += tokenInTitleWeight
		}
		if strings.Contains(sectionLower, tok) {
			score += tokenInSectionWeight
		}
		if strings.Contains(categoryLower, tok) {
			score += tokenInCategoryWeight
		}
	}

	for term, weight := range boostTerms {
		if strings.Contains(queryLower, term) && strings.Contains(contentLower, term) {
			score += weight
		}
	}

	// Category bonus, applied once however many category words appear.
	for _, catWord := range strings.Fields(categoryLower) {
		if strings.Contains(queryLower, catWord) {
			score += categoryWordWeight
			break
		}
	}

	return score
}

// queryTokens splits the lowercased query into unique alphanumeric runs
// with stop words removed, preserving first-seen order.
func queryTokens(queryLower string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, w := range wordPattern.FindAllString(queryLower, -1) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, w)
	}
	return tokens
}

package models

import (
	"fmt"
	"strings"
)

// CorpusDocument is the immutable value form of a legal document used by
// the retrieval engine. It is loaded once per sync and read-only for the
// life of a query.
type CorpusDocument struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Source   string   `json:"source"`
	Section  string   `json:"section"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
	URL      string   `json:"url"`
}

// Validate enforces the ingestion invariant: content, source, section and
// category must be non-empty. Keywords may be empty but never nil once a
// document is accepted into the store.
func (d CorpusDocument) Validate() error {
	required := []struct{ name, value string }{
		{"content", d.Content},
		{"source", d.Source},
		{"section", d.Section},
		{"category", d.Category},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("legal document %q: missing required field %s", d.Title, field.name)
		}
	}
	return nil
}

// ScoredMatch is an ephemeral ranking result produced per query. It
// references a corpus document and does not own it.
type ScoredMatch struct {
	Document *CorpusDocument
	// Score is the raw additive weighted match count, never negative.
	Score int
	// Relevance is Score normalized into [0,1].
	Relevance float64
	// Rank is the 1-based position after the stable sort by score.
	Rank int
}

// Citation is a single source record attached to a composed answer.
type Citation struct {
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	Source         string  `json:"source"`
	Section        string  `json:"section"`
	URL            string  `json:"url"`
	RelevanceScore float64 `json:"relevance_score"`
}

// ComposedAnswer is the final assembled response for a query. AnswerText
// always ends with the legal disclaimer clause.
type ComposedAnswer struct {
	AnswerText  string     `json:"answer"`
	Sources     []Citation `json:"sources"`
	ContextUsed bool       `json:"context_used"`
	Category    string     `json:"category"`
	AIPowered   bool       `json:"ai_powered"`
	Warning     string     `json:"warning,omitempty"`
}

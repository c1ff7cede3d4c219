package services

import (
	"testing"

	model "github.com/Itish41/NyayaMitra/models"
	"github.com/stretchr/testify/assert"
)

func testCorpus() []model.CorpusDocument {
	return seedCorpus()
}

func TestRankDocuments_Article21Query(t *testing.T) {
	queries := []string{
		"What is Article 21?",
		"What is Article 21 of the Constitution?",
	}

	for _, query := range queries {
		t.Run(query, func(t *testing.T) {
			matches := RankDocuments(query, testCorpus(), 3)

			assert.NotEmpty(t, matches)
			assert.Equal(t, "Article 21", matches[0].Document.Section)
			for i, m := range matches {
				assert.Equal(t, i+1, m.Rank)
				assert.Greater(t, m.Score, 0)
				assert.GreaterOrEqual(t, m.Relevance, 0.0)
				assert.LessOrEqual(t, m.Relevance, 1.0)
			}
		})
	}
}

func TestRankDocuments_SectionNamedInQueryOutranksSibling(t *testing.T) {
	corpus := []model.CorpusDocument{
		{Title: "Some Act - Section 14", Content: "Section 14: First provision text.", Source: "Some Act", Section: "Section 14", Category: "Other"},
		{Title: "Some Act - Section 21", Content: "Section 21: Second provision text.", Source: "Some Act", Section: "Section 21", Category: "Other"},
	}

	matches := RankDocuments("explain section 21", corpus, 2)
	assert.Len(t, matches, 2)
	assert.Equal(t, "Section 21", matches[0].Document.Section)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestRankDocuments_Deterministic(t *testing.T) {
	corpus := testCorpus()
	first := RankDocuments("punishment for murder", corpus, 3)
	second := RankDocuments("punishment for murder", corpus, 3)

	assert.Equal(t, first, second)
}

func TestRankDocuments_TopKBounds(t *testing.T) {
	// "constitution fundamental rights" scores nonzero against exactly
	// four seed documents: Articles 14, 19, 21 and the consumer
	// definition (whose content mentions consumer rights).
	const nonzeroHits = 4

	tests := []struct {
		name    string
		topK    int
		wantLen int
	}{
		{"explicit limit", 2, 2},
		{"zero falls back to default", 0, defaultTopK},
		{"negative falls back to default", -5, defaultTopK},
		{"limit above hit count", 100, nonzeroHits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := RankDocuments("constitution fundamental rights", testCorpus(), tt.topK)
			assert.Len(t, matches, tt.wantLen)
		})
	}
}

func TestRankDocuments_EmptyQuery(t *testing.T) {
	assert.Empty(t, RankDocuments("", testCorpus(), 3))
	assert.Empty(t, RankDocuments("   ", testCorpus(), 3))
}

func TestRankDocuments_EmptyCorpus(t *testing.T) {
	assert.Empty(t, RankDocuments("what is a contract", nil, 3))
}

func TestRankDocuments_ZeroScoreExcluded(t *testing.T) {
	corpus := []model.CorpusDocument{
		{
			Title:    "Some Act - Section 1",
			Content:  "Completely unrelated text about nothing in particular.",
			Source:   "Some Act",
			Section:  "Section 1",
			Category: "Other",
		},
	}

	matches := RankDocuments("zzzz qqqq", corpus, 3)
	assert.Empty(t, matches)
}

func TestRankDocuments_TitlePhraseOutranksContentPhrase(t *testing.T) {
	corpus := []model.CorpusDocument{
		{
			Title:    "General Provisions",
			Content:  "habeas corpus is mentioned here in passing",
			Source:   "Act A",
			Section:  "Section 1",
			Category: "Other",
		},
		{
			Title:    "habeas corpus",
			Content:  "general provisions only",
			Source:   "Act B",
			Section:  "Section 2",
			Category: "Other",
		},
	}

	matches := RankDocuments("habeas corpus", corpus, 2)
	assert.Len(t, matches, 2)
	assert.Equal(t, "Act B", matches[0].Document.Source)
}

func TestRankDocuments_StableTieOrder(t *testing.T) {
	corpus := []model.CorpusDocument{
		{Title: "Twin One", Content: "identical witness text", Source: "Act A", Section: "S1", Category: "Other"},
		{Title: "Twin Two", Content: "identical witness text", Source: "Act B", Section: "S2", Category: "Other"},
	}

	matches := RankDocuments("identical witness text", corpus, 2)
	assert.Len(t, matches, 2)
	assert.Equal(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, "Act A", matches[0].Document.Source)
	assert.Equal(t, "Act B", matches[1].Document.Source)
}

func TestQueryTokens(t *testing.T) {
	tokens := queryTokens("what is the punishment for murder and murder")

	assert.Equal(t, []string{"punishment", "murder"}, tokens)
}

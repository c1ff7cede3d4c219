package services

import (
	"testing"

	model "github.com/Itish41/NyayaMitra/models"
	"github.com/stretchr/testify/assert"
)

func TestDocumentStore_ReplaceAllAndSnapshot(t *testing.T) {
	store := NewDocumentStore()
	assert.Equal(t, 0, store.Count())

	err := store.ReplaceAll(seedCorpus())
	assert.NoError(t, err)
	assert.Equal(t, len(seedCorpus()), store.Count())

	snapshot := store.Snapshot()
	snapshot[0].Title = "mutated"

	fresh := store.Snapshot()
	assert.NotEqual(t, "mutated", fresh[0].Title)
}

func TestDocumentStore_ReplaceAllRejectsMalformed(t *testing.T) {
	store := NewDocumentStore()
	assert.NoError(t, store.ReplaceAll(seedCorpus()))

	bad := []model.CorpusDocument{
		{Title: "Missing content", Source: "Act", Section: "S1", Category: "Other"},
	}
	err := store.ReplaceAll(bad)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing required field content")

	// The previous corpus must survive a failed replace.
	assert.Equal(t, len(seedCorpus()), store.Count())
}

func TestDocumentStore_ReplaceAllNormalizesNilKeywords(t *testing.T) {
	store := NewDocumentStore()
	docs := []model.CorpusDocument{
		{Title: "Doc", Content: "text", Source: "Act", Section: "S1", Category: "Other"},
	}
	assert.NoError(t, store.ReplaceAll(docs))

	snapshot := store.Snapshot()
	assert.NotNil(t, snapshot[0].Keywords)
	assert.Empty(t, snapshot[0].Keywords)
}

func TestDocumentStore_Upsert(t *testing.T) {
	store := NewDocumentStore()

	doc := model.CorpusDocument{ID: "doc-1", Title: "Original", Content: "text", Source: "Act", Section: "S1", Category: "Other"}
	assert.NoError(t, store.Upsert(doc))
	assert.Equal(t, 1, store.Count())

	doc.Title = "Updated"
	assert.NoError(t, store.Upsert(doc))
	assert.Equal(t, 1, store.Count())
	assert.Equal(t, "Updated", store.Snapshot()[0].Title)

	other := model.CorpusDocument{ID: "doc-2", Title: "Second", Content: "text", Source: "Act", Section: "S2", Category: "Other"}
	assert.NoError(t, store.Upsert(other))
	assert.Equal(t, 2, store.Count())

	assert.Error(t, store.Upsert(model.CorpusDocument{Title: "bad"}))
	assert.Equal(t, 2, store.Count())
}

package services

import (
	"log"
	"sync"

	model "github.com/Itish41/NyayaMitra/models"
)

// DocumentStore holds the in-memory retrieval corpus. Reads vastly
// outnumber writes; writes happen on sync and replace the whole slice
// atomically so readers never observe a partially loaded corpus.
type DocumentStore struct {
	mu   sync.RWMutex
	docs []model.CorpusDocument
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Snapshot returns a copy of the corpus safe to rank against without
// holding the lock.
func (s *DocumentStore) Snapshot() []model.CorpusDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CorpusDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

// Count returns the number of documents currently loaded.
func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// ReplaceAll validates every incoming document and swaps the corpus in
// one step. On any validation error the existing corpus is left
// untouched.
func (s *DocumentStore) ReplaceAll(docs []model.CorpusDocument) error {
	next := make([]model.CorpusDocument, len(docs))
	copy(next, docs)
	for i := range next {
		if err := next[i].Validate(); err != nil {
			return err
		}
		if next[i].Keywords == nil {
			next[i].Keywords = []string{}
		}
	}

	s.mu.Lock()
	s.docs = next
	s.mu.Unlock()
	log.Printf("Document store loaded with %d legal documents", len(next))
	return nil
}

// Upsert inserts the document, replacing an existing entry with the same
// ID when one exists.
func (s *DocumentStore) Upsert(doc model.CorpusDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if doc.Keywords == nil {
		doc.Keywords = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.ID != "" {
		for i := range s.docs {
			if s.docs[i].ID == doc.ID {
				s.docs[i] = doc
				return nil
			}
		}
	}
	s.docs = append(s.docs, doc)
	return nil
}

// Package docstore provides the in-memory document store backing the
// editor. Real deployments swap in a database-backed store behind
// domain.Store; the indexing engine itself is storage agnostic.
package docstore

import (
	"fmt"
	"sort"
	"sync"

	"warraq/internal/domain"
)

// Ensure Store implements the interface.
var _ domain.Store = (*Store)(nil)

// Store keeps documents in memory keyed by id. Ids are assigned
// monotonically and never reused.
type Store struct {
	mu         sync.RWMutex
	nextDocID  int
	nextPageID int
	docs       map[int]domain.Document
}

// New creates an empty store.
func New() *Store {
	return &Store{nextDocID: 1, nextPageID: 1, docs: make(map[int]domain.Document)}
}

// Save stores a new document, assigning its id and page ids, and
// returns the stored copy.
func (s *Store) Save(doc domain.Document) (domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc.ID = s.nextDocID
	s.nextDocID++
	doc.Pages = s.numberPages(doc.ID, doc.Pages)
	s.docs[doc.ID] = doc
	return copyDoc(doc), nil
}

// Get retrieves a document by id.
func (s *Store) Get(id int) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("docstore: document %d: %w", id, domain.ErrNotFound)
	}
	return copyDoc(doc), nil
}

// List returns all documents in id order.
func (s *Store) List() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]domain.Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyDoc(s.docs[id]))
	}
	return out, nil
}

// Update replaces an existing document. Pages carrying a zero id (a
// fresh pagination pass) get new page ids.
func (s *Store) Update(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[doc.ID]; !ok {
		return fmt.Errorf("docstore: document %d: %w", doc.ID, domain.ErrNotFound)
	}
	doc.Pages = s.numberPages(doc.ID, doc.Pages)
	s.docs[doc.ID] = copyDoc(doc)
	return nil
}

// Delete removes a document and its pages.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("docstore: document %d: %w", id, domain.ErrNotFound)
	}
	delete(s.docs, id)
	return nil
}

// numberPages stamps ownership and assigns ids to pages that lack one.
// Callers hold the write lock.
func (s *Store) numberPages(docID int, pages []domain.Page) []domain.Page {
	out := make([]domain.Page, len(pages))
	copy(out, pages)
	for i := range out {
		out[i].DocumentID = docID
		if out[i].ID == 0 {
			out[i].ID = s.nextPageID
			s.nextPageID++
		}
	}
	return out
}

// copyDoc returns a document whose page slice is independent of the
// stored one. Pages are owned exclusively by their document.
func copyDoc(doc domain.Document) domain.Document {
	pages := make([]domain.Page, len(doc.Pages))
	copy(pages, doc.Pages)
	doc.Pages = pages
	return doc
}

// Package service wires the indexing engine to the editor shell: import
// and CRUD over stored documents, keyword search, relevance scoring,
// and delegation to the external NLP provider.
package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"warraq/internal/domain"
	"warraq/internal/fingerprint"
	"warraq/internal/nlp"
	"warraq/internal/paginator"
	"warraq/internal/search"
)

// Editor is the application facade. All methods are synchronous; the
// underlying store and scorer handle their own locking.
type Editor struct {
	store   domain.Store
	scorer  domain.Scorer
	nlp     nlp.Provider
	allowed map[string]struct{}
}

// NewEditor assembles the facade. allowedExts lists the importable file
// extensions without dots; nil means the default text formats.
func NewEditor(store domain.Store, scorer domain.Scorer, provider nlp.Provider, allowedExts []string) *Editor {
	if len(allowedExts) == 0 {
		allowedExts = []string{"txt", "md"}
	}
	allowed := make(map[string]struct{}, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	return &Editor{store: store, scorer: scorer, nlp: provider, allowed: allowed}
}

// Create paginates content, stamps the import-time fingerprint, stores
// the document, and feeds the text to the relevance corpus. The
// fingerprint recorded here is the document's immutable original; it is
// never recomputed in place.
func (e *Editor) Create(name, content string) (domain.Document, error) {
	now := time.Now()
	doc := domain.Document{
		Name:                name,
		OriginalFingerprint: fingerprint.SumText(content),
		CreatedAt:           now,
		UpdatedAt:           now,
		Pages:               paginator.Paginate(content),
	}
	saved, err := e.store.Save(doc)
	if err != nil {
		return domain.Document{}, err
	}
	e.scorer.AddDocument(content)
	return saved, nil
}

// Import reads a text file from disk and creates a document from it.
// Files with an extension outside the allow-list are rejected before
// any read.
func (e *Editor) Import(path string) (domain.Document, error) {
	name := filepath.Base(path)
	ext := Ext(name)
	if _, ok := e.allowed[strings.ToLower(ext)]; !ok {
		return domain.Document{}, fmt.Errorf("service: import %q: %w: extension %q", name, domain.ErrUnsupportedType, ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("service: import %q: %w", name, err)
	}
	return e.Create(name, string(data))
}

// Update runs a fresh pagination pass over content and replaces the
// document's pages. The original fingerprint stays untouched so that
// drift against the import-time content remains detectable.
func (e *Editor) Update(id int, content string) (domain.Document, error) {
	doc, err := e.store.Get(id)
	if err != nil {
		return domain.Document{}, err
	}
	doc.Pages = paginator.Paginate(content)
	doc.UpdatedAt = time.Now()
	if err := e.store.Update(doc); err != nil {
		return domain.Document{}, err
	}
	return e.store.Get(id)
}

// Delete removes a document. Corpus entries are never removed; scoring
// statistics keep counting the imported text.
func (e *Editor) Delete(id int) error {
	return e.store.Delete(id)
}

// Get returns a stored document by id.
func (e *Editor) Get(id int) (domain.Document, error) {
	return e.store.Get(id)
}

// Documents lists all stored documents in id order.
func (e *Editor) Documents() ([]domain.Document, error) {
	return e.store.List()
}

// Drifted reports whether the document's current content no longer
// matches its import-time fingerprint. The comparison recomputes a
// fresh digest; the stored original is read, never written.
func (e *Editor) Drifted(id int) (bool, error) {
	doc, err := e.store.Get(id)
	if err != nil {
		return false, err
	}
	return fingerprint.SumText(doc.Content()) != doc.OriginalFingerprint, nil
}

// Search scans the whole collection for keyword and returns match
// descriptions.
func (e *Editor) Search(keyword string) ([]string, error) {
	docs, err := e.store.List()
	if err != nil {
		return nil, err
	}
	return search.Keyword(keyword, docs)
}

// AddToCorpus feeds text to the relevance corpus without storing a
// document.
func (e *Editor) AddToCorpus(text string) {
	e.scorer.AddDocument(text)
}

// Score returns the TF-IDF relevance of text against the corpus.
func (e *Editor) Score(text string) float64 {
	return e.scorer.Score(text)
}

// Ext returns the extension after the final dot, without the dot.
// Names with no dot have no extension; a leading-dot name like
// ".gitignore" counts as all extension.
func Ext(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

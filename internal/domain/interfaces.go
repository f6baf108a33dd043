package domain

// Store persists documents and their pages.
type Store interface {
	Save(doc Document) (Document, error)
	Get(id int) (Document, error)
	List() ([]Document, error)
	Update(doc Document) error
	Delete(id int) error
}

// Scorer owns a growable corpus of document texts and answers
// corpus-relative relevance queries.
type Scorer interface {
	AddDocument(rawText string)
	Score(queryText string) float64
}

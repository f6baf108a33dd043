package domain

import (
	"strings"
	"time"
)

// Document represents a single imported text file stored as ordered pages.
type Document struct {
	ID                  int
	Name                string
	OriginalFingerprint string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Pages               []Page
}

// Page is a fixed-size contiguous slice of a document's text.
// Page numbers run 1..N in reading order with no gaps.
type Page struct {
	ID         int
	DocumentID int
	Number     int
	Content    string
}

// Content reassembles the document text from its pages in page order.
// Pagination preserves every rune, so this is the full current text.
func (d Document) Content() string {
	var b strings.Builder
	for _, p := range d.Pages {
		b.WriteString(p.Content)
	}
	return b.String()
}

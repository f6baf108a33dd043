// Package search scans a document collection for a literal keyword and
// returns contextual match descriptions.
package search

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"warraq/internal/domain"
)

// MinKeywordLen is the shortest keyword accepted, in runes.
const MinKeywordLen = 3

// Keyword scans every document's pages in page order for a literal,
// case-sensitive occurrence of keyword. The first hit in a document
// produces one description — the document name plus the keyword with
// the single whitespace-delimited word preceding it, when one exists —
// and later occurrences in the same document are not reported.
//
// Matching deliberately stays case-sensitive even though word equality
// elsewhere in the editor is case-insensitive; harmonizing the two
// changes which documents are reported.
//
// A keyword shorter than MinKeywordLen runes is a validation error,
// checked before any scanning. No match is not an error: the result is
// an empty, non-nil slice.
func Keyword(keyword string, docs []domain.Document) ([]string, error) {
	if utf8.RuneCountInString(keyword) < MinKeywordLen {
		return nil, fmt.Errorf("search: %w: keyword must be at least %d characters", domain.ErrInvalidInput, MinKeywordLen)
	}
	results := []string{}
	for _, doc := range docs {
		for _, page := range doc.Pages {
			idx := strings.Index(page.Content, keyword)
			if idx < 0 {
				continue
			}
			results = append(results, describe(doc.Name, page.Content, idx, keyword))
			break
		}
	}
	return results, nil
}

// describe builds the match description for a hit at byte offset idx.
func describe(name, content string, idx int, keyword string) string {
	context := keyword
	if before := strings.Fields(content[:idx]); len(before) > 0 {
		context = before[len(before)-1] + " " + keyword
	}
	return fmt.Sprintf("%s: %s", name, context)
}

// Package paginator splits imported text into fixed-size ordered pages.
package paginator

import "warraq/internal/domain"

// PageSize is the page length in Unicode code points. The count is over
// runes, not bytes, so multi-byte scripts paginate the same as ASCII.
const PageSize = 100

// Paginate walks content taking successive PageSize-rune slices; the
// final slice holds the remainder. Pages are numbered 1..N in slice
// order. Empty content yields a single empty page numbered 1, never an
// empty list. Paginate is pure and never fails.
func Paginate(content string) []domain.Page {
	runes := []rune(content)
	if len(runes) == 0 {
		return []domain.Page{{Number: 1, Content: ""}}
	}
	pages := make([]domain.Page, 0, (len(runes)+PageSize-1)/PageSize)
	for start := 0; start < len(runes); start += PageSize {
		end := min(start+PageSize, len(runes))
		pages = append(pages, domain.Page{
			Number:  len(pages) + 1,
			Content: string(runes[start:end]),
		})
	}
	return pages
}

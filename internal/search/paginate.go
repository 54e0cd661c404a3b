package search

// Paginate splits items into consecutive pages of pageSize elements.
// The last page may be shorter. A non-positive pageSize yields no pages.
func Paginate[T any](items []T, pageSize int) [][]T {
	if pageSize <= 0 || len(items) == 0 {
		return [][]T{}
	}

	pages := make([][]T, 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := start + pageSize
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[start:end:end])
	}
	return pages
}

// Page returns the 1-based page of items, or an empty slice when the page is
// out of range.
func Page[T any](items []T, page, pageSize int) []T {
	pages := Paginate(items, pageSize)
	if page < 1 || page > len(pages) {
		return []T{}
	}
	return pages[page-1]
}

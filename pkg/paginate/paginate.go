// Package paginate computes page windows for bounded listings. All math is
// pure so stale offsets can be re-evaluated against the current count.
package paginate

// Page describes one window over a result set.
type Page struct {
	Offset     int
	Limit      int
	Number     int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Compute derives the window for offset into a set of totalCount items.
// A non-positive pageSize is treated as 1. An empty set still reports one
// page so the caller always has a valid view to render.
func Compute(totalCount, pageSize, offset int) Page {
	if pageSize <= 0 {
		pageSize = 1
	}
	if offset < 0 {
		offset = 0
	}

	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return Page{
		Offset:     offset,
		Limit:      pageSize,
		Number:     offset/pageSize + 1,
		TotalPages: totalPages,
		HasPrev:    offset > 0,
		HasNext:    offset+pageSize < totalCount,
	}
}

// NextOffset returns the offset of the following page. The boolean is false
// when the page had no next window at render time; callers must treat a
// stale "next" click as a no-op, since the listing may have shrunk.
func NextOffset(p Page) (int, bool) {
	if !p.HasNext {
		return p.Offset, false
	}
	return p.Offset + p.Limit, true
}

// PrevOffset steps back one page, clamped at the start of the listing.
func PrevOffset(offset, pageSize int) int {
	if pageSize <= 0 {
		pageSize = 1
	}
	prev := offset - pageSize
	if prev < 0 {
		return 0
	}
	return prev
}

// Stale reports whether offset points past the current end of the listing.
// Offset zero is never stale: an empty first page is a valid empty view.
func Stale(totalCount, offset int) bool {
	return offset > 0 && offset >= totalCount
}

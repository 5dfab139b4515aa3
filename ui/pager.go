package ui

// PageID identifies one display page.
type PageID uint8

// The fixed page cycle, in navigation order.
const (
	PageHome PageID = iota
	PageClock
	PageIdentity
	PageEject
	PageReset

	PageCount
)

// Pager cycles through the fixed page set. One qualifying press edge
// advances by exactly one page, wrapping after the last.
type Pager struct {
	current PageID
	count   PageID
}

// NewPager starts at the first page.
func NewPager(count PageID) *Pager {
	if count == 0 {
		count = 1
	}
	return &Pager{count: count}
}

// Advance moves to the next page, wrapping to the first.
func (p *Pager) Advance() {
	p.current = (p.current + 1) % p.count
}

// Page returns the selected page. An out-of-range value cannot occur
// through Advance; if state is ever corrupted the renderer shows the
// diagnostic page instead of faulting.
func (p *Pager) Page() PageID {
	return p.current
}

// Reset returns to the first page.
func (p *Pager) Reset() {
	p.current = 0
}

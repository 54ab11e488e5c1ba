package pagination

import (
	"github.com/rs/zerolog/log"
)

// Navigation actions recorded for every index change.
const (
	ActionNext     = "next"
	ActionPrevious = "previous"
	ActionGoTo     = "goto"
	ActionRestore  = "restore"
	ActionClamp    = "clamp"
)

// PageCount returns ceil(itemCount / pageSize), or 0 for an invalid page size.
func PageCount(itemCount, pageSize int) int {
	if pageSize <= 0 || itemCount <= 0 {
		return 0
	}
	return (itemCount + pageSize - 1) / pageSize
}

// Paginate splits items into contiguous pages of pageSize items.
// The last page may hold fewer items. An empty input yields an empty result.
// Pages share the backing array of items but have capped capacity, so
// appending to a page never overwrites the following one.
func Paginate[T any](items []T, pageSize int) ([][]T, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}

	count := PageCount(len(items), pageSize)
	pages := make([][]T, 0, count)
	for i := 0; i < count; i++ {
		start := i * pageSize
		end := min(start+pageSize, len(items))
		pages = append(pages, items[start:end:end])
	}

	return pages, nil
}

// Paginator holds the pages of a carousel and the index of the visible one.
// A Paginator is owned by a single carousel and is not safe for concurrent use.
type Paginator[T any] struct {
	items    []T
	pageSize int
	pages    [][]T
	current  int
}

// New creates a paginator positioned on the first page.
func New[T any](items []T, pageSize int) (*Paginator[T], error) {
	pages, err := Paginate(items, pageSize)
	if err != nil {
		return nil, err
	}

	return &Paginator[T]{
		items:    items,
		pageSize: pageSize,
		pages:    pages,
	}, nil
}

// Next moves to the following page, wrapping from the last page to the first.
func (p *Paginator[T]) Next() {
	n := len(p.pages)
	if n == 0 {
		p.reject("empty", ActionNext, 0)
		return
	}
	p.set((p.current+1)%n, ActionNext)
}

// Previous moves to the preceding page, wrapping from the first page to the last.
func (p *Paginator[T]) Previous() {
	n := len(p.pages)
	if n == 0 {
		p.reject("empty", ActionPrevious, 0)
		return
	}
	p.set((p.current-1+n)%n, ActionPrevious)
}

// GoTo jumps to the page at index. Out-of-range targets are rejected and
// leave the current index unchanged.
func (p *Paginator[T]) GoTo(index int) error {
	n := len(p.pages)
	if n == 0 {
		p.reject("empty", ActionGoTo, index)
		return ErrEmptyInput
	}
	if index < 0 || index >= n {
		p.reject("out_of_range", ActionGoTo, index)
		return &RangeError{Index: index, PageCount: n}
	}
	p.set(index, ActionGoTo)
	return nil
}

// Restore positions the paginator on a previously persisted index,
// clamping it into the current page range.
func (p *Paginator[T]) Restore(index int) {
	p.set(p.clamp(index), ActionRestore)
}

// SetItems replaces the source sequence and clamps the current index so it
// still points at an existing page.
func (p *Paginator[T]) SetItems(items []T) {
	pages, _ := Paginate(items, p.pageSize) // pageSize was validated by New/SetPageSize
	p.items = items
	p.pages = pages
	p.set(p.clamp(p.current), ActionClamp)
}

// SetPageSize re-partitions the items and clamps the current index.
func (p *Paginator[T]) SetPageSize(pageSize int) error {
	pages, err := Paginate(p.items, pageSize)
	if err != nil {
		return err
	}
	p.pageSize = pageSize
	p.pages = pages
	p.set(p.clamp(p.current), ActionClamp)
	return nil
}

// CurrentIndex returns the index of the visible page.
func (p *Paginator[T]) CurrentIndex() int {
	return p.current
}

// PageCount returns the number of pages.
func (p *Paginator[T]) PageCount() int {
	return len(p.pages)
}

// PageSize returns the configured page size.
func (p *Paginator[T]) PageSize() int {
	return p.pageSize
}

// Pages returns all pages in order.
func (p *Paginator[T]) Pages() [][]T {
	return p.pages
}

// CurrentPage returns the visible page, or nil when there are no pages.
func (p *Paginator[T]) CurrentPage() []T {
	if len(p.pages) == 0 {
		return nil
	}
	return p.pages[p.current]
}

// HasControls reports whether navigation controls should be shown.
func (p *Paginator[T]) HasControls() bool {
	return len(p.pages) > 1
}

// Offset returns the horizontal track translation in percent of its width.
func (p *Paginator[T]) Offset() int {
	return p.current * 100
}

func (p *Paginator[T]) clamp(index int) int {
	n := len(p.pages)
	switch {
	case n == 0, index < 0:
		return 0
	case index >= n:
		return n - 1
	default:
		return index
	}
}

// set is the only place that mutates current. Callers pass an index already
// known to be valid for the current pages (or 0 when there are none).
func (p *Paginator[T]) set(index int, action string) {
	if index == p.current {
		return
	}

	log.Debug().
		Str("action", action).
		Int("from", p.current).
		Int("index", index).
		Int("page_count", len(p.pages)).
		Msg("Carousel page changed")

	p.current = index
	Navigations.WithLabelValues(action).Inc()
}

func (p *Paginator[T]) reject(reason, action string, index int) {
	log.Debug().
		Str("action", action).
		Str("reason", reason).
		Int("index", index).
		Int("page_count", len(p.pages)).
		Msg("Carousel navigation rejected")

	Rejections.WithLabelValues(reason).Inc()
}

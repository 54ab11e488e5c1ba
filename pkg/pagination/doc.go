// Package pagination splits an ordered item sequence into fixed-size pages
// and provides cyclic navigation over them for the gallery carousel.
//
// Paginate is the pure part: it chunks a slice into contiguous pages where
// every page except possibly the last holds exactly pageSize items.
//
// Paginator wraps the pages with the single piece of mutable state, the
// index of the visible page:
//
//	p, err := pagination.New(items, 2)
//	if err != nil {
//		return err
//	}
//	p.Next()     // 0 -> 1
//	p.Previous() // 1 -> 0
//	if err := p.GoTo(5); errors.Is(err, pagination.ErrIndexOutOfRange) {
//		// state unchanged
//	}
//
// Navigation over zero pages is a no-op. When the items or the page size
// change, the current index is clamped into the new range so the visible
// page always exists.
//
// Every index change is counted in gallery_carousel_navigations_total and
// every rejected move in gallery_carousel_rejections_total.
package pagination

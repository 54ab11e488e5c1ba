package render

import (
	"github.com/acmgallery/gallery/pkg/gallery"
	"github.com/acmgallery/gallery/pkg/pagination"
)

// NavLink is an entry in the navigation bar.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// FilterChip is a filter button and whether it is highlighted.
type FilterChip struct {
	Name   gallery.Filter
	Active bool
}

// Dot is a carousel page indicator.
type Dot struct {
	Index  int
	Label  int
	Active bool
}

// CarouselView is the render state of the carousel derived from a paginator.
type CarouselView struct {
	Pages        [][]gallery.Item
	CurrentIndex int
	PageCount    int
	Offset       int
	HasControls  bool
	Dots         []Dot
}

// PageData is everything the gallery page template needs.
type PageData struct {
	Brand       string
	NavLinks    []NavLink
	Title       string
	Subtitle    string
	Intro       []string
	Filters     []FilterChip
	SortOptions []string
	Carousel    CarouselView
	Portraits   []gallery.Item
}

// NewCarouselView captures the paginator state for rendering.
func NewCarouselView(p *pagination.Paginator[gallery.Item]) CarouselView {
	view := CarouselView{
		Pages:        p.Pages(),
		CurrentIndex: p.CurrentIndex(),
		PageCount:    p.PageCount(),
		Offset:       p.Offset(),
		HasControls:  p.HasControls(),
	}

	view.Dots = make([]Dot, view.PageCount)
	for i := range view.Dots {
		view.Dots[i] = Dot{
			Index:  i,
			Label:  i + 1,
			Active: i == view.CurrentIndex,
		}
	}

	return view
}

// NewPageData builds the page for the given carousel state and highlighted filter.
func NewPageData(catalog *gallery.Catalog, carousel *pagination.Paginator[gallery.Item], active gallery.Filter) PageData {
	filters := gallery.Filters()
	chips := make([]FilterChip, len(filters))
	for i, f := range filters {
		chips[i] = FilterChip{Name: f, Active: f == active}
	}

	return PageData{
		Brand: "ACM",
		NavLinks: []NavLink{
			{Label: "Home", Href: "#"},
			{Label: "About", Href: "#"},
			{Label: "Events", Href: "#"},
			{Label: "Gallery", Href: "/", Active: true},
			{Label: "Contact", Href: "#"},
		},
		Title:    "Gallery",
		Subtitle: "Capturing our journey",
		Intro: []string{
			"Explore the memorable moments from our ACM chapter events, workshops, and activities through our comprehensive photo gallery.",
			"From our inaugural ceremony to the latest workshops and competitions, these photos tell the story of our growing ACM community and the impact we're making together.",
		},
		Filters:     chips,
		SortOptions: gallery.SortOptions(),
		Carousel:    NewCarouselView(carousel),
		Portraits:   catalog.Portraits,
	}
}

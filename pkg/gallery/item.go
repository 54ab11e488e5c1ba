// Package gallery defines the photo records shown on the gallery page and
// the inert filter and sort controls that sit above the carousel.
package gallery

import (
	"errors"
	"fmt"
)

// ItemsPerPage is the number of carousel cards shown side by side.
const ItemsPerPage = 2

var (
	// ErrDuplicateID indicates two items in one collection share an ID
	ErrDuplicateID = errors.New("duplicate item id")

	// ErrMissingImage indicates an item without an image URL
	ErrMissingImage = errors.New("item has no image url")
)

// Item is a single displayable photo. Items are never mutated after creation.
type Item struct {
	ID       int    `json:"id" yaml:"id"`
	ImageURL string `json:"image_url" yaml:"image_url"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// AltText returns the image alt text. Portraits carry no category.
func (i Item) AltText() string {
	if i.Category == "" {
		return fmt.Sprintf("Photo %d", i.ID)
	}
	return i.Category
}

// Catalog holds the two item sequences rendered on the page.
type Catalog struct {
	Carousel  []Item `yaml:"carousel"`
	Portraits []Item `yaml:"portraits"`
}

// Validate checks that IDs are unique within each collection and that
// every item has an image.
func (c *Catalog) Validate() error {
	if err := validateItems("carousel", c.Carousel); err != nil {
		return err
	}
	return validateItems("portraits", c.Portraits)
}

func validateItems(collection string, items []Item) error {
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%s: %w: %d", collection, ErrDuplicateID, item.ID)
		}
		seen[item.ID] = struct{}{}

		if item.ImageURL == "" {
			return fmt.Errorf("%s: %w: %d", collection, ErrMissingImage, item.ID)
		}
	}
	return nil
}

// DefaultCatalog returns the photos shipped with the page.
func DefaultCatalog() *Catalog {
	carousel := []Item{
		{ID: 1, Category: "Events"},
		{ID: 2, Category: "Contests"},
		{ID: 3, Category: "Events"},
		{ID: 4, Category: "Workshops"},
		{ID: 5, Category: "Contests"},
		{ID: 6, Category: "Events"},
	}
	for i := range carousel {
		carousel[i].ImageURL = fmt.Sprintf("https://picsum.photos/800/600?random=%d", carousel[i].ID)
	}

	portraits := make([]Item, 6)
	for i := range portraits {
		portraits[i] = Item{
			ID:       i + 1,
			ImageURL: fmt.Sprintf("https://picsum.photos/400/500?random=%d", i+10),
		}
	}

	return &Catalog{
		Carousel:  carousel,
		Portraits: portraits,
	}
}

package gallery

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	if len(c.Carousel) != 6 {
		t.Fatalf("Expected 6 carousel items, got %d", len(c.Carousel))
	}
	if len(c.Portraits) != 6 {
		t.Fatalf("Expected 6 portraits, got %d", len(c.Portraits))
	}

	categories := []string{"Events", "Contests", "Events", "Workshops", "Contests", "Events"}
	for i, item := range c.Carousel {
		if item.ID != i+1 {
			t.Errorf("Carousel item %d has ID %d", i, item.ID)
		}
		if item.Category != categories[i] {
			t.Errorf("Carousel item %d category = %q, want %q", i, item.Category, categories[i])
		}
		if !strings.HasPrefix(item.ImageURL, "https://picsum.photos/800/600?random=") {
			t.Errorf("Unexpected carousel image URL %q", item.ImageURL)
		}
	}

	if c.Portraits[0].ImageURL != "https://picsum.photos/400/500?random=10" {
		t.Errorf("Unexpected first portrait URL %q", c.Portraits[0].ImageURL)
	}
	if c.Portraits[5].ImageURL != "https://picsum.photos/400/500?random=15" {
		t.Errorf("Unexpected last portrait URL %q", c.Portraits[5].ImageURL)
	}

	if err := c.Validate(); err != nil {
		t.Errorf("Default catalog should be valid: %v", err)
	}
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr error
	}{
		{
			name:    "empty",
			catalog: Catalog{},
		},
		{
			name: "duplicate carousel id",
			catalog: Catalog{Carousel: []Item{
				{ID: 1, ImageURL: "a.jpg"},
				{ID: 1, ImageURL: "b.jpg"},
			}},
			wantErr: ErrDuplicateID,
		},
		{
			name: "same id in different collections",
			catalog: Catalog{
				Carousel:  []Item{{ID: 1, ImageURL: "a.jpg"}},
				Portraits: []Item{{ID: 1, ImageURL: "b.jpg"}},
			},
		},
		{
			name:    "missing image",
			catalog: Catalog{Portraits: []Item{{ID: 3}}},
			wantErr: ErrMissingImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestItem_AltText(t *testing.T) {
	if got := (Item{ID: 2, Category: "Contests"}).AltText(); got != "Contests" {
		t.Errorf("AltText() = %q, want Contests", got)
	}
	if got := (Item{ID: 4}).AltText(); got != "Photo 4" {
		t.Errorf("AltText() = %q, want %q", got, "Photo 4")
	}
}

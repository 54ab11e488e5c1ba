// Package catalog loads the photos shown on the gallery page.
package catalog

import (
	"bytes"
	"fmt"
	"os"

	"github.com/acmgallery/gallery/pkg/gallery"
	"gopkg.in/yaml.v3"
)

// Load returns the catalog at path, or the built-in photos when path is empty.
func Load(path string) (*gallery.Catalog, error) {
	if path == "" {
		return gallery.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog:
//
//	carousel:
//	  - id: 1
//	    category: Events
//	    image_url: https://picsum.photos/800/600?random=1
//	portraits:
//	  - id: 1
//	    image_url: https://picsum.photos/400/500?random=10
func Parse(data []byte) (*gallery.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c gallery.Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

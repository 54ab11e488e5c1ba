package main

import (
	"fmt"
	"io"
	"os"

	"github.com/acmgallery/gallery/internal/catalog"
	"github.com/acmgallery/gallery/internal/server"
	"github.com/acmgallery/gallery/pkg/gallery"
	"github.com/spf13/cobra"
)

var (
	renderOut          string
	renderPage         int
	renderFilter       string
	renderCatalog      string
	renderItemsPerPage int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a static HTML snapshot of the gallery",
	Long: `Renders the gallery page with the carousel on a given page and a
given filter highlighted. Navigation controls in the snapshot point at the
server routes.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "-", "output file (- for stdout)")
	renderCmd.Flags().IntVar(&renderPage, "page", 0, "carousel page index to show")
	renderCmd.Flags().StringVar(&renderFilter, "filter", string(gallery.FilterAll), "highlighted filter")
	renderCmd.Flags().StringVar(&renderCatalog, "catalog", "", "YAML catalog (default: built-in photos)")
	renderCmd.Flags().IntVar(&renderItemsPerPage, "items-per-page", gallery.ItemsPerPage, "carousel cards per page")
}

func runRender(cmd *cobra.Command, args []string) error {
	filter, err := gallery.ParseFilter(renderFilter)
	if err != nil {
		return err
	}

	photos, err := catalog.Load(renderCatalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if renderOut != "-" {
		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := server.RenderSnapshot(w, photos, renderItemsPerPage, renderPage, filter); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

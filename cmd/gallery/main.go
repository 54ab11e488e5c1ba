// Command gallery serves the photo gallery page or renders a static snapshot.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "gallery",
	Short:        "Photo gallery with a paginated carousel",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

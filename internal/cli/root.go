// Package cli implements the layout2md command surface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "layout2md",
	Short: "Convert structured layout descriptions to Markdown",
	Long: `layout2md converts a structured document-layout description (JSON pages
of typed content blocks) into a single self-contained Markdown document
with inline base64 image data.

Stage 1 renders the layout deterministically. The optional Stage 2
(--llm) reflows the result through an LLM provider.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "layout2md %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

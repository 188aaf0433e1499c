// Package cli provides the command-line interface for docket.
package cli

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideMarkdown string

var (
	glamourRenderer     *glamour.TermRenderer //nolint:gochecknoglobals // cached renderer for performance
	glamourRendererOnce sync.Once             //nolint:gochecknoglobals // sync.Once for renderer initialization
)

// getGlamourRenderer returns a cached glamour renderer for markdown rendering.
// The renderer is initialized once and reused across all calls.
func getGlamourRenderer() *glamour.TermRenderer {
	glamourRendererOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			glamourRenderer = r
		}
	})
	return glamourRenderer
}

// AddGuideCommand adds the guide command to the root command.
func AddGuideCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the usage guide",
		Long:  `Render the built-in usage guide as styled markdown in the terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGuide(os.Stdout)
		},
	}
	root.AddCommand(cmd)
}

// runGuide renders the embedded guide.
func runGuide(w io.Writer) error {
	renderer := getGlamourRenderer()
	if renderer == nil {
		// Renderer setup failed; fall back to the raw markdown.
		_, err := io.WriteString(w, guideMarkdown)
		return err
	}

	rendered, err := renderer.Render(guideMarkdown)
	if err != nil {
		return fmt.Errorf("failed to render guide: %w", err)
	}

	_, err = io.WriteString(w, rendered)
	return err
}

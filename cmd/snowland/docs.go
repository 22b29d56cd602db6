package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/snowland-wm/snowland/pkg/ui"
)

//go:embed docs.md
var docsMarkdown string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the snowland user guide",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(renderMarkdown(docsMarkdown))
	},
}

// renderMarkdown renders the guide with glamour on capable terminals
// and falls back to the raw markdown otherwise.
func renderMarkdown(content string) string {
	if ui.DetectFormat(os.Stdout) != ui.FormatTerminal {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

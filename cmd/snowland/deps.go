package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snowland-wm/snowland/pkg/depcheck"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/shell"
	"github.com/snowland-wm/snowland/pkg/ui"
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check that every required tool is installed",
	Long: `Check the system for the external tools snowland depends on and
report what is missing. Exits non-zero when anything is unsatisfied,
so it can gate scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := depcheck.Check(shell.NewRunner(), depcheck.Default())

		renderer := ui.NewRenderer(ui.Resolve(outputFormat(), os.Stdout))
		fmt.Println(renderer.RenderDepReport(result))

		if !result.OK() {
			return errors.New(errors.ErrDepMissing, "unsatisfied dependencies")
		}
		return nil
	},
}

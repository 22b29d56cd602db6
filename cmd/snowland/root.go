package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/snowland-wm/snowland/internal/version"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/ui"
)

var (
	verbosity  int
	formatFlag string

	rootCmd = &cobra.Command{
		Use:   "snowland",
		Short: "Installer for the snowland Hyprland desktop",
		Long: `snowland installs and maintains a complete Wayland desktop setup:
Hyprland, Waybar, fuzzel, mako, kitty and wlogout configs, plus the
fonts, GTK theme, icon theme and wallpaper that tie them together.

Existing configs are always backed up before being replaced.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. Called once from main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		renderer := ui.NewRenderer(ui.Resolve(outputFormat(), os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
	}
	return err
}

// outputFormat resolves the --format flag, treating bad values as auto.
func outputFormat() ui.Format {
	f, err := ui.ParseFormat(formatFlag)
	if err != nil {
		return ui.FormatAuto
	}
	return f
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "auto",
		"Output format: auto, term, text or json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(genconfigCmd)
	rootCmd.AddCommand(docsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("snowland version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/snowland-wm/snowland/pkg/assets"
	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/depcheck"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/filesystem"
	"github.com/snowland-wm/snowland/pkg/install"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/paths"
	"github.com/snowland-wm/snowland/pkg/prompt"
	"github.com/snowland-wm/snowland/pkg/shell"
	"github.com/snowland-wm/snowland/pkg/state"
	"github.com/snowland-wm/snowland/pkg/ui"
)

var (
	assumeDefaults bool
	sourceDir      string
)

func init() {
	installCmd.Flags().BoolVarP(&assumeDefaults, "yes", "y", false,
		"Take the default answer for every step instead of prompting")
	installCmd.Flags().StringVar(&sourceDir, "source", ".",
		"Directory containing the bundled configs/ tree")
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the snowland desktop",
	Long: `Run the interactive installer. Each part of the setup (configs,
fonts, GTK theme, icon theme, wallpaper) is one yes/no step.

On a first install every step defaults to yes; on later runs the
defaults flip to no so an update only touches what you ask it to.
Any config directory that would be replaced is first copied into a
timestamped folder under ~/snowland_backups.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInstall()
	},
}

func runInstall() error {
	logger := logging.GetLogger("cmd.install")

	p, err := paths.New()
	if err != nil {
		return err
	}
	cfg, err := config.Load(p)
	if err != nil {
		return err
	}

	runner := shell.NewRunner()
	fs := filesystem.NewOS()
	renderer := ui.NewRenderer(ui.Resolve(outputFormat(), os.Stdout))

	depResult := depcheck.Check(runner, depcheck.Default())
	fmt.Println(renderer.RenderDepReport(depResult))
	if !depResult.OK() {
		return errors.New(errors.ErrDepMissing, "install the missing tools and run snowland again")
	}

	st, err := state.Load(fs, p.StateFilePath())
	if err != nil {
		return err
	}
	logger.Info().Stringer("kind", st.Kind).Msg("Starting installer")

	asker := prompt.NewAsker()
	if assumeDefaults {
		asker = prompt.NewDefaultsAsker()
	}

	installer := assets.New(p, runner)
	installer.Escalate = cfg.Assets.EscalateIfOutsideHome

	steps := []prompt.Step{
		{
			Name:        "configs",
			Description: "Install the snowland configs (hypr, waybar, fuzzel, mako, kitty, wlogout)?",
			Run: func() error {
				result, err := install.InstallConfigs(install.Options{
					Items:     install.ItemsFromConfig(cfg.Install, p, sourceDir),
					BackupDir: p.BackupDir(),
				})
				if err != nil {
					return err
				}
				fmt.Println(renderer.RenderInstallSummary(result))
				return nil
			},
		},
		{
			Name:        "fonts",
			Description: "Install the JetBrains Mono Nerd fonts?",
			Run:         func() error { return installer.InstallFonts(cfg.Assets.Fonts) },
		},
		{
			Name:        "gtk-theme",
			Description: "Install the Nordic GTK theme?",
			Run:         func() error { return installer.InstallGtkTheme(cfg.Assets.GtkTheme) },
		},
		{
			Name:        "icon-theme",
			Description: "Install the Nordzy icon theme?",
			Run:         func() error { return installer.InstallIconTheme(cfg.Assets.IconTheme) },
		},
		{
			Name:        "wallpaper",
			Description: "Install the snowland wallpaper?",
			Run:         func() error { return installer.InstallWallpaper(cfg.Assets.Wallpaper) },
		},
	}

	if err := prompt.RunSteps(steps, st.Kind, asker); err != nil {
		return err
	}

	if err := st.Persist(fs, time.Now()); err != nil {
		return err
	}
	logger.Info().Str("state", st.Path()).Msg("Install finished")
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/paths"
)

var genconfigForce bool

func init() {
	genconfigCmd.Flags().BoolVar(&genconfigForce, "force", false,
		"Overwrite an existing config file")
}

var genconfigCmd = &cobra.Command{
	Use:   "genconfig",
	Short: "Write the effective configuration to the user config file",
	Long: `Write the current effective configuration (defaults merged with any
existing overrides) to ~/.config/snowland/snowland.toml so it can be
edited. Refuses to overwrite an existing file unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := paths.New()
		if err != nil {
			return err
		}

		cfg, err := config.Load(p)
		if err != nil {
			return err
		}

		target := p.UserConfigFile()
		if !genconfigForce {
			if _, err := os.Stat(target); err == nil {
				return errors.Newf(errors.ErrInvalidInput,
					"%s already exists; use --force to overwrite", target)
			}
		}

		if err := config.WriteConfig(cfg, target); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", target)
		return nil
	},
}

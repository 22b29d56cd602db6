// snowland-menu shows the Waybar drop-down menu once and dispatches
// the chosen action. Dismissing the picker is a silent no-op.
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/menu"
	"github.com/snowland-wm/snowland/pkg/paths"
	"github.com/snowland-wm/snowland/pkg/shell"
)

func main() {
	logging.SetupLogger(0)

	p, err := paths.New()
	if err != nil {
		log.Error().Err(err).Msg("Cannot resolve home directory")
		os.Exit(1)
	}

	cfg, err := config.Load(p)
	if err != nil {
		log.Error().Err(err).Msg("Cannot load configuration")
		os.Exit(1)
	}

	m := menu.New(shell.NewRunner(), cfg.Menu, p)
	if err := m.Show(); err != nil {
		log.Error().Err(err).Msg("Menu action failed")
		os.Exit(1)
	}
}

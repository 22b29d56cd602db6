// snowland-updates prints the pending package update count as a Waybar
// custom-module JSON payload. It always exits zero with a renderable
// payload; a broken update tool shows up in the bar instead of
// breaking it.
package main

import (
	"fmt"
	"os"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/paths"
	"github.com/snowland-wm/snowland/pkg/shell"
	"github.com/snowland-wm/snowland/pkg/updates"
)

func main() {
	logging.SetupLogger(0)

	payload := check()
	data, err := payload.JSON()
	if err != nil {
		// keep Waybar alive no matter what
		fmt.Println(`{"text":"!","tooltip":"snowland-updates failed","class":"error"}`)
		os.Exit(0)
	}
	fmt.Println(string(data))
}

func check() updates.Payload {
	cfg := config.UpdatesConfig{Primary: "checkupdates", AurHelpers: []string{"yay", "paru"}}

	if p, err := paths.New(); err == nil {
		if loaded, err := config.Load(p); err == nil {
			cfg = loaded.Updates
		}
	}

	return updates.NewChecker(shell.NewRunner(), cfg).Check()
}

// Package updates counts pending pacman and AUR package updates and
// renders the result as a Waybar custom-module JSON payload.
package updates

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/shell"
	"github.com/snowland-wm/snowland/pkg/types"
)

// Waybar CSS classes attached to the payload.
const (
	ClassNone    = "none"
	ClassPending = "pending"
	ClassError   = "error"
)

// Payload is the JSON object Waybar expects from a custom module.
type Payload struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// JSON renders the payload as a single line for Waybar.
func (p Payload) JSON() ([]byte, error) {
	return json.Marshal(p)
}

// Checker queries the update tools configured for this system.
type Checker struct {
	Runner types.CommandRunner
	Config config.UpdatesConfig
}

// NewChecker creates a Checker using the given runner and configuration.
func NewChecker(runner types.CommandRunner, cfg config.UpdatesConfig) *Checker {
	return &Checker{Runner: runner, Config: cfg}
}

// Check counts pending updates. It always returns a renderable payload;
// a missing or failing update tool yields an error-class payload naming
// the tool rather than a crash.
func (c *Checker) Check() Payload {
	logger := logging.GetLogger("updates")

	official, err := c.countOfficial()
	if err != nil {
		logger.Error().Err(err).Msg("Update check failed")
		return Payload{
			Text:    "!",
			Tooltip: err.Error(),
			Class:   ClassError,
		}
	}

	aur := c.countAUR()
	total := official + aur

	if total == 0 {
		return Payload{Tooltip: "System is up to date", Class: ClassNone}
	}

	return Payload{
		Text:    fmt.Sprintf("%d", total),
		Tooltip: fmt.Sprintf("Official: %d\nAUR: %d", official, aur),
		Class:   ClassPending,
	}
}

// countOfficial runs the primary checker (checkupdates). Exit code 2
// means no updates are pending; exit code 1 is a real failure.
func (c *Checker) countOfficial() (int, error) {
	primary := c.Config.Primary
	if _, err := c.Runner.LookPath(primary); err != nil {
		return 0, fmt.Errorf("%s is not installed", primary)
	}

	out, err := c.Runner.Output(primary)
	if err != nil {
		if shell.ExitCode(err) == 2 {
			return 0, nil
		}
		return 0, fmt.Errorf("%s failed: %w", primary, err)
	}
	return countLines(out), nil
}

// countAUR uses the first available AUR helper. No helper, or a helper
// failure, counts as zero; AUR updates are a bonus, not a requirement.
func (c *Checker) countAUR() int {
	logger := logging.GetLogger("updates")

	for _, helper := range c.Config.AurHelpers {
		if _, err := c.Runner.LookPath(helper); err != nil {
			continue
		}
		out, err := c.Runner.Output(helper, "-Qua")
		if err != nil {
			logger.Warn().Str("helper", helper).Err(err).Msg("AUR update check failed")
			return 0
		}
		return countLines(out)
	}
	return 0
}

func countLines(out []byte) int {
	count := 0
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

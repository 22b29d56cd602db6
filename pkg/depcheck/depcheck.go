// Package depcheck verifies that the external tools snowland relies on
// are installed before any filesystem mutation happens.
package depcheck

import (
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/types"
)

// Requirement is a single external command snowland needs.
type Requirement struct {
	// Command is the executable looked up on PATH.
	Command string
	// Package is the distribution package providing the command,
	// shown as a remediation hint.
	Package string
}

// Group is a set of alternatives where any one member is sufficient,
// e.g. a Bluetooth manager: blueman-manager or blueberry.
type Group struct {
	Name    string
	Any     []Requirement
	Purpose string
}

// Requirements is the full dependency set checked before installation.
type Requirements struct {
	Tools  []Requirement
	Groups []Group
}

// Result lists every unsatisfied requirement.
type Result struct {
	MissingTools  []Requirement
	MissingGroups []Group
}

// OK reports whether every requirement is satisfied.
func (r Result) OK() bool {
	return len(r.MissingTools) == 0 && len(r.MissingGroups) == 0
}

// Default returns the fixed dependency set of the snowland desktop.
func Default() Requirements {
	return Requirements{
		Tools: []Requirement{
			{Command: "Hyprland", Package: "hyprland"},
			{Command: "waybar", Package: "waybar"},
			{Command: "mako", Package: "mako"},
			{Command: "kitty", Package: "kitty"},
			{Command: "wlogout", Package: "wlogout"},
			{Command: "grim", Package: "grim"},
			{Command: "slurp", Package: "slurp"},
			{Command: "wl-copy", Package: "wl-clipboard"},
			{Command: "notify-send", Package: "libnotify"},
			{Command: "pavucontrol", Package: "pavucontrol"},
		},
		Groups: []Group{
			{
				Name:    "launcher",
				Purpose: "application launcher / menu picker",
				Any: []Requirement{
					{Command: "fuzzel", Package: "fuzzel"},
					{Command: "wofi", Package: "wofi"},
				},
			},
			{
				Name:    "bluetooth manager",
				Purpose: "Bluetooth device management from the bar menu",
				Any: []Requirement{
					{Command: "blueman-manager", Package: "blueman"},
					{Command: "blueberry", Package: "blueberry"},
				},
			},
		},
	}
}

// Check looks up every requirement on PATH and returns the unsatisfied ones.
// It performs no side effects beyond PATH lookups.
func Check(runner types.CommandRunner, req Requirements) Result {
	logger := logging.GetLogger("depcheck")
	var result Result

	for _, tool := range req.Tools {
		if _, err := runner.LookPath(tool.Command); err != nil {
			logger.Debug().Str("command", tool.Command).Msg("Required tool missing")
			result.MissingTools = append(result.MissingTools, tool)
		}
	}

	for _, group := range req.Groups {
		satisfied := false
		for _, alt := range group.Any {
			if _, err := runner.LookPath(alt.Command); err == nil {
				satisfied = true
				break
			}
		}
		if !satisfied {
			logger.Debug().Str("group", group.Name).Msg("Unsatisfied alternative group")
			result.MissingGroups = append(result.MissingGroups, group)
		}
	}

	return result
}

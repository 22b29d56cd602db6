package menu

import (
	"strings"

	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/types"
)

// Picker presents options and returns the chosen one. An error means
// the picker was dismissed or unavailable.
type Picker interface {
	Pick(options []string) (string, error)
}

// dmenuPicker drives the first available dmenu-capable picker
// (fuzzel, wofi) with newline-separated options on stdin.
type dmenuPicker struct {
	runner  types.CommandRunner
	pickers []string
}

// NewDmenuPicker creates a Picker that falls back through the given
// picker commands in order.
func NewDmenuPicker(runner types.CommandRunner, pickers []string) Picker {
	return &dmenuPicker{runner: runner, pickers: pickers}
}

func (d *dmenuPicker) Pick(options []string) (string, error) {
	name := ""
	for _, candidate := range d.pickers {
		if _, err := d.runner.LookPath(candidate); err == nil {
			name = candidate
			break
		}
	}
	if name == "" {
		return "", errors.Newf(errors.ErrDepMissing, "no picker available; install one of %s",
			strings.Join(d.pickers, ", "))
	}

	input := strings.Join(options, "\n") + "\n"
	out, err := d.runner.OutputWithInput(name, input, "--dmenu")
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "%s failed", name)
	}
	return strings.TrimSpace(string(out)), nil
}

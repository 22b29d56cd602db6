// Package menu implements the Waybar drop-down menu: a fixed list of
// desktop actions presented through a dmenu-style picker. Cancelling
// the picker, or a selection that matches nothing, is a silent no-op.
package menu

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/paths"
	"github.com/snowland-wm/snowland/pkg/types"
)

// Menu labels, in presentation order.
const (
	LabelScreenshotRegion = "Screenshot (region)"
	LabelScreenshotFull   = "Screenshot (full)"
	LabelLauncher         = "App launcher"
	LabelVolume           = "Volume mixer"
	LabelBluetooth        = "Bluetooth"
	LabelPower            = "Power menu"
)

// Menu dispatches picker selections to desktop actions.
type Menu struct {
	Runner types.CommandRunner
	Picker Picker
	Config config.MenuConfig
	Paths  paths.Paths
	// Now stamps screenshot filenames; nil means time.Now.
	Now func() time.Time
}

// New creates a Menu using a dmenu-style picker resolved from the
// configured picker list.
func New(runner types.CommandRunner, cfg config.MenuConfig, p paths.Paths) *Menu {
	return &Menu{
		Runner: runner,
		Picker: NewDmenuPicker(runner, cfg.Pickers),
		Config: cfg,
		Paths:  p,
	}
}

// Show presents the menu once and runs the chosen action.
func (m *Menu) Show() error {
	labels := []string{
		LabelScreenshotRegion,
		LabelScreenshotFull,
		LabelLauncher,
		LabelVolume,
		LabelBluetooth,
		LabelPower,
	}

	selection, err := m.Picker.Pick(labels)
	if err != nil {
		// picker dismissed; nothing to do
		logger := logging.GetLogger("menu")
		logger.Debug().Err(err).Msg("Picker returned no selection")
		return nil
	}

	switch selection {
	case LabelScreenshotRegion:
		return m.screenshotRegion()
	case LabelScreenshotFull:
		return m.screenshotFull()
	case LabelLauncher:
		return m.launcher()
	case LabelVolume:
		return m.Runner.Run("pavucontrol")
	case LabelBluetooth:
		return m.bluetooth()
	case LabelPower:
		return m.Runner.Run("wlogout")
	default:
		return nil
	}
}

// screenshotFile builds the timestamped destination inside the
// configured screenshot directory, creating it as needed.
func (m *Menu) screenshotFile() (string, error) {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	dir := paths.ExpandHome(m.Config.ScreenshotDir, m.Paths.Home())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
	}
	name := fmt.Sprintf("screenshot_%s.png", now().Format("20060102-150405"))
	return filepath.Join(dir, name), nil
}

func (m *Menu) screenshotRegion() error {
	out, err := m.Runner.Output("slurp")
	if err != nil {
		// region selection cancelled
		return nil
	}
	region := strings.TrimSpace(string(out))
	if region == "" {
		return nil
	}

	file, err := m.screenshotFile()
	if err != nil {
		return err
	}
	if err := m.Runner.Run("grim", "-g", region, file); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "grim failed")
	}
	return m.afterScreenshot(file)
}

func (m *Menu) screenshotFull() error {
	file, err := m.screenshotFile()
	if err != nil {
		return err
	}
	if err := m.Runner.Run("grim", file); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "grim failed")
	}
	return m.afterScreenshot(file)
}

// afterScreenshot copies the image to the clipboard and notifies.
// wl-copy reads from stdin, so it goes through the shell.
func (m *Menu) afterScreenshot(file string) error {
	logger := logging.GetLogger("menu")

	copyCmd := fmt.Sprintf("wl-copy --type image/png < %s", shellquote.Join(file))
	if err := m.Runner.Run("sh", "-c", copyCmd); err != nil {
		logger.Warn().Err(err).Msg("Could not copy screenshot to clipboard")
	}
	if err := m.Runner.Run("notify-send", "Screenshot saved", file); err != nil {
		logger.Warn().Err(err).Msg("Could not send notification")
	}

	logger.Info().Str("file", file).Msg("Screenshot taken")
	return nil
}

func (m *Menu) launcher() error {
	for _, picker := range m.Config.Pickers {
		if _, err := m.Runner.LookPath(picker); err == nil {
			return m.Runner.Run(picker)
		}
	}
	return errors.Newf(errors.ErrDepMissing, "no launcher available; install one of %s",
		strings.Join(m.Config.Pickers, ", "))
}

// bluetooth opens the first installed bluetooth manager, or notifies
// that none is available.
func (m *Menu) bluetooth() error {
	for _, manager := range []string{"blueman-manager", "blueberry"} {
		if _, err := m.Runner.LookPath(manager); err == nil {
			return m.Runner.Run(manager)
		}
	}
	return m.Runner.Run("notify-send", "Bluetooth", "No bluetooth manager installed")
}

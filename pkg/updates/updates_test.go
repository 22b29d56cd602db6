package updates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowland-wm/snowland/pkg/config"
	"github.com/snowland-wm/snowland/pkg/testutil"
)

// exitErr mimics a process exit status for the fake runner.
type exitErr int

func (e exitErr) Error() string { return "exit status" }
func (e exitErr) ExitCode() int { return int(e) }

func cfg() config.UpdatesConfig {
	return config.UpdatesConfig{
		Primary:    "checkupdates",
		AurHelpers: []string{"yay", "paru"},
	}
}

func TestCheckNoUpdates(t *testing.T) {
	runner := testutil.NewFakeRunner("checkupdates", "yay")
	// checkupdates signals "nothing pending" via exit code 2
	runner.Errors["checkupdates"] = exitErr(2)
	runner.Outputs["yay -Qua"] = ""

	p := NewChecker(runner, cfg()).Check()
	assert.Empty(t, p.Text, "an idle bar module renders no text")
	assert.Equal(t, ClassNone, p.Class)
	assert.Equal(t, "System is up to date", p.Tooltip)
}

func TestCheckCountsBothSources(t *testing.T) {
	runner := testutil.NewFakeRunner("checkupdates", "paru")
	runner.Outputs["checkupdates"] = "linux 6.9-1 -> 6.9-2\nmesa 24.0-1 -> 24.1-1\nwaybar 0.10-1 -> 0.10-2\n"
	runner.Outputs["paru -Qua"] = "hyprpaper-git r100 -> r101\nwlogout 1.2-1 -> 1.2-2\n"

	p := NewChecker(runner, cfg()).Check()
	assert.Equal(t, "5", p.Text)
	assert.Equal(t, "Official: 3\nAUR: 2", p.Tooltip)
	assert.Equal(t, ClassPending, p.Class)
}

func TestCheckPrefersFirstAvailableHelper(t *testing.T) {
	runner := testutil.NewFakeRunner("checkupdates", "yay", "paru")
	runner.Outputs["checkupdates"] = "linux 6.9-1 -> 6.9-2\n"
	runner.Outputs["yay -Qua"] = "a 1 -> 2\n"
	runner.Outputs["paru -Qua"] = "b 1 -> 2\nc 1 -> 2\n"

	p := NewChecker(runner, cfg()).Check()
	assert.Equal(t, "2", p.Text)
	assert.Equal(t, "Official: 1\nAUR: 1", p.Tooltip)
}

func TestCheckMissingPrimaryTool(t *testing.T) {
	runner := testutil.NewFakeRunner("yay")

	p := NewChecker(runner, cfg()).Check()
	assert.Equal(t, "!", p.Text)
	assert.Equal(t, ClassError, p.Class)
	assert.Contains(t, p.Tooltip, "checkupdates")
}

func TestCheckPrimaryFailure(t *testing.T) {
	runner := testutil.NewFakeRunner("checkupdates")
	runner.Errors["checkupdates"] = exitErr(1)

	p := NewChecker(runner, cfg()).Check()
	assert.Equal(t, ClassError, p.Class)
	assert.Contains(t, p.Tooltip, "checkupdates")
}

func TestCheckAURFailureCountsZero(t *testing.T) {
	runner := testutil.NewFakeRunner("checkupdates", "yay")
	runner.Outputs["checkupdates"] = "linux 6.9-1 -> 6.9-2\n"
	runner.Errors["yay -Qua"] = exitErr(1)

	p := NewChecker(runner, cfg()).Check()
	assert.Equal(t, "1", p.Text)
	assert.Equal(t, "Official: 1\nAUR: 0", p.Tooltip)
}

func TestCheckNoAURHelperInstalled(t *testing.T) {
	runner := testutil.NewFakeRunner("checkupdates")
	runner.Outputs["checkupdates"] = "linux 6.9-1 -> 6.9-2\n"

	p := NewChecker(runner, cfg()).Check()
	assert.Equal(t, "1", p.Text)
	assert.Equal(t, "Official: 1\nAUR: 0", p.Tooltip)
}

func TestPayloadJSON(t *testing.T) {
	p := Payload{Text: "5", Tooltip: "Official: 3\nAUR: 2", Class: ClassPending}
	data, err := p.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"5","tooltip":"Official: 3\nAUR: 2","class":"pending"}`, string(data))
}

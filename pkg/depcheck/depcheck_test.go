package depcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snowland-wm/snowland/pkg/testutil"
)

func allDefaultCommands() []string {
	var cmds []string
	req := Default()
	for _, tool := range req.Tools {
		cmds = append(cmds, tool.Command)
	}
	for _, group := range req.Groups {
		cmds = append(cmds, group.Any[0].Command)
	}
	return cmds
}

func TestCheckAllPresent(t *testing.T) {
	runner := testutil.NewFakeRunner(allDefaultCommands()...)

	result := Check(runner, Default())

	assert.True(t, result.OK())
	assert.Empty(t, result.MissingTools)
	assert.Empty(t, result.MissingGroups)
}

func TestCheckMissingTool(t *testing.T) {
	runner := testutil.NewFakeRunner(allDefaultCommands()...)
	delete(runner.Available, "waybar")
	delete(runner.Available, "grim")

	result := Check(runner, Default())

	assert.False(t, result.OK())
	var missing []string
	for _, tool := range result.MissingTools {
		missing = append(missing, tool.Command)
	}
	assert.ElementsMatch(t, []string{"waybar", "grim"}, missing)
	assert.Empty(t, result.MissingGroups)
}

func TestCheckGroupAlternativeSatisfies(t *testing.T) {
	runner := testutil.NewFakeRunner(allDefaultCommands()...)
	// Drop fuzzel but provide wofi: the launcher group stays satisfied
	delete(runner.Available, "fuzzel")
	runner.Available["wofi"] = true

	result := Check(runner, Default())

	assert.True(t, result.OK())
}

func TestCheckUnsatisfiedGroup(t *testing.T) {
	runner := testutil.NewFakeRunner(allDefaultCommands()...)
	delete(runner.Available, "blueman-manager")

	result := Check(runner, Default())

	assert.False(t, result.OK())
	assert.Len(t, result.MissingGroups, 1)
	assert.Equal(t, "bluetooth manager", result.MissingGroups[0].Name)
}

func TestCheckNothingInstalled(t *testing.T) {
	runner := testutil.NewFakeRunner()

	req := Default()
	result := Check(runner, req)

	assert.Len(t, result.MissingTools, len(req.Tools))
	assert.Len(t, result.MissingGroups, len(req.Groups))
}

package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snowland-wm/snowland/pkg/types"
)

// scriptedAsker records the defaults it was offered and plays back answers
type scriptedAsker struct {
	answers  []bool
	defaults []bool
	err      error
}

func (s *scriptedAsker) Confirm(_ string, def bool) (bool, error) {
	s.defaults = append(s.defaults, def)
	if s.err != nil {
		return false, s.err
	}
	if len(s.answers) == 0 {
		return def, nil
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func countingSteps(ran *[]string, names ...string) []Step {
	var steps []Step
	for _, name := range names {
		name := name
		steps = append(steps, Step{
			Name:        name,
			Description: "Install " + name + "?",
			Run: func() error {
				*ran = append(*ran, name)
				return nil
			},
		})
	}
	return steps
}

func TestFirstRunDefaultsYes(t *testing.T) {
	var ran []string
	asker := &scriptedAsker{} // empty input: every answer takes the default

	err := RunSteps(countingSteps(&ran, "configs", "fonts", "theme"), types.FirstRun, asker)
	require.NoError(t, err)

	assert.Equal(t, []string{"configs", "fonts", "theme"}, ran)
	assert.Equal(t, []bool{true, true, true}, asker.defaults)
}

func TestSubsequentRunDefaultsNo(t *testing.T) {
	var ran []string
	asker := &scriptedAsker{}

	err := RunSteps(countingSteps(&ran, "configs", "fonts"), types.SubsequentRun, asker)
	require.NoError(t, err)

	assert.Empty(t, ran)
	assert.Equal(t, []bool{false, false}, asker.defaults)
}

func TestExplicitAnswersOverrideDefaults(t *testing.T) {
	var ran []string
	asker := &scriptedAsker{answers: []bool{false, true}}

	err := RunSteps(countingSteps(&ran, "configs", "fonts"), types.FirstRun, asker)
	require.NoError(t, err)

	assert.Equal(t, []string{"fonts"}, ran)
}

func TestStepErrorHaltsFlow(t *testing.T) {
	var ran []string
	steps := countingSteps(&ran, "configs")
	steps = append(steps, Step{
		Name:        "fonts",
		Description: "Install fonts?",
		Run:         func() error { return errors.New("archive missing expected path") },
	})
	steps = append(steps, countingSteps(&ran, "theme")...)

	err := RunSteps(steps, types.FirstRun, &scriptedAsker{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step fonts")
	// The failing step halts the flow; earlier work stands, later steps don't run
	assert.Equal(t, []string{"configs"}, ran)
}

func TestPromptErrorPropagates(t *testing.T) {
	var ran []string
	asker := &scriptedAsker{err: errors.New("interrupt")}

	err := RunSteps(countingSteps(&ran, "configs"), types.FirstRun, asker)
	require.Error(t, err)
	assert.Empty(t, ran)
}

func TestNewDefaultsAsker(t *testing.T) {
	asker := NewDefaultsAsker()

	yes, err := asker.Confirm("anything", true)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := asker.Confirm("anything", false)
	require.NoError(t, err)
	assert.False(t, no)
}

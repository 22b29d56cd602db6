// Package prompt drives the interactive yes/no step flow of the installer.
//
// Every optional step is one entry in a uniform list; the default answer
// comes from the run kind (first run: yes, update run: no) so the two
// code paths cannot drift apart.
package prompt

import (
	"fmt"
	"os"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/types"
)

// Step is one optional installer step.
type Step struct {
	// Name is the short identifier shown in logs.
	Name string
	// Description is the question shown to the user.
	Description string
	// Run performs the step. A returned error halts the whole flow;
	// previously completed steps are not rolled back.
	Run func() error
}

// Asker answers yes/no questions. Tests inject a scripted implementation.
type Asker interface {
	Confirm(message string, def bool) (bool, error)
}

// surveyAsker prompts on the terminal via survey
type surveyAsker struct{}

func (surveyAsker) Confirm(message string, def bool) (bool, error) {
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

// defaultsAsker takes the default answer without prompting
type defaultsAsker struct{}

func (defaultsAsker) Confirm(_ string, def bool) (bool, error) {
	return def, nil
}

// NewAsker returns a terminal-backed Asker, or one that silently takes
// the defaults when stdin is not a TTY.
func NewAsker() Asker {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return surveyAsker{}
	}
	return defaultsAsker{}
}

// NewDefaultsAsker returns an Asker that always takes the default answer.
func NewDefaultsAsker() Asker {
	return defaultsAsker{}
}

// RunSteps walks the step list in order, asking before each one. A
// declined step is skipped; a failed step halts the flow with its error.
func RunSteps(steps []Step, kind types.RunKind, asker Asker) error {
	logger := logging.GetLogger("prompt")
	def := kind.DefaultAnswer()

	for _, step := range steps {
		ok, err := asker.Confirm(step.Description, def)
		if err != nil {
			return fmt.Errorf("prompt for %s: %w", step.Name, err)
		}
		if !ok {
			logger.Info().Str("step", step.Name).Msg("Step declined")
			continue
		}

		logger.Info().Str("step", step.Name).Msg("Running step")
		if err := step.Run(); err != nil {
			return fmt.Errorf("step %s: %w", step.Name, err)
		}
	}

	return nil
}

package testutil

import (
	"fmt"
	"strings"
)

// Call records one command invocation made through a FakeRunner.
type Call struct {
	Name string
	Args []string
	// Stdin holds the input passed to OutputWithInput, empty otherwise.
	Stdin string
}

// FakeRunner is a scriptable types.CommandRunner for tests.
type FakeRunner struct {
	// Available lists commands that LookPath resolves.
	Available map[string]bool
	// Outputs maps "name arg1 arg2" to the stdout Output returns.
	Outputs map[string]string
	// Errors maps "name arg1 arg2" to the error Run/Output return.
	Errors map[string]error
	// Calls records every Run and Output invocation in order.
	Calls []Call
}

// NewFakeRunner creates a FakeRunner where the given commands are on PATH.
func NewFakeRunner(available ...string) *FakeRunner {
	avail := make(map[string]bool, len(available))
	for _, name := range available {
		avail[name] = true
	}
	return &FakeRunner{
		Available: avail,
		Outputs:   make(map[string]string),
		Errors:    make(map[string]error),
	}
}

func key(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

func (f *FakeRunner) LookPath(name string) (string, error) {
	if f.Available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
}

func (f *FakeRunner) Run(name string, args ...string) error {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
	return f.Errors[key(name, args)]
}

func (f *FakeRunner) Output(name string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
	k := key(name, args)
	if err := f.Errors[k]; err != nil {
		return []byte(f.Outputs[k]), err
	}
	return []byte(f.Outputs[k]), nil
}

func (f *FakeRunner) OutputWithInput(name string, stdin string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args, Stdin: stdin})
	k := key(name, args)
	if err := f.Errors[k]; err != nil {
		return []byte(f.Outputs[k]), err
	}
	return []byte(f.Outputs[k]), nil
}

// CalledWith reports whether a command with the given name was invoked.
func (f *FakeRunner) CalledWith(name string) bool {
	for _, c := range f.Calls {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Package types holds the shared types used across snowland packages.
package types

import "io/fs"

// FS abstracts the filesystem operations the installer performs so that
// commands can run against an injected filesystem in tests.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// CommandRunner abstracts external tool invocation. Every external tool
// (picker, screenshot, notifier, update query) goes through this seam.
type CommandRunner interface {
	// LookPath reports the absolute path of an executable, or an error if
	// it is not on PATH.
	LookPath(name string) (string, error)
	// Run executes a command to completion, inheriting stdio.
	Run(name string, args ...string) error
	// Output executes a command to completion and returns its stdout.
	Output(name string, args ...string) ([]byte, error)
	// OutputWithInput executes a command with the given stdin and
	// returns its stdout. Used for dmenu-style pickers.
	OutputWithInput(name string, stdin string, args ...string) ([]byte, error)
}

// InstallItem is one named configuration directory managed by the installer.
type InstallItem struct {
	// Name of the config directory, e.g. "waybar"
	Name string
	// Source is the bundled config directory
	Source string
	// Dest is the live location, usually ~/.config/<name>
	Dest string
}

// ItemStatus describes the outcome of installing a single item.
type ItemStatus string

const (
	// ItemInstalled means the bundled source now lives at the destination.
	ItemInstalled ItemStatus = "installed"
	// ItemSkipped means the bundled source was missing and the item was left alone.
	ItemSkipped ItemStatus = "skipped"
)

// ItemResult records what happened to one InstallItem.
type ItemResult struct {
	Item       InstallItem
	Status     ItemStatus
	BackupPath string // empty when the destination did not pre-exist
}

// InstallResult is the outcome of one config-install run.
type InstallResult struct {
	// BackupRoot is the timestamped directory holding pre-run copies.
	// Empty when no destination pre-existed.
	BackupRoot string
	Items      []ItemResult
}

// RunKind distinguishes a fresh install from an update run. It only
// changes prompt defaults, never step behavior.
type RunKind int

const (
	// FirstRun means no state file existed at startup; optional steps default to yes.
	FirstRun RunKind = iota
	// SubsequentRun means the state file existed; optional steps default to no.
	SubsequentRun
)

func (k RunKind) String() string {
	if k == FirstRun {
		return "first-run"
	}
	return "subsequent-run"
}

// DefaultAnswer reports the default for optional-step prompts under this run kind.
func (k RunKind) DefaultAnswer() bool {
	return k == FirstRun
}

// Package state persists the install-state marker file.
//
// The file's presence is the only signal distinguishing a fresh install
// from an update run; its content is line-oriented key=value pairs:
// first_install_at is written once, last_run_at appended on every run.
package state

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/snowland-wm/snowland/pkg/errors"
	"github.com/snowland-wm/snowland/pkg/logging"
	"github.com/snowland-wm/snowland/pkg/types"
)

// State file keys
const (
	KeyFirstInstallAt = "first_install_at"
	KeyLastRunAt      = "last_run_at"

	// TimeLayout is the timestamp format used in the state file
	TimeLayout = time.RFC3339
)

// State is the loaded install-state with a defined load/persist lifecycle:
// load at process start, persist once at the end of a successful run.
type State struct {
	// Kind is FirstRun when no state file existed at load time.
	Kind types.RunKind
	// FirstInstallAt is zero on a first run until Persist is called.
	FirstInstallAt time.Time
	// LastRunAt is the previous run's timestamp, zero on a first run.
	LastRunAt time.Time

	path string
}

// Load reads the state file at path. A missing file is not an error:
// it yields a FirstRun state.
func Load(fs types.FS, path string) (*State, error) {
	logger := logging.GetLogger("state")
	s := &State{Kind: types.FirstRun, path: path}

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No state file, treating as first run")
			return s, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStateRead, "failed to read state file %s", path)
	}

	s.Kind = types.SubsequentRun
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		ts, err := time.Parse(TimeLayout, strings.TrimSpace(value))
		if err != nil {
			// Unparsable values don't invalidate the run-kind signal
			logger.Warn().Str("line", line).Msg("Ignoring malformed state entry")
			continue
		}
		switch strings.TrimSpace(key) {
		case KeyFirstInstallAt:
			s.FirstInstallAt = ts
		case KeyLastRunAt:
			// last occurrence wins: the file is append-only
			s.LastRunAt = ts
		}
	}

	return s, nil
}

// Persist records the current run in the state file. On a first run it
// creates the file with first_install_at and last_run_at; on subsequent
// runs it appends a last_run_at line.
func (s *State) Persist(fs types.FS, now time.Time) error {
	if err := fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create state directory for %s", s.path)
	}

	stamp := now.Format(TimeLayout)
	var content string
	if s.Kind == types.FirstRun {
		content = KeyFirstInstallAt + "=" + stamp + "\n" + KeyLastRunAt + "=" + stamp + "\n"
		s.FirstInstallAt = now
	} else {
		existing, err := fs.ReadFile(s.path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrStateRead, "failed to re-read state file %s", s.path)
		}
		content = string(existing)
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += KeyLastRunAt + "=" + stamp + "\n"
	}

	if err := fs.WriteFile(s.path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStateWrite, "failed to write state file %s", s.path)
	}

	s.LastRunAt = now
	return nil
}

// Path returns the state file location this State was loaded from.
func (s *State) Path() string {
	return s.path
}

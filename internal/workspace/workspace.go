// Package workspace maps canonical repository identifiers to destination
// directories under the configured download root and classifies what
// currently occupies them.
package workspace

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kirksw/gc/internal/repo"
)

var ErrNoRoot = errors.New("no download root configured")

// State describes what occupies a destination path at planning time. It is
// computed once per invocation; the path can still change underneath us
// before the clone runs, and the clone's own failure reporting covers that.
type State int

const (
	// StateAbsent means nothing exists at the path.
	StateAbsent State = iota
	// StateEmpty means an empty directory exists at the path.
	StateEmpty
	// StateNonEmpty means the path is occupied by a non-empty directory or
	// by a non-directory entry, and overwriting requires confirmation.
	StateNonEmpty
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateEmpty:
		return "empty"
	case StateNonEmpty:
		return "non-empty"
	}
	return "unknown"
}

// Target is a planned clone destination.
type Target struct {
	ID    repo.Identifier
	Path  string
	State State

	// IsDir reports whether the occupying entry is a directory. Only
	// meaningful when State is not StateAbsent; a false value means
	// overwriting removes a file, not a directory tree.
	IsDir bool
}

// Plan computes the absolute root/github.com/owner/repo path and classifies
// its current state.
// It never mutates the filesystem; Prepare and Clear do that, and only the
// caller decides whether they run.
func Plan(id repo.Identifier, root string) (Target, error) {
	if root == "" {
		return Target{}, fmt.Errorf("%w: set $GC_DOWNLOAD_PATH or $GOPATH", ErrNoRoot)
	}

	path, err := filepath.Abs(filepath.Join(root, repo.Host, id.Owner, id.Repo))
	if err != nil {
		return Target{}, fmt.Errorf("cannot resolve %s: %w", root, err)
	}

	target := Target{
		ID:   id,
		Path: path,
	}

	info, err := os.Stat(target.Path)
	if os.IsNotExist(err) {
		target.State = StateAbsent
		return target, nil
	}
	if err != nil {
		return Target{}, fmt.Errorf("cannot inspect %s: %w", target.Path, err)
	}

	if !info.IsDir() {
		target.State = StateNonEmpty
		return target, nil
	}
	target.IsDir = true

	empty, err := isEmptyDir(target.Path)
	if err != nil {
		return Target{}, fmt.Errorf("cannot inspect %s: %w", target.Path, err)
	}
	if empty {
		target.State = StateEmpty
	} else {
		target.State = StateNonEmpty
	}
	return target, nil
}

func isEmptyDir(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// Prepare creates the destination directory and any missing parents.
func Prepare(target Target) error {
	if err := os.MkdirAll(target.Path, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", target.Path, err)
	}
	return nil
}

// Clear removes whatever occupies the destination and recreates it as an
// empty directory. Callers must gate this behind an explicit confirmation.
func Clear(target Target) error {
	if err := os.RemoveAll(target.Path); err != nil {
		return fmt.Errorf("cannot delete %s: %w", target.Path, err)
	}
	return Prepare(target)
}

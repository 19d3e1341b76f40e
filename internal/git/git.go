// Package git shells out to the system git binary.
package git

import (
	"fmt"
	"os"
	"os/exec"
)

type CloneOptions struct {
	// Branch overrides the repository's default branch at clone time.
	Branch string
}

type Manager interface {
	Clone(url, path string, opts CloneOptions) error
}

type gitManager struct{}

func New() Manager {
	return &gitManager{}
}

// Available reports whether a git binary can be found on PATH.
func Available() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git not found on PATH: %w", err)
	}
	return nil
}

func cloneArgs(url, path string, opts CloneOptions) []string {
	args := []string{"clone"}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	return append(args, url, path)
}

// Clone runs git clone into path. Both of the child's streams go to our
// error stream so that git progress never mixes into stdout, which is
// reserved for the final destination path.
func (g *gitManager) Clone(url, path string, opts CloneOptions) error {
	cmd := exec.Command("git", cloneArgs(url, path, opts)...)
	cmd.Dir = os.TempDir()
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone %s failed: %w", url, err)
	}
	return nil
}

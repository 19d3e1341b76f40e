package cmd

import (
	"os"
	"testing"

	"github.com/kirksw/gc/internal/repo"
	"github.com/kirksw/gc/internal/workspace"
)

func TestPrepareTargetAbsent(t *testing.T) {
	root := t.TempDir()
	id := repo.Identifier{Owner: "acme", Repo: "widget"}

	target, err := workspace.Plan(id, root)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	if err := prepareTarget(target); err != nil {
		t.Fatalf("prepareTarget() error = %v", err)
	}

	info, err := os.Stat(target.Path)
	if err != nil || !info.IsDir() {
		t.Errorf("destination not created: info=%v err=%v", info, err)
	}
}

func TestPrepareTargetEmptyDirNeedsNoConfirmation(t *testing.T) {
	root := t.TempDir()
	id := repo.Identifier{Owner: "acme", Repo: "widget"}

	target, err := workspace.Plan(id, root)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if err := workspace.Prepare(target); err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	target, err = workspace.Plan(id, root)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if target.State != workspace.StateEmpty {
		t.Fatalf("state = %v, want %v", target.State, workspace.StateEmpty)
	}

	// Must proceed without prompting; a prompt here would hang or fail on
	// the test's closed stdin.
	if err := prepareTarget(target); err != nil {
		t.Errorf("prepareTarget() error = %v", err)
	}
}

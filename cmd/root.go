package cmd

import (
	"fmt"
	"os"

	"github.com/kirksw/gc/internal/config"
	"github.com/kirksw/gc/internal/git"
	"github.com/kirksw/gc/internal/repo"
	"github.com/kirksw/gc/internal/ui"
	"github.com/kirksw/gc/internal/workspace"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gc <repository> [-b <branch>]",
	Short: "Clone GitHub repositories into a GOPATH-style directory tree",
	Long: `gc resolves a repository reference (owner/repo, an SSH or HTTPS URL, or a
github.com/... path) to <root>/github.com/<owner>/<repo> under the configured
download root, clones it there, and prints the destination path on stdout so
shells can cd into it:

  cd "$(gc owner/repo)"

The root comes from workspace.root in the config file, $GC_DOWNLOAD_PATH, or
$GOPATH, in that order.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runClone,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var (
	branch     string
	configPath string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Errorf(os.Stderr, "Error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&branch, "branch", "b", "", "clone this branch instead of the default branch")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default: ~/.config/gc/config.toml or ~/.gc.toml)")
}

func runClone(cmd *cobra.Command, args []string) error {
	if err := git.Available(); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	root, err := cfg.ResolveRoot()
	if err != nil {
		return err
	}

	// The root itself must be readable before anything gets planned
	// beneath it.
	if _, err := os.ReadDir(root); err != nil {
		return fmt.Errorf("download root cannot be opened: %w", err)
	}

	id, err := repo.Resolve(args[0])
	if err != nil {
		return fmt.Errorf("invalid repository reference: %w", err)
	}

	target, err := workspace.Plan(id, root)
	if err != nil {
		return err
	}

	if err := prepareTarget(target); err != nil {
		return err
	}

	ui.Cloningf(os.Stderr, "Cloning %s...", id)
	if err := git.New().Clone(id.CloneURL(), target.Path, git.CloneOptions{Branch: branch}); err != nil {
		return err
	}
	ui.Successf(os.Stderr, "Successfully cloned %s into %s", id, target.Path)

	fmt.Println(target.Path)
	return nil
}

// prepareTarget brings the destination to an empty, cloneable state,
// gating deletion of an occupied path behind the user's confirmation.
func prepareTarget(target workspace.Target) error {
	switch target.State {
	case workspace.StateAbsent:
		ui.Creatingf(os.Stderr, "Destination directory does not exist. Creating...")
		return workspace.Prepare(target)
	case workspace.StateEmpty:
		return nil
	}

	confirmed, err := confirmOverwrite(target)
	if err != nil {
		return fmt.Errorf("failed to capture prompt: %w", err)
	}
	if !confirmed {
		return fmt.Errorf("cancelled: %s left untouched", target.Path)
	}

	return workspace.Clear(target)
}

func confirmOverwrite(target workspace.Target) (bool, error) {
	if isInteractiveStdin() {
		return ui.RunOverwritePrompt(target.Path, target.IsDir)
	}
	return promptOverwrite(os.Stdin, os.Stderr, target.Path, target.IsDir)
}

func isInteractiveStdin() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	return (info.Mode() & os.ModeCharDevice) != 0
}

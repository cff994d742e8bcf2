// Package cli implements the kerja command line client. Every invocation
// opens the workspace, restores the persisted session and closes the store
// on exit, so a login survives between invocations.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yukikurage/kerja-workspace/internal/app"
	"github.com/yukikurage/kerja-workspace/internal/config"
	"github.com/yukikurage/kerja-workspace/internal/logger"
	"github.com/yukikurage/kerja-workspace/internal/models"
)

var (
	ErrNotLoggedIn   = errors.New("not logged in, run `kerja login` first")
	ErrOwnerRequired = errors.New("only owners can manage team members")
)

// Opener builds the application for one command invocation.
type Opener func(verbose bool) (*app.App, error)

// DefaultOpener loads configuration from the environment. Logging stays at
// warn unless verbose is set.
func DefaultOpener(verbose bool) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "warn"
	if verbose {
		level = cfg.LogLevel
	}
	log, err := logger.New(level)
	if err != nil {
		return nil, err
	}

	return app.Open(cfg, log)
}

type runner struct {
	open    Opener
	verbose bool
}

func (r *runner) withApp(fn func(a *app.App) error) error {
	a, err := r.open(r.verbose)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()
	return fn(a)
}

// withActor runs fn only when a session is active.
func (r *runner) withActor(fn func(a *app.App, actor models.User) error) error {
	return r.withApp(func(a *app.App) error {
		actor := a.Workspace.CurrentActor()
		if actor == nil {
			return ErrNotLoggedIn
		}
		return fn(a, *actor)
	})
}

// withOwner runs fn only when the current actor is an owner.
func (r *runner) withOwner(fn func(a *app.App, actor models.User) error) error {
	return r.withActor(func(a *app.App, actor models.User) error {
		if !actor.IsOwner() {
			return ErrOwnerRequired
		}
		return fn(a, actor)
	})
}

// NewRootCommand builds the full command tree around open.
func NewRootCommand(open Opener) *cobra.Command {
	r := &runner{open: open}

	rootCmd := &cobra.Command{
		Use:   "kerja",
		Short: "KERJA - team workspace for tasks, events and members",
		Long: `kerja manages the shared KERJA workspace from the terminal.

Tasks live on a kanban board, events on the team calendar, and every change
made while logged in is recorded in the activity log.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&r.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newLoginCmd(r))
	rootCmd.AddCommand(newLogoutCmd(r))
	rootCmd.AddCommand(newWhoamiCmd(r))
	rootCmd.AddCommand(newTaskCmd(r))
	rootCmd.AddCommand(newEventCmd(r))
	rootCmd.AddCommand(newUserCmd(r))
	rootCmd.AddCommand(newActivityCmd(r))
	rootCmd.AddCommand(newServeCmd(r))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd := NewRootCommand(DefaultOpener)
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

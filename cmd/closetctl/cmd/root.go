// Package cmd assembles closetctl's cobra command tree. Structured after
// openconfig-ygot's gnmidiff/cmd/root.go: a persistent --closet flag bound
// into a package-level viper resolver via closetcfg, shared by every
// subcommand.
package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/outfitforge/closet/closetcfg"
)

var resolver = closetcfg.NewResolver()

// timeout bounds each subcommand's run. It is enforced only at this CLI
// boundary — diagram/boolean/closet/outfit take no context.Context and
// have no suspension points of their own to cancel (§5).
var timeout time.Duration

// Execute builds and runs the root command, returning the first error any
// subcommand's RunE produces.
func Execute() error {
	root := &cobra.Command{
		Use:   "closetctl",
		Short: "Validate closet definitions and resolve outfits against them.",
	}

	var configFile string
	root.PersistentFlags().String("closet", "", "path to a closet definition YAML file")
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file setting \"closet\" (and other keys), below --closet and $CLOSETCTL_CLOSET in precedence")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "abort the command if it runs longer than this (0 disables)")
	if err := closetcfg.BindClosetFlag(resolver, root.PersistentFlags()); err != nil {
		return err
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if configFile == "" {
			return nil
		}
		return closetcfg.LoadConfigFile(resolver, configFile)
	}

	root.AddCommand(newBuildCmd())
	root.AddCommand(newCompleteCmd())
	root.AddCommand(newEnumerateCmd())

	return root.Execute()
}

// runWithTimeout runs fn, aborting with ctx's deadline error if timeout is
// set and fn has not returned in time. fn itself never sees the context:
// it is a plain synchronous call, checked only at this CLI boundary.
func runWithTimeout(fn func() error) error {
	if timeout <= 0 {
		return fn()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

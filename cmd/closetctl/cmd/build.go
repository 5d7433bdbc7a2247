package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outfitforge/closet/outfiterr"
)

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Load and validate a closet definition.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithTimeout(func() error {
				_, err := loadClosetFromFlags()
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), outfiterr.Format(err))
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "closet is valid")
				return nil
			})
		},
	}
}

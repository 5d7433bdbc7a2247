package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outfitforge/closet/outfit"
	"github.com/outfitforge/closet/outfiterr"
)

func newEnumerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate",
		Short: "List every satisfying outfit for a closet definition.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithTimeout(func() error {
				c, err := loadClosetFromFlags()
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), outfiterr.Format(err))
					return err
				}

				for _, path := range outfit.Trees(c.Root()) {
					names := make([]string, len(path))
					for i, it := range path {
						names[i] = it.String()
					}
					fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, ", "))
				}
				return nil
			})
		},
	}
}

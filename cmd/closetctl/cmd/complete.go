package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outfitforge/closet/item"
	"github.com/outfitforge/closet/outfit"
	"github.com/outfitforge/closet/outfiterr"
)

func newCompleteCmd() *cobra.Command {
	var selections []string

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Resolve a partial selection into a full outfit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithTimeout(func() error {
				c, err := loadClosetFromFlags()
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), outfiterr.Format(err))
					return err
				}

				selected := make([]item.Item, len(selections))
				for i, name := range selections {
					selected[i] = item.New(name)
				}

				out, err := outfit.Complete(c, selected)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), outfiterr.Format(err))
					return err
				}

				names := make([]string, len(out.Items()))
				for i, it := range out.Items() {
					names[i] = it.String()
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, ", "))
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&selections, "select", nil, "an item to select (repeatable)")

	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add <symbol> <text>...",
		Short: "Add or replace an item and save the board",
		Long: `Add stores symbol with its spoken text in the given category, then saves
the board. Without --category, symbol must name an existing category and its
display name is replaced; other home screen items are not persisted. The board
is loaded strictly so malformed lines are never dropped by the rewrite.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, c, err := loadBoardForEdit()
			if err != nil {
				return err
			}
			symbol, text := args[0], strings.Join(args[1:], " ")
			switch {
			case category != "":
				if !b.HasImage(category) {
					return userErrorf("unknown category %q", category)
				}
				b.Select(category)
			case !b.HasImage(symbol):
				return userErrorf("home screen items are not saved; use --category")
			}

			b.AddItem(symbol, text)
			if err := saveBoard(b, c); err != nil {
				return err
			}

			where := "home"
			if name := b.Category(); name != "" {
				where = name
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s to %s\n", symbol, where)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "category symbol to add the item to")
	return cmd
}

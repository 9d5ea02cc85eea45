package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the board file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := currentConfig()
			if err != nil {
				return err
			}
			b, err := board.Load(c.BoardFile, boardOptions(true)...)
			if err != nil {
				return classify(err)
			}

			items := 0
			for _, rec := range b.Records() {
				if rec.Kind == types.KindItem {
					items++
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d categories, %d items\n", len(b.Categories()), items)
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// selectionJSON is the --json form of one selection.
type selectionJSON struct {
	Symbol   string `json:"symbol"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <symbol>...",
		Short: "Select symbols in order and print the text to speak",
		Long: `Select feeds each symbol to the board in order, starting from the home
screen. Selecting a category switches screens; selecting an item prints its
text. Unknown symbols are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := openBoard()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			results := make([]selectionJSON, 0, len(args))
			for _, symbol := range args {
				text := b.Select(symbol)
				results = append(results, selectionJSON{Symbol: symbol, Text: text, Category: b.Category()})
				if !flags.jsonMode && text != "" {
					fmt.Fprintln(out, text)
				}
			}
			if flags.jsonMode {
				return writeJSON(out, results)
			}
			return nil
		},
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard/pkg/board"
)

// screenJSON is the --json form of one screen.
type screenJSON struct {
	Category string       `json:"category"`
	Symbols  []symbolJSON `json:"symbols"`
}

type symbolJSON struct {
	Symbol     string `json:"symbol"`
	Text       string `json:"text"`
	IsCategory bool   `json:"is_category"`
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [category-symbol]",
		Short: "Show the home screen or one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _, err := openBoard()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if !b.HasImage(args[0]) {
					return userErrorf("unknown category %q", args[0])
				}
				b.Select(args[0])
			}
			screen := describeScreen(b, logger)
			if flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), screen)
			}
			printScreen(cmd.OutOrStdout(), screen)
			return nil
		},
	}
}

// describeScreen captures the active screen of b. Symbols without text on
// the active screen are left out.
func describeScreen(b *board.Board, logger *log.Logger) screenJSON {
	screen := screenJSON{Category: b.Category(), Symbols: []symbolJSON{}}
	for _, symbol := range b.ImageLocs() {
		text, err := b.Text(symbol)
		if err != nil {
			logger.WithError(err).WithField("symbol", symbol).Debug("omitting symbol from screen")
			continue
		}
		screen.Symbols = append(screen.Symbols, symbolJSON{
			Symbol:     symbol,
			Text:       text,
			IsCategory: b.InHome() && b.HasImage(symbol),
		})
	}
	return screen
}

func printScreen(w io.Writer, screen screenJSON) {
	heading := color.New(color.Bold)
	title := "home"
	if screen.Category != "" {
		title = screen.Category
	}
	heading.Fprintln(w, title)

	if len(screen.Symbols) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}

	marker := color.New(color.FgCyan).SprintFunc()
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("SYMBOL", "TEXT", "")
	for _, s := range screen.Symbols {
		kind := ""
		if s.IsCategory {
			kind = marker("category")
		}
		table.AddRow(s.Symbol, s.Text, kind)
	}
	fmt.Fprintln(w, table)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

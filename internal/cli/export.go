package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/aacboard/internal/codec"
	"github.com/mesh-intelligence/aacboard/pkg/board"
	"github.com/mesh-intelligence/aacboard/pkg/sqlite"
	"github.com/mesh-intelligence/aacboard/pkg/types"
)

func newExportCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the board to JSONL or SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := types.ValidateFormat(format); err != nil {
				return userErrorf("%s: %q", err, format)
			}
			c, err := currentConfig()
			if err != nil {
				return err
			}
			b, err := board.Load(c.BoardFile, boardOptions(c.Strict)...)
			if err != nil {
				return classify(err)
			}

			if err := exportBoard(format, out, b); err != nil {
				return sysError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", len(b.Records()), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", types.FormatJSONL, "output format: jsonl or sqlite")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newImportCmd() *cobra.Command {
	var format, in string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the board with one read from JSONL or SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := types.ValidateFormat(format); err != nil {
				return userErrorf("%s: %q", err, format)
			}
			c, err := currentConfig()
			if err != nil {
				return err
			}

			b, err := importBoard(format, in, boardOptions(c.Strict))
			if err != nil {
				return classify(err)
			}
			if err := saveBoard(b, c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d categories into %s\n", len(b.Categories()), c.BoardFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", types.FormatJSONL, "input format: jsonl or sqlite")
	cmd.Flags().StringVarP(&in, "in", "i", "", "input path")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

// exportBoard writes b to path in the given format.
func exportBoard(format, path string, b *board.Board) error {
	switch format {
	case types.FormatJSONL:
		return codec.WriteJSONL(path, b.Records())
	case types.FormatSQLite:
		return sqlite.SaveBoard(path, b)
	default:
		return types.ErrUnknownFormat
	}
}

// importBoard reads a board from path in the given format.
func importBoard(format, path string, opts []board.Option) (*board.Board, error) {
	switch format {
	case types.FormatJSONL:
		records, err := codec.ReadJSONL(path)
		if err != nil {
			return nil, err
		}
		return board.FromRecords(records, opts...)
	case types.FormatSQLite:
		return sqlite.LoadBoard(path, opts...)
	default:
		return nil, types.ErrUnknownFormat
	}
}

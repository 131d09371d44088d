// Package board holds all cli commands related to boards
// e.g., quadro board ...
package board

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage boards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(ColumnCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// columnJSON is the JSON shape of a column
func columnJSON(id int, name string, kind string, order int) map[string]any {
	return map[string]any{
		"id":    id,
		"name":  name,
		"kind":  kind,
		"order": order,
	}
}

// resolveBoardID takes the board from the first argument, then --board, then QUADRO_BOARD
func resolveBoardID(cmd *cobra.Command, args []string, formatter *cli.OutputFormatter) (int, error) {
	if len(args) > 0 {
		boardID, err := cli.ParseID("board", args[0])
		if err != nil {
			return 0, cli.UsageError(formatter, "INVALID_BOARD_ID", err.Error(), "")
		}
		return boardID, nil
	}

	boardID, err := cli.GetBoardID(cmd)
	if err != nil {
		return 0, cli.UsageError(formatter, "INVALID_BOARD_ID", err.Error(), "")
	}
	if boardID == 0 {
		return 0, cli.UsageError(formatter, "NO_BOARD",
			"no board selected",
			"Pass a board ID, use --board, or run: eval $(quadro use board <board-id>)")
	}
	return boardID, nil
}

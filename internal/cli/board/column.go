package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
)

// ColumnCmd returns the board column subcommand
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column <column-id>",
		Short: "Show the cards of one column",
		Long: `Show one column of the selected board and the cards it holds.

Examples:
  quadro board column 4 --board=1
  quadro board column 4 --json`,
		Args: cobra.ExactArgs(1),
		RunE: runColumn,
	}

	cmd.Flags().Int("board", 0, "Board ID (defaults to QUADRO_BOARD)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runColumn(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	columnID, err := cli.ParseID("column", args[0])
	if err != nil {
		return cli.UsageError(formatter, "INVALID_COLUMN_ID", err.Error(), "")
	}

	boardID, err := resolveBoardID(cmd, nil, formatter)
	if err != nil {
		return err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	column, err := cliInstance.App.BoardService.GetColumnDetail(ctx, boardID, columnID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	data := columnJSON(column.ID, column.Name, string(column.Kind), column.Order)
	data["cards"] = cardsJSON(column.Cards)
	if done, err := formatter.Success("column", data, cli.IDsOf(column.Cards)...); done {
		return err
	}

	fmt.Println(styles.RenderColumnHeader(column.Name, column.Kind))
	if len(column.Cards) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("  No cards"))
		return nil
	}
	for _, card := range column.Cards {
		fmt.Printf("  %s\n", styles.RenderCardLine(card.ID, card.Title, card.Blocked))
	}

	return nil
}

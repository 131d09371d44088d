// Package card holds all cli commands related to cards
// e.g., quadro card ...
package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
)

// CardCmd returns the card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage cards",
		Long: `Create cards and drive them through the columns of a board.

Cards start in the INITIAL column, move forward one column at a time
and stop in the FINAL column. A blocked card cannot move, and cancel
sends a card to the CANCEL column from anywhere before FINAL.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(BlockCmd())
	cmd.AddCommand(UnblockCmd())
	cmd.AddCommand(CancelCmd())

	return cmd
}

// addBoardFlag registers the --board flag shared by card commands
func addBoardFlag(cmd *cobra.Command) {
	cmd.Flags().Int("board", 0, "Board ID (defaults to QUADRO_BOARD, then the card's own board)")
}

// boardColumns loads the column projection of the board a card is moved on.
// The selected board wins; without one the card's own board is used.
func boardColumns(ctx context.Context, cmd *cobra.Command, cliInstance *cli.CLI, cardID int) (models.BoardColumns, error) {
	boardID, err := cli.GetBoardID(cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrValidation, err.Error())
	}

	if boardID == 0 {
		detail, err := cliInstance.App.CardService.GetCardDetail(ctx, cardID)
		if err != nil {
			return nil, err
		}
		boardID = detail.BoardID
	}

	return cliInstance.App.BoardService.ColumnsInfo(ctx, boardID)
}

// transitionFunc applies one lifecycle operation
type transitionFunc func(ctx context.Context, cliInstance *cli.CLI, cardID int, columns models.BoardColumns) (*models.Card, error)

// runTransition is the shared body of move, block, unblock and cancel
func runTransition(cmd *cobra.Command, args []string, verb string, needColumns bool, apply transitionFunc) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	cardID, err := cli.ParseID("card", args[0])
	if err != nil {
		return cli.UsageError(formatter, "INVALID_CARD_ID", err.Error(), "")
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

	var columns models.BoardColumns
	if needColumns {
		columns, err = boardColumns(ctx, cmd, cliInstance, cardID)
		if err != nil {
			return cli.HandleError(formatter, err)
		}
	}

	if _, err := apply(ctx, cliInstance, cardID, columns); err != nil {
		return cli.HandleError(formatter, err)
	}

	detail, err := cliInstance.App.CardService.GetCardDetail(ctx, cardID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if done, err := formatter.Success("card", cardJSON(detail), detail); done {
		return err
	}

	fmt.Printf("✓ Card %d %s (column: %s)\n", detail.ID, verb, detail.ColumnName)
	if detail.Blocked {
		fmt.Printf("  Blocked: %s\n", detail.BlockReason)
	}
	return nil
}

// cardJSON is the JSON shape of a card
func cardJSON(detail *models.CardDetail) map[string]any {
	events := make([]map[string]any, 0, len(detail.Events))
	for _, e := range detail.Events {
		events = append(events, map[string]any{
			"id":         e.ID,
			"kind":       string(e.Kind),
			"reason":     e.Reason,
			"created_at": e.CreatedAt,
		})
	}

	return map[string]any{
		"id":            detail.ID,
		"title":         detail.Title,
		"description":   detail.Description,
		"board_id":      detail.BoardID,
		"column_id":     detail.ColumnID,
		"column_name":   detail.ColumnName,
		"column_kind":   string(detail.ColumnKind),
		"blocked":       detail.Blocked,
		"block_reason":  detail.BlockReason,
		"blocks_amount": detail.BlocksAmount,
		"events":        events,
		"created_at":    detail.CreatedAt,
		"updated_at":    detail.UpdatedAt,
	}
}

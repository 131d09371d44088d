package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <card-id>",
		Short: "Move a card to the next column",
		Long: `Move a card one column forward along its board.

Blocked cards and cards in the FINAL or CANCEL column cannot move.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, args, "moved", true,
				func(ctx context.Context, cliInstance *cli.CLI, cardID int, columns models.BoardColumns) (*models.Card, error) {
					return cliInstance.App.CardService.MoveToNextColumn(ctx, cardID, columns)
				})
		},
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

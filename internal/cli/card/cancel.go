package card

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
)

// CancelCmd returns the card cancel subcommand
func CancelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel <card-id>",
		Short: "Move a card to the CANCEL column",
		Long: `Cancel a card. Any card not yet in the FINAL column can be cancelled,
including blocked ones; the block is kept for the record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(cmd, args, "cancelled", true,
				func(ctx context.Context, cliInstance *cli.CLI, cardID int, columns models.BoardColumns) (*models.Card, error) {
					cancelColumn, err := columns.CancelColumn()
					if err != nil {
						return nil, err
					}
					return cliInstance.App.CardService.Cancel(ctx, cardID, cancelColumn.ID, columns)
				})
		},
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

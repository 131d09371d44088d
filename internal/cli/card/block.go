package card

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/models"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
)

// BlockCmd returns the card block subcommand
func BlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block <card-id>",
		Short: "Block a card",
		Long: `Block a card with a reason. A blocked card cannot move until unblocked.

Examples:
  quadro card block 12 --reason="Waiting on API keys"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")
			if strings.TrimSpace(reason) == "" {
				return cli.HandleError(cli.FormatterFromFlags(cmd), cardservice.ErrEmptyReason)
			}
			return runTransition(cmd, args, "blocked", true,
				func(ctx context.Context, cliInstance *cli.CLI, cardID int, columns models.BoardColumns) (*models.Card, error) {
					return cliInstance.App.CardService.Block(ctx, cardID, reason, columns)
				})
		},
	}

	addReasonFlag(cmd)
	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

// UnblockCmd returns the card unblock subcommand
func UnblockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unblock <card-id>",
		Short: "Unblock a card",
		Long: `Unblock a card with a reason.

Examples:
  quadro card unblock 12 --reason="Keys received"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")
			if strings.TrimSpace(reason) == "" {
				return cli.HandleError(cli.FormatterFromFlags(cmd), cardservice.ErrEmptyReason)
			}
			return runTransition(cmd, args, "unblocked", false,
				func(ctx context.Context, cliInstance *cli.CLI, cardID int, _ models.BoardColumns) (*models.Card, error) {
					return cliInstance.App.CardService.Unblock(ctx, cardID, reason)
				})
		},
	}

	addReasonFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func addReasonFlag(cmd *cobra.Command) {
	cmd.Flags().String("reason", "", "Why the card is (un)blocked (required)")
	if err := cmd.MarkFlagRequired("reason"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
}

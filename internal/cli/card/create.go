package card

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	cardservice "github.com/thenoetrevino/quadro/internal/services/card"
)

// CreateCmd returns the card create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a card in the board's INITIAL column",
		Long: `Create a card. New cards always start unblocked in the INITIAL column.

Examples:
  quadro card create --title="Write docs" --description="Cover the CLI" --board=1

  # Description from stdin
  cat notes.md | quadro card create --title="Release notes" --description=-

  # Quiet mode for bash capture
  CARD_ID=$(quadro card create --title="Fix login" --description="500 on submit" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Card title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}
	cmd.Flags().String("description", "", "Card description, '-' reads stdin (required)")
	if err := cmd.MarkFlagRequired("description"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	addBoardFlag(cmd)
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	title, _ := cmd.Flags().GetString("title")
	descriptionFlag, _ := cmd.Flags().GetString("description")

	description, err := cli.ReadText(descriptionFlag, cmd.InOrStdin())
	if err != nil {
		return cli.UsageError(formatter, "INVALID_DESCRIPTION", err.Error(), "")
	}

	boardID, err := cli.GetBoardID(cmd)
	if err != nil {
		return cli.UsageError(formatter, "INVALID_BOARD_ID", err.Error(), "")
	}
	if boardID == 0 {
		return cli.UsageError(formatter, "NO_BOARD",
			"no board selected",
			"Use --board or run: eval $(quadro use board <board-id>)")
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

	columns, err := cliInstance.App.BoardService.ColumnsInfo(ctx, boardID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	initial, err := columns.InitialColumn()
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	card, err := cliInstance.App.CardService.CreateCard(ctx, cardservice.CreateCardRequest{
		Title:       title,
		Description: description,
		ColumnID:    initial.ID,
	})
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if done, err := formatter.Success("card", map[string]any{
		"id":          card.ID,
		"title":       card.Title,
		"description": card.Description,
		"board_id":    boardID,
		"column_id":   card.ColumnID,
		"created_at":  card.CreatedAt,
	}, card); done {
		return err
	}

	fmt.Printf("✓ Card '%s' created successfully (ID: %d)\n", card.Title, card.ID)
	return nil
}

package board

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
	boardservice "github.com/thenoetrevino/quadro/internal/services/board"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a board and its columns.

Every board has one INITIAL column where cards start, any number of
PENDING columns, one FINAL column and one CANCEL column.

Examples:
  # Backlog -> Done, with a Cancelled side exit
  quadro board create --name="Roadmap"

  # Custom columns
  quadro board create --name="Release" \
    --initial="Todo" --pending="Doing" --pending="Review" \
    --final="Shipped" --cancel="Dropped"

  # Quiet mode for bash capture
  BOARD_ID=$(quadro board create --name="Roadmap" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Board name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		slog.Error("failed to mark flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("initial", "Backlog", "Name of the INITIAL column")
	cmd.Flags().StringArray("pending", nil, "Name of a PENDING column (repeatable, in order)")
	cmd.Flags().String("final", "Done", "Name of the FINAL column")
	cmd.Flags().String("cancel", "Cancelled", "Name of the CANCEL column")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	initial, _ := cmd.Flags().GetString("initial")
	pending, _ := cmd.Flags().GetStringArray("pending")
	final, _ := cmd.Flags().GetString("final")
	cancel, _ := cmd.Flags().GetString("cancel")

	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	board, err := cliInstance.App.BoardService.CreateBoard(ctx, boardservice.CreateBoardRequest{
		Name:           name,
		InitialColumn:  initial,
		PendingColumns: pending,
		FinalColumn:    final,
		CancelColumn:   cancel,
	})
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	columns := make([]map[string]any, 0, len(board.Columns))
	for _, c := range board.Columns {
		columns = append(columns, columnJSON(c.ID, c.Name, string(c.Kind), c.Order))
	}
	if done, err := formatter.Success("board", map[string]any{
		"id":         board.ID,
		"name":       board.Name,
		"columns":    columns,
		"created_at": board.CreatedAt,
	}, board); done {
		return err
	}

	fmt.Printf("✓ Board '%s' created successfully (ID: %d)\n", board.Name, board.ID)
	fmt.Printf("  Columns: %s\n", describeColumns(board.Columns))
	fmt.Printf("  Select it with: eval $(quadro use board %d)\n", board.ID)

	return nil
}

// describeColumns renders "Backlog [INITIAL] -> Done [FINAL] | Cancelled [CANCEL]"
func describeColumns(columns []*models.Column) string {
	var traversal []string
	var side string
	for _, c := range columns {
		rendered := c.Name + " " + styles.RenderKind(c.Kind)
		if c.Kind == models.ColumnKindCancel {
			side = rendered
			continue
		}
		traversal = append(traversal, rendered)
	}

	out := strings.Join(traversal, " -> ")
	if side != "" {
		out += " | " + side
	}
	return out
}

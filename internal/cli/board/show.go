package board

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [board-id]",
		Short: "Show a board with its columns and cards",
		Long: `Show every column of a board with the cards it holds.

The board comes from the argument, the --board flag or QUADRO_BOARD.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}

	cmd.Flags().Int("board", 0, "Board ID (defaults to QUADRO_BOARD)")
	cli.AddOutputFlags(cmd)

	return cmd
}

// columnView is one rendered column of the board
type columnView struct {
	summary *models.ColumnSummary
	cards   []*models.CardSummary
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	boardID, err := resolveBoardID(cmd, args, formatter)
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

	detail, err := cliInstance.App.BoardService.GetBoardDetail(ctx, boardID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	views := make([]columnView, 0, len(detail.Columns))
	for _, summary := range detail.Columns {
		column, err := cliInstance.App.BoardService.GetColumnDetail(ctx, boardID, summary.ID)
		if err != nil {
			return cli.HandleError(formatter, err)
		}
		views = append(views, columnView{summary: summary, cards: column.Cards})
	}

	columns := make([]map[string]any, 0, len(views))
	for _, v := range views {
		column := columnJSON(v.summary.ID, v.summary.Name, string(v.summary.Kind), v.summary.Order)
		column["cards_amount"] = v.summary.CardsAmount
		column["cards"] = cardsJSON(v.cards)
		columns = append(columns, column)
	}
	if done, err := formatter.Success("board", map[string]any{
		"id":      detail.ID,
		"name":    detail.Name,
		"columns": columns,
	}, detail); done {
		return err
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("%s (ID: %d)", detail.Name, detail.ID)))

	rendered := make([]string, 0, len(views))
	for _, v := range views {
		rendered = append(rendered, styles.RenderColumn(renderColumnBody(v.summary, v.cards)))
	}
	fmt.Println(styles.JoinColumns(rendered...))

	return nil
}

func renderColumnBody(summary *models.ColumnSummary, cards []*models.CardSummary) string {
	var content strings.Builder
	content.WriteString(styles.RenderColumnHeader(summary.Name, summary.Kind))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("%d cards", summary.CardsAmount)))
	content.WriteString("\n")

	for _, card := range cards {
		content.WriteString("\n")
		content.WriteString(styles.RenderCardLine(card.ID, card.Title, card.Blocked))
	}

	return content.String()
}

func cardsJSON(cards []*models.CardSummary) []map[string]any {
	items := make([]map[string]any, 0, len(cards))
	for _, card := range cards {
		items = append(items, map[string]any{
			"id":          card.ID,
			"title":       card.Title,
			"description": card.Description,
			"blocked":     card.Blocked,
		})
	}
	return items
}

package card

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/models"
)

const descriptionWidth = 72

// ShowCmd returns the card show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <card-id>",
		Short: "Show a card with its block history",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	detail, err := cliInstance.App.CardService.GetCardDetail(ctx, cardID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if done, err := formatter.Success("card", cardJSON(detail), detail); done {
		return err
	}

	fmt.Println(styles.RenderCard(renderDetail(detail)))
	return nil
}

func renderDetail(detail *models.CardDetail) string {
	var content strings.Builder

	content.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d: %s", detail.ID, detail.Title)))
	content.WriteString("\n\n")

	if detail.Blocked {
		content.WriteString(styles.BlockedStyle.Render("BLOCKED"))
		content.WriteString(" ")
		content.WriteString(styles.ValueStyle.Render(detail.BlockReason))
		content.WriteString("\n\n")
	}

	content.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		styles.LabelStyle.Render("Column:"),
		styles.RenderColumnHeader(detail.ColumnName, detail.ColumnKind),
		styles.LabelStyle.Render("Blocks:"),
		styles.ValueStyle.Render(fmt.Sprintf("%d", detail.BlocksAmount)),
	))
	content.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Board %d · created %s · updated %s",
		detail.BoardID,
		detail.CreatedAt.Format("2006-01-02 15:04"),
		detail.UpdatedAt.Format("2006-01-02 15:04"),
	)))
	content.WriteString("\n")

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(styles.RenderMarkdown(detail.Description, descriptionWidth))
	content.WriteString("\n")

	if len(detail.Events) > 0 {
		content.WriteString(styles.SectionStyle.Render("History"))
		content.WriteString("\n")
		for _, e := range detail.Events {
			kindStyle := styles.BlockedStyle
			if e.Kind == models.CardEventUnblock {
				kindStyle = styles.SuccessStyle
			}
			content.WriteString(fmt.Sprintf("  %s %s %s\n",
				styles.SubtitleStyle.Render(e.CreatedAt.Format("2006-01-02 15:04")),
				kindStyle.Render(string(e.Kind)),
				styles.ValueStyle.Render(e.Reason),
			))
		}
	}

	return strings.TrimRight(content.String(), "\n")
}

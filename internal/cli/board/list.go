package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
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

	boards, err := cliInstance.App.BoardService.ListBoards(ctx)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	items := make([]map[string]any, 0, len(boards))
	for _, b := range boards {
		items = append(items, map[string]any{
			"id":         b.ID,
			"name":       b.Name,
			"columns":    len(b.Columns),
			"created_at": b.CreatedAt,
		})
	}
	if done, err := formatter.Success("boards", items, cli.IDsOf(boards)...); done {
		return err
	}

	if len(boards) == 0 {
		fmt.Println("No boards found")
		fmt.Println("Create one with: quadro board create --name=<name>")
		return nil
	}

	fmt.Printf("Found %d boards:\n\n", len(boards))
	for _, b := range boards {
		fmt.Printf("  %s %s\n", styles.LabelStyle.Render(fmt.Sprintf("[%d]", b.ID)), styles.TitleStyle.Render(b.Name))
		fmt.Printf("      %s\n", describeColumns(b.Columns))
	}

	return nil
}

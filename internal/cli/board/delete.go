package board

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board",
		Long:  "Delete a board with its columns and cards (requires confirmation unless --force or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)
	force, _ := cmd.Flags().GetBool("force")

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

	b, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		return cli.HandleError(formatter, err)
	}

	if !force && !formatter.Quiet {
		fmt.Printf("Delete board #%d: '%s' with all its cards? (y/N): ", b.ID, b.Name)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.BoardService.DeleteBoard(ctx, boardID); err != nil {
		return cli.HandleError(formatter, err)
	}

	if done, err := formatter.Success("board_id", boardID); done {
		return err
	}

	fmt.Printf("✓ Board %d deleted successfully\n", boardID)
	return nil
}

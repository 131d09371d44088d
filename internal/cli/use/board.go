package use

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
)

// BoardCmd returns the use board subcommand
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [board-id]",
		Short: "Set board context for current shell session",
		Long: `Set the current board using an environment variable.
This command outputs shell commands that should be evaluated:

  eval $(quadro use board 3)              # Use board 3
  eval $(quadro use board --clear)        # Clear board context
  quadro use board --show                 # Show current board

QUADRO_BOARD is set in the current shell session only. The --board flag
on other commands takes precedence over it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseBoard,
	}

	cmd.Flags().Bool("clear", false, "Clear the current board context")
	cmd.Flags().Bool("show", false, "Show the current board context")
	cmd.Flags().Bool("dry-run", false, "Show what would be exported without outputting shell commands")

	return cmd
}

func runUseBoard(cmd *cobra.Command, args []string) error {
	clearFlag, _ := cmd.Flags().GetBool("clear")
	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	formatter := &cli.OutputFormatter{}

	if showFlag {
		return showCurrentBoard(cmd)
	}

	if clearFlag {
		if dryRun {
			fmt.Fprintf(os.Stderr, "Would clear %s\n", cli.BoardEnvVar)
			return nil
		}
		fmt.Printf("unset %s\n", cli.BoardEnvVar)
		fmt.Fprintf(os.Stderr, "Cleared board context\n")
		return nil
	}

	if len(args) == 0 {
		return cli.UsageError(formatter, "BOARD_ID_REQUIRED", "board ID required",
			"Usage: eval $(quadro use board <board-id>)")
	}

	boardID, err := cli.ParseID("board", args[0])
	if err != nil {
		return cli.UsageError(formatter, "INVALID_BOARD_ID", err.Error(), "")
	}

	ctx := cmd.Context()
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

	// Shell commands go to stdout for eval, messages to stderr
	if dryRun {
		fmt.Fprintf(os.Stderr, "Would set %s=%d (%s)\n", cli.BoardEnvVar, boardID, b.Name)
		return nil
	}

	fmt.Printf("export %s=%d\n", cli.BoardEnvVar, boardID)
	fmt.Fprintf(os.Stderr, "Now using board %d: %s\n", boardID, b.Name)

	return nil
}

func showCurrentBoard(cmd *cobra.Command) error {
	current := os.Getenv(cli.BoardEnvVar)
	if current == "" {
		fmt.Println("No board context set")
		fmt.Println("Use 'eval $(quadro use board <board-id>)' to set one")
		return nil
	}

	boardID, err := strconv.Atoi(current)
	if err != nil {
		fmt.Printf("Invalid board context: %s\n", current)
		return nil
	}

	ctx := cmd.Context()
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return fmt.Errorf("initialization error: %w", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	b, err := cliInstance.App.BoardService.GetBoard(ctx, boardID)
	if err != nil {
		fmt.Printf("Current board: %s (board not found)\n", current)
		return nil
	}

	fmt.Printf("Current board: %d (%s)\n", boardID, b.Name)
	return nil
}

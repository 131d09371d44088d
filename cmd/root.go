// Package cmd assembles the quadro command tree
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/quadro/internal/cli"
	"github.com/thenoetrevino/quadro/internal/cli/board"
	"github.com/thenoetrevino/quadro/internal/cli/card"
	"github.com/thenoetrevino/quadro/internal/cli/styles"
	"github.com/thenoetrevino/quadro/internal/cli/use"
	"github.com/thenoetrevino/quadro/internal/config"
	"github.com/thenoetrevino/quadro/internal/logging"
)

var logFile io.Closer

// NewRootCmd builds the quadro command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quadro",
		Short: "Quadro - A text-console kanban board",
		Long: `Quadro is a kanban board manager for the terminal.

Boards hold ordered columns, and cards travel from the INITIAL column
to the FINAL one, can be blocked and unblocked with a reason, or be
cancelled into the CANCEL column.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(card.CardCmd())
	rootCmd.AddCommand(use.UseCmd())

	return rootCmd
}

// setup loads configuration, starts logging and applies the color scheme
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return cli.HandleError(&cli.OutputFormatter{}, err)
	}

	logFile, err = logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return cli.HandleError(&cli.OutputFormatter{}, err)
	}

	styles.Init(cfg.ColorScheme)

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	slog.Debug("command started", "command", cmd.CommandPath())
	return nil
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if logFile != nil {
			_ = logFile.Close()
		}
	}()
	return NewRootCmd().Execute()
}

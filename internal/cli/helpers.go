package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// BoardEnvVar holds the board selected with 'quadro use board'
const BoardEnvVar = "QUADRO_BOARD"

// GetBoardID returns the board from the --board flag, falling back to
// QUADRO_BOARD. Returns 0 and no error when neither is set.
func GetBoardID(cmd *cobra.Command) (int, error) {
	if boardID, ok, err := boardFlag(cmd.Flags()); ok || err != nil {
		return boardID, err
	}

	value := strings.TrimSpace(os.Getenv(BoardEnvVar))
	if value == "" {
		return 0, nil
	}

	boardID, err := strconv.Atoi(value)
	if err != nil || boardID <= 0 {
		return 0, fmt.Errorf("invalid %s value: %q", BoardEnvVar, value)
	}
	return boardID, nil
}

// boardFlag reads --board when it was given explicitly
func boardFlag(flags *pflag.FlagSet) (int, bool, error) {
	flag := flags.Lookup("board")
	if flag == nil || !flag.Changed {
		return 0, false, nil
	}

	boardID, err := flags.GetInt("board")
	if err != nil {
		return 0, true, err
	}
	if boardID <= 0 {
		return 0, true, fmt.Errorf("--board must be a positive integer, got %d", boardID)
	}
	return boardID, true, nil
}

// ParseID parses a positive integer ID from a positional argument
func ParseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s ID must be a positive integer, got %q", kind, arg)
	}
	return id, nil
}

// ReadText returns value, or everything read from in when value is "-"
func ReadText(value string, in io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFromFlags builds the OutputFormatter for --json and --quiet
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhubert/saasboard/internal/config"
	"github.com/zhubert/saasboard/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove saved preferences and log files",
	Long: `Deletes the preferences file (theme, sidebar state, profile and
notification settings) and every saasboard log file in /tmp.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("error locating config: %w", err)
		}
		path = p
	}
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), path)
}

// runCleanWithReader allows injecting input and output for testing
func runCleanWithReader(input io.Reader, out io.Writer, prefsPath string) error {
	_, err := os.Stat(prefsPath)
	hasPrefs := err == nil

	fmt.Fprintln(out, "This will clean:")
	if hasPrefs {
		fmt.Fprintf(out, "  - Preferences file %s\n", prefsPath)
	}
	fmt.Fprintln(out, "  - All log files in /tmp/saasboard-*.log")

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if hasPrefs {
		if err := os.Remove(prefsPath); err != nil {
			return fmt.Errorf("error removing preferences: %w", err)
		}
	}

	// The logger holds the current log file open.
	logger.Close()
	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if hasPrefs {
		fmt.Fprintln(out, "  - preferences removed")
	}
	fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

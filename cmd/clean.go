package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/codeview/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Forget recent sessions and remove log files",
	Long: `Clears the recent session history from the config file and removes the
debug log.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, os.Stdout)
}

func runCleanWithReader(input io.Reader, out io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	sessionCount := len(cfg.GetRecentSessions())
	if sessionCount == 0 && !logExists() {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will:")
	if sessionCount > 0 {
		fmt.Fprintf(out, "  - Forget %d recent session(s)\n", sessionCount)
	}
	fmt.Fprintf(out, "  - Remove %s\n", logger.DefaultLogPath)
	fmt.Fprintln(out)

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	cleared := cfg.ClearRecentSessions()
	if cleared > 0 {
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	// Print results
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cleaned:")
	if cleared > 0 {
		fmt.Fprintf(out, "  - %d session(s) forgotten\n", cleared)
	}
	if logsCleared > 0 {
		fmt.Fprintf(out, "  - %d log file(s) removed\n", logsCleared)
	}

	return nil
}

func logExists() bool {
	_, err := os.Stat(logger.DefaultLogPath)
	return err == nil
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

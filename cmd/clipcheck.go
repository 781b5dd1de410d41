package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/zhubert/codeview/internal/clipboard"
)

var clipcheckCmd = &cobra.Command{
	Use:   "clipcheck",
	Short: "Check that the native clipboard is reachable",
	Long: `Writes a probe string to the system clipboard and reads it back.

The browser also copies through the terminal (OSC 52), so copying can still
work over SSH when this check fails.`,
	Args:   cobra.NoArgs,
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClipcheck(os.Stdout, clipboard.WriteText, clipboard.ReadText)
	},
}

func init() {
	rootCmd.AddCommand(clipcheckCmd)
}

func runClipcheck(out io.Writer, write func(string) error, read func() (string, error)) error {
	probe := "codeview-clipcheck-" + uuid.NewString()

	fmt.Fprintln(out, "Testing clipboard write...")
	if err := write(probe); err != nil {
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	fmt.Fprintln(out, "Testing clipboard read...")
	got, err := read()
	if err != nil {
		return fmt.Errorf("clipboard read failed: %w", err)
	}
	if got != probe {
		return fmt.Errorf("clipboard returned %q, want %q", got, probe)
	}

	fmt.Fprintln(out, "Clipboard OK")
	return nil
}

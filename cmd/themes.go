package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhubert/codeview/internal/ui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the available UI themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printThemes(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

// printThemes writes one theme per line, marking the active one.
func printThemes(w io.Writer) {
	current := ui.CurrentThemeName()
	for _, name := range ui.ThemeNames() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-12s %s\n", marker, name, ui.GetTheme(name).Name)
	}
}

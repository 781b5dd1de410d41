package cmd

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/codeview/internal/app"
	"github.com/zhubert/codeview/internal/codeclient"
	"github.com/zhubert/codeview/internal/config"
	"github.com/zhubert/codeview/internal/errors"
	"github.com/zhubert/codeview/internal/logger"
	"github.com/zhubert/codeview/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	serverURL             string
	themeName             string
	requestTimeout        time.Duration
	generationIndex       int
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "codeview [session-id]",
	Short: "Browse the code files generated in a chat session",
	Long: `codeview fetches the code files a chat session produced and shows them in a
terminal browser: a file sidebar on the left and the highlighted source on the
right, with line numbers and a copy-to-clipboard action.

Without a session id the most recently opened session is used. Press "o"
inside the browser to open another one.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.codeview/config.json)")

	rootCmd.Flags().StringVarP(&serverURL, "server", "s", "", "Code API root URL (overrides server_url)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "UI theme (see `codeview themes`)")
	rootCmd.Flags().DurationVar(&requestTimeout, "timeout", 0, "Request timeout, e.g. 10s (overrides request_timeout)")
	rootCmd.Flags().IntVarP(&generationIndex, "generation", "g", -1, "Generation index to show in the header")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("codeview %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("codeview %s\n", version)
}

// loadConfig reads the config file named by --config, or the default one.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// applyFlags overrides config values with the flags given on the command line.
// Overrides only last for this run; they are not written back.
func applyFlags(cfg *config.Config) error {
	if serverURL != "" {
		if err := config.ValidateServerURL(serverURL); err != nil {
			return err
		}
		cfg.SetServerURL(serverURL)
	}
	if themeName != "" {
		if !ui.IsValidTheme(themeName) {
			return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q", themeName))
		}
		cfg.SetTheme(themeName)
	}
	if requestTimeout < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("timeout must be positive, got %s", requestTimeout))
	}
	if requestTimeout > 0 {
		cfg.SetRequestTimeout(requestTimeout)
	}
	return cfg.Validate()
}

// startSession picks the session to open: the argument if given, otherwise
// the most recently opened one.
func startSession(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		if id := strings.TrimSpace(args[0]); id != "" {
			return id
		}
	}
	return cfg.LastSession()
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	client := codeclient.New(cfg.GetServerURL(), codeclient.WithTimeout(cfg.GetRequestTimeout()))
	logger.WithComponent("cmd").Info("starting",
		"version", version,
		"server", client.BaseURL(),
		"generation", generationIndex)

	// Create and run the app
	m := app.New(cfg, client, version)
	m.SetStartSession(startSession(args, cfg))
	m.SetGenerationIndex(generationIndex)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arniber21/portfolio/internal/app"
	"github.com/arniber21/portfolio/internal/config"
	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/logging"
	"github.com/arniber21/portfolio/internal/theme"
)

var (
	version string

	contentFile string
	themeFlag   string
	noMouse     bool
	logFile     string
	logLevel    string
)

var log = logging.New("cli")

func setVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Browse the portfolio in your terminal",
	Long: `portfolio - projects, work, education, writing and links in a terminal UI.

Click or tab between sections, hover or j/k through items, press enter on a
project or post to open its details. Press ? inside the UI for every key.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		closeLog, err := configureLogging(logFile, logLevel)
		if err != nil {
			return err
		}
		defer closeLog()

		cfg, err := config.LoadOrDefault()
		if err != nil {
			return err
		}
		portfolio, err := loadContent(cfg)
		if err != nil {
			return err
		}
		mode := cfg.ThemeMode()
		if themeFlag != "" {
			if mode, err = theme.Parse(themeFlag); err != nil {
				return err
			}
		}

		m := app.New(app.Options{Content: portfolio, Theme: mode})
		defer m.Close()

		opts := []tea.ProgramOption{tea.WithAltScreen()}
		if !noMouse && !cfg.DisableMouse {
			opts = append(opts, tea.WithMouseAllMotion())
		}
		log.Info("starting ui", "theme", string(mode), "mouse", !noMouse && !cfg.DisableMouse)
		if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
			m.Teardown()
			return fmt.Errorf("run ui: %w", err)
		}
		return nil
	},
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "portfolio JSON file (defaults to the built-in content)")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "theme for this session: light, dark or system")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse tracking")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(themeCmd, listCmd, versionCmd)
}

// loadContent resolves the content file from the flag, then the config.
func loadContent(cfg config.Config) (content.Portfolio, error) {
	path := cfg.ContentFile
	if contentFile != "" {
		normalized, err := config.NormalizePath(contentFile)
		if err != nil {
			return content.Portfolio{}, fmt.Errorf("content file: %w", err)
		}
		path = normalized
	}
	return content.Load(path)
}

// configureLogging points the shared logger at path. Without a path logs
// are discarded, since the UI owns the terminal.
func configureLogging(path, level string) (func(), error) {
	if path == "" {
		logging.Configure(io.Discard, level)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.Configure(f, level)
	return func() {
		logging.Configure(io.Discard, "")
		_ = f.Close()
	}, nil
}

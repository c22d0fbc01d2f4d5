package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arniber21/portfolio/internal/config"
	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|system]",
	Short:     "Show or save the theme preference",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return showTheme(cmd)
		}
		mode, err := theme.Parse(args[0])
		if err != nil {
			return err
		}
		if err := config.SaveTheme(mode); err != nil {
			return fmt.Errorf("save theme: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "THEME %s\n", mode)
		return nil
	},
}

// showTheme prints the saved preference, marking it when nothing was saved.
func showTheme(cmd *cobra.Command) error {
	saved, err := config.Exists()
	if err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	if !saved {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", cfg.ThemeMode())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), cfg.ThemeMode())
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list <section>",
	Short: "Print one section: about, projects, work, education, writing or connect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		section, err := content.ParseSection(args[0])
		if err != nil {
			return err
		}
		cfg, err := config.LoadOrDefault()
		if err != nil {
			return err
		}
		portfolio, err := loadContent(cfg)
		if err != nil {
			return err
		}
		printEntries(cmd, portfolio.Entries(section))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s\n", version)
	},
}

func printEntries(cmd *cobra.Command, entries []content.Entry) {
	out := cmd.OutOrStdout()
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, e.Title)
		if e.Meta != "" {
			fmt.Fprintf(out, "  %s\n", e.Meta)
		}
		if body := strings.TrimSpace(e.Body); body != "" {
			fmt.Fprintf(out, "  %s\n", body)
		}
	}
}

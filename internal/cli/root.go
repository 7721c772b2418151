// Package cli wires configuration, storage and the remote clients into the
// noor commands.
package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glabrego/noor-cli/internal/tui"
)

const startupTimeout = 15 * time.Second

// RootOptions holds the persistent flags shared by every command.
type RootOptions struct {
	ConfigPath string
	DBPath     string
	LogFile    string
}

// NewRootCommand creates the noor command. Without a subcommand it runs
// the reader.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "noor",
		Short:         "Quran reader and hadith companion for the terminal",
		Long:          "Browse the chapters of the Quran, keep a reading bookmark and ask for verse explanations and hadith.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReader(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file (default $NOOR_CONFIG)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "SQLite database path")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "log file path")

	cmd.AddCommand(NewChaptersCommand(opts))
	cmd.AddCommand(NewBookmarkCommand(opts))
	cmd.AddCommand(NewHadithCommand(opts))

	return cmd
}

func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func runReader(cmd *cobra.Command, opts *RootOptions) error {
	rt, err := Bootstrap(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), startupTimeout)
	bm := rt.Service.LoadBookmark(ctx)
	cancel()

	rt.Logger.Info().Bool("bookmark", bm != nil).Bool("gemini", rt.Config.HasGeminiKey()).Msg("starting reader")

	program := tea.NewProgram(tui.NewModel(rt.Service, bm), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

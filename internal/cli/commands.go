package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/glabrego/noor-cli/internal/reader"
)

const (
	contentTimeout = 10 * time.Second
	modelTimeout   = 60 * time.Second
)

func NewChaptersCommand(rootOpts *RootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "Print the chapter index",
		Long: `Print the 114 chapters with their Arabic and English names, revelation
type and verse count. --filter matches the Arabic name, the English name
or the chapter number.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := Bootstrap(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), contentTimeout)
			defer cancel()

			chapters := rt.Service.Chapters(ctx)
			if len(chapters) == 0 {
				return errors.New("could not load the chapter index, check your connection")
			}
			WriteChapters(cmd.OutOrStdout(), reader.FilterChapters(chapters, filter))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only chapters matching this term")
	return cmd
}

func NewBookmarkCommand(rootOpts *RootOptions) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Print or clear the saved reading position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := Bootstrap(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), contentTimeout)
			defer cancel()

			if clear {
				if err := rt.Service.ClearBookmark(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "bookmark cleared")
				return nil
			}
			WriteBookmark(cmd.OutOrStdout(), rt.Service.LoadBookmark(ctx))
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove the saved bookmark")
	return cmd
}

func NewHadithCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hadith [topic]",
		Short: "Print one hadith with its explanation",
		Long: `Ask the model for an authentic hadith about topic, or a random one when
no topic is given. Requires a Gemini API key.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := Bootstrap(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer rt.Close()

			if !rt.Config.HasGeminiKey() {
				return errors.New("no Gemini API key configured: set NOOR_GEMINI_API_KEY")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), modelTimeout)
			defer cancel()

			h := rt.Service.Hadith(ctx, strings.TrimSpace(strings.Join(args, " ")))
			if h == nil {
				return errors.New("could not fetch a hadith, try again")
			}
			WriteHadith(cmd.OutOrStdout(), *h)
			return nil
		},
	}
	return cmd
}

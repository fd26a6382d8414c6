package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/wttrbot/internal/adapters/render/console"
	"github.com/bnema/wttrbot/internal/adapters/render/irctext"
	"github.com/bnema/wttrbot/internal/domain"
)

func newPreviewCmd(app *app) *cobra.Command {
	var (
		query string
		asIRC bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Fetch a forecast and render it without connecting to IRC",
		RunE: func(cmd *cobra.Command, _ []string) error {
			canonical := domain.CanonicalArgument(query)

			forecast, err := app.provider.Fetch(cmd.Context(), canonical)
			if err != nil {
				return fmt.Errorf("fetch forecast: %w", err)
			}

			out := console.Render(forecast)
			if asIRC {
				out = irctext.Render(forecast)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "Place name or US zip code")
	cmd.Flags().BoolVar(&asIRC, "irc", false, "Print the raw IRC-decorated line instead of the terminal view")
	_ = cmd.MarkFlagRequired("query")

	return cmd
}

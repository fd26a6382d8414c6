package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wttrbot",
		Short:         "IRC weather bot answering !w commands with wttr.in forecasts",
		Long:          "wttrbot joins one IRC channel and replies to !w commands with a color-decorated three-day forecast. It remembers each user's last location for the lifetime of the process.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newPreviewCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}

package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/wttrbot/internal/adapters/relay/ircrelay"
	"github.com/bnema/wttrbot/internal/adapters/render/irctext"
	"github.com/bnema/wttrbot/internal/application"
	"github.com/bnema/wttrbot/internal/ports"
)

func newRunCmd(app *app) *cobra.Command {
	var (
		server  string
		port    int
		channel string
		nick    string
		useTLS  bool
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Connect to IRC and answer !w weather commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if server == "" {
				return errors.New("server is required (flag --server, profile, or WTTRBOT_SERVER)")
			}
			if channel == "" {
				return errors.New("channel is required (flag --channel, profile, or WTTRBOT_CHANNEL)")
			}

			log, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			dialer := &ircrelay.Dialer{
				Server:  server,
				Port:    port,
				UseTLS:  useTLS,
				Nick:    nick,
				Channel: channel,
				Log:     log,
			}
			resolver := application.NewResolver(app.store)
			dispatcher := application.NewDispatcher(resolver, app.provider, irctext.Render, log)
			supervisor := application.NewSupervisor(dialer, dispatcher, ports.SystemClock{}, log)

			log.Info("starting",
				zap.String("server", server),
				zap.Int("port", port),
				zap.String("channel", channel),
				zap.String("nick", nick),
				zap.Bool("tls", useTLS))

			err = supervisor.Run(ctx)
			if errors.Is(err, context.Canceled) {
				log.Info("shutting down")
				return nil
			}
			return err
		},
	}

	// Flag defaults come from the profile, so flags > profile > built-ins.
	cmd.Flags().StringVar(&server, "server", app.profile.Server, "IRC server address")
	cmd.Flags().IntVar(&port, "port", app.profile.Port, "IRC server port")
	cmd.Flags().StringVar(&channel, "channel", app.profile.Channel, "IRC channel to join")
	cmd.Flags().StringVar(&nick, "nick", app.profile.Nick, "Bot nickname")
	cmd.Flags().BoolVar(&useTLS, "tls", app.profile.TLS, "Use TLS for the IRC connection")
	cmd.Flags().BoolVar(&debug, "debug", false, "Console logging at debug level")

	return cmd
}

package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bnema/wttrbot/internal/domain"
	"github.com/bnema/wttrbot/internal/ports"
)

// Dispatcher classifies inbound relay events and drives the reply
// pipeline: resolve, fetch, render, chunk, send. Events are processed
// strictly one at a time, in arrival order — the location store is not
// synchronized for concurrent dispatch.
type Dispatcher struct {
	resolver *Resolver
	provider ports.ForecastProvider
	render   func(domain.Forecast) string
	limit    int
	log      *zap.Logger
}

func NewDispatcher(resolver *Resolver, provider ports.ForecastProvider, render func(domain.Forecast) string, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		resolver: resolver,
		provider: provider,
		render:   render,
		limit:    domain.ChunkLimit,
		log:      log,
	}
}

// Run consumes the session's event stream sequentially until it ends.
func (d *Dispatcher) Run(ctx context.Context, session ports.RelaySession) {
	for event := range session.Events() {
		d.HandleEvent(ctx, session, event)
	}
}

// Classify maps one relay event onto a command. Pure: only channel
// messages with an extractable sender produce a reply command.
func (d *Dispatcher) Classify(event ports.RelayEvent) domain.Command {
	if event.Kind != ports.EventChannelMessage {
		return domain.Ignored()
	}
	if event.Sender == "" {
		return domain.Ignored()
	}
	return domain.Reply(event.Sender, event.Channel, event.Text)
}

// HandleEvent processes one inbound event to completion. A non-matching
// command is a silent no-op.
func (d *Dispatcher) HandleEvent(ctx context.Context, session ports.RelaySession, event ports.RelayEvent) {
	command := d.Classify(event)
	if command.Kind != domain.CommandReply {
		return
	}
	query, ok := d.resolver.Resolve(command.Text, command.Requester)
	if !ok {
		return
	}
	d.reply(ctx, session, command, query)
}

func (d *Dispatcher) reply(ctx context.Context, session ports.RelaySession, command domain.Command, query domain.Query) {
	forecast, err := d.provider.Fetch(ctx, query)
	if err != nil {
		d.log.Warn("weather fetch failed",
			zap.String("query", string(query)),
			zap.Error(err))
		message := fmt.Sprintf("Error: Could not get weather data for %s. %s", query, err)
		if sendErr := session.SendChannelMessage(command.Channel, message); sendErr != nil {
			d.log.Warn("send error reply", zap.Error(sendErr))
		}
		return
	}

	full := fmt.Sprintf("%s's weather: %s", command.Requester, d.render(forecast))
	for chunk := range domain.Chunks(full, d.limit) {
		if err := session.SendChannelMessage(command.Channel, chunk); err != nil {
			d.log.Warn("send reply chunk", zap.Error(err))
			return
		}
	}
}

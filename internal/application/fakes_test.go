package application

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/wttrbot/internal/domain"
	"github.com/bnema/wttrbot/internal/ports"
)

type fakeStore struct {
	entries map[string]domain.Query
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string]domain.Query{}}
}

func (s *fakeStore) Get(nick string) (domain.Query, bool) {
	query, ok := s.entries[nick]
	return query, ok
}

func (s *fakeStore) Put(nick string, query domain.Query) {
	s.entries[nick] = query
}

type sentMessage struct {
	channel string
	text    string
}

type fakeSession struct {
	events  chan ports.RelayEvent
	sent    []sentMessage
	sendErr error
	err     error
	closed  bool
}

// newFakeSession delivers the given events and then ends the stream.
func newFakeSession(events ...ports.RelayEvent) *fakeSession {
	ch := make(chan ports.RelayEvent, len(events))
	for _, event := range events {
		ch <- event
	}
	close(ch)
	return &fakeSession{events: ch}
}

func (s *fakeSession) Events() <-chan ports.RelayEvent { return s.events }

func (s *fakeSession) Err() error { return s.err }

func (s *fakeSession) SendChannelMessage(channel, text string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, sentMessage{channel: channel, text: text})
	return nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

type fakeProvider struct {
	forecast domain.Forecast
	err      error
	queries  []domain.Query
}

func (p *fakeProvider) Fetch(_ context.Context, query domain.Query) (domain.Forecast, error) {
	p.queries = append(p.queries, query)
	if p.err != nil {
		return domain.Forecast{}, p.err
	}
	return p.forecast, nil
}

// fakeDialer returns its sessions in order; a nil entry, or running past
// the end, is a dial failure.
type fakeDialer struct {
	sessions []ports.RelaySession
	calls    int
}

func (d *fakeDialer) Dial(context.Context) (ports.RelaySession, error) {
	index := d.calls
	d.calls++
	if index < len(d.sessions) && d.sessions[index] != nil {
		return d.sessions[index], nil
	}
	return nil, errors.New("connection refused")
}

// fakeClock records every requested delay and cancels the run after
// cancelAfter sleeps, so an otherwise endless supervisor loop terminates.
type fakeClock struct {
	delays      []time.Duration
	cancelAfter int
	cancel      context.CancelFunc
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.delays = append(c.delays, d)
	if len(c.delays) >= c.cancelAfter {
		c.cancel()
	}
	return ctx.Err()
}

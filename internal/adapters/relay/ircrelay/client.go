// Package ircrelay implements the relay session port over IRC, TLS by
// default.
package ircrelay

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/irc.v4"

	"github.com/bnema/wttrbot/internal/ports"
)

const (
	defaultDialTimeout = 30 * time.Second

	// eventBuffer bounds inbound events queued while the dispatcher is
	// busy with a reply. When it fills, the read loop blocks, which is
	// the intended backpressure for strictly sequential processing.
	eventBuffer = 32
)

// Dialer connects to one IRC server, identifies, and joins one channel.
type Dialer struct {
	Server      string
	Port        int
	UseTLS      bool
	Nick        string
	Channel     string
	DialTimeout time.Duration
	// TLSConfig overrides the default (system roots, server name from
	// Server). Used by tests.
	TLSConfig *tls.Config
	Log       *zap.Logger
}

var _ ports.RelayDialer = (*Dialer)(nil)

func (d *Dialer) Dial(ctx context.Context) (ports.RelaySession, error) {
	timeout := d.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	netDialer := &net.Dialer{Timeout: timeout}
	addr := net.JoinHostPort(d.Server, strconv.Itoa(d.Port))

	var conn net.Conn
	var err error
	if d.UseTLS {
		tlsDialer := &tls.Dialer{NetDialer: netDialer, Config: d.TLSConfig}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = netDialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return newSession(conn, d.Nick, d.Channel, log), nil
}

type session struct {
	irc     *irc.Conn
	conn    net.Conn
	nick    string
	channel string
	events  chan ports.RelayEvent
	log     *zap.Logger

	// writeMu serializes outbound messages: replies come from the
	// dispatcher goroutine while PONGs come from the read loop.
	writeMu   sync.Mutex
	closeOnce sync.Once
	err       error
}

var _ ports.RelaySession = (*session)(nil)

func newSession(conn net.Conn, nick, channel string, log *zap.Logger) *session {
	s := &session{
		irc:     irc.NewConn(conn),
		conn:    conn,
		nick:    nick,
		channel: channel,
		events:  make(chan ports.RelayEvent, eventBuffer),
		log:     log,
	}
	go s.run()
	return s
}

// run owns the read loop. When it returns for any reason the event stream
// is closed and the terminal error, if any, becomes visible through Err.
func (s *session) run() {
	err := s.readLoop()
	if err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, io.EOF) {
		s.err = err
	}
	close(s.events)
	_ = s.conn.Close()
}

// readLoop registers with the server and then consumes inbound lines until
// the transport fails or ends. A line that fails to parse is logged and
// skipped; only transport errors tear the session down.
func (s *session) readLoop() error {
	if err := s.register(); err != nil {
		return err
	}
	for {
		m, err := s.irc.ReadMessage()
		if err != nil {
			if isParseError(err) {
				s.log.Warn("skipping unparseable line", zap.Error(err))
				continue
			}
			return err
		}
		s.handle(m)
	}
}

func (s *session) register() error {
	if err := s.write(&irc.Message{Command: "NICK", Params: []string{s.nick}}); err != nil {
		return fmt.Errorf("send nick: %w", err)
	}
	if err := s.write(&irc.Message{Command: "USER", Params: []string{s.nick, "0", "*", s.nick}}); err != nil {
		return fmt.Errorf("send user: %w", err)
	}
	return nil
}

func (s *session) handle(m *irc.Message) {
	switch m.Command {
	case "PING":
		if err := s.write(&irc.Message{Command: "PONG", Params: m.Params}); err != nil {
			s.log.Warn("send pong", zap.Error(err))
		}
	case "001": // RPL_WELCOME
		s.log.Info("registered, joining channel", zap.String("channel", s.channel))
		if err := s.write(&irc.Message{Command: "JOIN", Params: []string{s.channel}}); err != nil {
			s.log.Warn("join channel", zap.Error(err))
		}
	case "PRIVMSG":
		if event, ok := eventFromMessage(m); ok {
			s.events <- event
		}
	}
}

// isParseError reports whether err came from parsing one malformed line
// rather than from the transport; the line is already consumed, so the
// stream can continue.
func isParseError(err error) bool {
	return errors.Is(err, irc.ErrZeroLengthMessage) ||
		errors.Is(err, irc.ErrMissingDataAfterPrefix) ||
		errors.Is(err, irc.ErrMissingDataAfterTags) ||
		errors.Is(err, irc.ErrMissingCommand)
}

// eventFromMessage maps an inbound PRIVMSG onto a relay event. Sender
// stays empty when the prefix carries no name, which the dispatcher treats
// as not extractable.
func eventFromMessage(m *irc.Message) (ports.RelayEvent, bool) {
	if m.Command != "PRIVMSG" || len(m.Params) < 2 {
		return ports.RelayEvent{}, false
	}
	event := ports.RelayEvent{
		Kind:    ports.EventChannelMessage,
		Channel: m.Params[0],
		Text:    m.Trailing(),
	}
	if m.Prefix != nil {
		event.Sender = m.Prefix.Name
	}
	return event, true
}

func (s *session) Events() <-chan ports.RelayEvent { return s.events }

// Err is meaningful once Events has been closed.
func (s *session) Err() error { return s.err }

func (s *session) SendChannelMessage(channel, text string) error {
	return s.write(&irc.Message{
		Command: "PRIVMSG",
		Params:  []string{channel, text},
	})
}

func (s *session) write(m *irc.Message) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.irc.WriteMessage(m)
}

func (s *session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.conn.Close()
	})
	return err
}

package ports

import "context"

// EventKind tags an inbound relay event before classification.
type EventKind int

const (
	EventOther EventKind = iota
	EventChannelMessage
)

// RelayEvent is one inbound line from the relay, already parsed. Sender is
// empty when the event's origin metadata carried no nickname.
type RelayEvent struct {
	Kind    EventKind
	Sender  string
	Channel string
	Text    string
}

// RelaySession is one connected, identified instance of the relay
// protocol. Events yields inbound events until the stream ends for any
// reason; after it is closed, Err reports the terminal stream error, nil
// for a clean end.
type RelaySession interface {
	Events() <-chan RelayEvent
	Err() error
	SendChannelMessage(channel, text string) error
	Close() error
}

// RelayDialer establishes one session: transport handshake plus protocol
// identification.
type RelayDialer interface {
	Dial(ctx context.Context) (RelaySession, error)
}

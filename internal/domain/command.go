package domain

// CommandKind discriminates what the dispatcher decided about one inbound
// relay event.
type CommandKind int

const (
	CommandIgnored CommandKind = iota
	CommandReply
)

// Command is the classification of a single inbound relay event. It is
// produced per event and consumed immediately, never retained.
type Command struct {
	Kind      CommandKind
	Requester string
	Channel   string
	Text      string
}

// Ignored marks an event that produces no reply.
func Ignored() Command {
	return Command{Kind: CommandIgnored}
}

// Reply marks a channel message that may resolve into a weather query.
func Reply(requester, channel, text string) Command {
	return Command{
		Kind:      CommandReply,
		Requester: requester,
		Channel:   channel,
		Text:      text,
	}
}

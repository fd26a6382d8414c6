package application

import (
	"regexp"

	"github.com/bnema/wttrbot/internal/domain"
	"github.com/bnema/wttrbot/internal/ports"
)

// triggerToken is the literal command prefix that begins every recognized
// user command.
const triggerToken = "!w"

// The patterns are deliberately unanchored: the trigger fires even when it
// appears mid-line.
var (
	reLocation = regexp.MustCompile(`!w ([a-zA-Z,\s]+)`)
	reZip      = regexp.MustCompile(`!w (\d+)`)
	reNick     = regexp.MustCompile(`!w ([^\d\s]+)`)
)

// Resolver turns command text plus per-user memory into a concrete weather
// query. It is the only writer of the location store.
type Resolver struct {
	store ports.LocationStore
}

func NewResolver(store ports.LocationStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve applies the command grammar in strict precedence order, first
// match wins:
//
//  1. bare trigger: repeat the requester's stored query, no mutation
//  2. place name (letters, commas, whitespace): canonicalize, store, return
//  3. digits: zip query "<digits>,+USA", store, return
//  4. single token without digits or whitespace: another user's nick,
//     return their stored query, no mutation
//
// Rule 2's character class accepts any purely alphabetic word, so a bare
// nick argument like "!w alice" is treated as a place name and rule 4 only
// fires for tokens rule 2 rejects (e.g. ones starting with a symbol).
// Inherited behavior, kept on purpose and pinned by tests.
func (r *Resolver) Resolve(text, requester string) (domain.Query, bool) {
	if text == triggerToken {
		return r.store.Get(requester)
	}
	if m := reLocation.FindStringSubmatch(text); m != nil {
		query := domain.CanonicalPlace(m[1])
		r.store.Put(requester, query)
		return query, true
	}
	if m := reZip.FindStringSubmatch(text); m != nil {
		query := domain.CanonicalZip(m[1])
		r.store.Put(requester, query)
		return query, true
	}
	if m := reNick.FindStringSubmatch(text); m != nil {
		return r.store.Get(m[1])
	}
	return "", false
}

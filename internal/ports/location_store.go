package ports

import "github.com/bnema/wttrbot/internal/domain"

// LocationStore remembers the last resolved query per nick. Entries live
// for the process lifetime; nothing is persisted across restarts.
type LocationStore interface {
	Get(nick string) (domain.Query, bool)
	Put(nick string, query domain.Query)
}

package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wttrbot/internal/domain"
)

func TestResolveBareTriggerWithoutMemory(t *testing.T) {
	resolver := NewResolver(newFakeStore())

	query, ok := resolver.Resolve("!w", "alice")

	assert.False(t, ok)
	assert.Empty(t, query)
}

func TestResolvePlaceNameStoresQueryAndBareTriggerRepeatsIt(t *testing.T) {
	store := newFakeStore()
	resolver := NewResolver(store)

	query, ok := resolver.Resolve("!w New York, NY", "alice")

	require.True(t, ok)
	assert.Equal(t, domain.Query("New+York++NY"), query)
	assert.Equal(t, domain.Query("New+York++NY"), store.entries["alice"])

	repeated, ok := resolver.Resolve("!w", "alice")
	require.True(t, ok)
	assert.Equal(t, query, repeated)
}

func TestResolveZipStoresQuery(t *testing.T) {
	store := newFakeStore()
	resolver := NewResolver(store)

	query, ok := resolver.Resolve("!w 10001", "alice")

	require.True(t, ok)
	assert.Equal(t, domain.Query("10001,+USA"), query)
	assert.Equal(t, domain.Query("10001,+USA"), store.entries["alice"])
}

// A bare alphabetic token is captured by the place-name rule before the
// nick-lookup rule is ever tried: "!w bob" queries the literal place "bob"
// and overwrites the requester's memory, regardless of what bob has
// stored. Inherited precedence, pinned here.
func TestResolveSingleAlphabeticTokenIsPlaceNotNickLookup(t *testing.T) {
	store := newFakeStore()
	store.entries["bob"] = "paris"
	resolver := NewResolver(store)

	query, ok := resolver.Resolve("!w bob", "alice")

	require.True(t, ok)
	assert.Equal(t, domain.Query("bob"), query)
	assert.Equal(t, domain.Query("bob"), store.entries["alice"])
	assert.Equal(t, domain.Query("paris"), store.entries["bob"])
}

// The nick rule only fires for tokens the place-name class rejects, such
// as ones starting with a symbol.
func TestResolveNickLookupForSymbolToken(t *testing.T) {
	store := newFakeStore()
	store.entries["{dave}"] = "10001,+USA"
	resolver := NewResolver(store)

	query, ok := resolver.Resolve("!w {dave}", "alice")

	require.True(t, ok)
	assert.Equal(t, domain.Query("10001,+USA"), query)
	_, stored := store.entries["alice"]
	assert.False(t, stored, "nick lookup must not mutate the requester's memory")
}

func TestResolveNickLookupMissIsSilent(t *testing.T) {
	resolver := NewResolver(newFakeStore())

	_, ok := resolver.Resolve("!w {dave}", "alice")

	assert.False(t, ok)
}

func TestResolveTriggerMidLine(t *testing.T) {
	store := newFakeStore()
	resolver := NewResolver(store)

	query, ok := resolver.Resolve("forecast please: !w tokyo", "alice")

	require.True(t, ok)
	assert.Equal(t, domain.Query("tokyo"), query)
}

func TestResolveNoMatch(t *testing.T) {
	store := newFakeStore()
	resolver := NewResolver(store)

	for _, text := range []string{"", "hello there", "!wx", "!w!", "w 10001"} {
		_, ok := resolver.Resolve(text, "alice")
		assert.False(t, ok, "text %q must not resolve", text)
	}
	assert.Empty(t, store.entries)
}

package memcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/wttrbot/internal/domain"
)

func TestGetMissingNick(t *testing.T) {
	store := New()

	_, ok := store.Get("alice")

	assert.False(t, ok)
}

func TestPutThenGet(t *testing.T) {
	store := New()

	store.Put("alice", "94040,+USA")

	query, ok := store.Get("alice")
	require.True(t, ok)
	assert.Equal(t, domain.Query("94040,+USA"), query)
}

func TestPutOverwrites(t *testing.T) {
	store := New()

	store.Put("alice", "94040,+USA")
	store.Put("alice", "New+York++NY")

	query, ok := store.Get("alice")
	require.True(t, ok)
	assert.Equal(t, domain.Query("New+York++NY"), query)
}

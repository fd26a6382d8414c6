package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPlace(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Query
	}{
		{name: "single word unchanged", raw: "Tokyo", want: "Tokyo"},
		{name: "spaces become plus", raw: "San Francisco", want: "San+Francisco"},
		{name: "comma and space each become plus", raw: "New York, NY", want: "New+York++NY"},
		{name: "empty stays empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalPlace(tt.raw))
		})
	}
}

func TestCanonicalZip(t *testing.T) {
	assert.Equal(t, Query("10001,+USA"), CanonicalZip("10001"))
}

func TestCanonicalArgument(t *testing.T) {
	assert.Equal(t, Query("94040,+USA"), CanonicalArgument("94040"))
	assert.Equal(t, Query("San+Francisco"), CanonicalArgument("San Francisco"))
	assert.Equal(t, Query("K1A0B1"), CanonicalArgument("K1A0B1"))
	assert.Equal(t, Query(""), CanonicalArgument(""))
}

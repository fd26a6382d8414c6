package domain

import "iter"

// ChunkLimit is the maximum number of logical characters per outbound
// channel message.
const ChunkLimit = 400

// Chunks splits text into consecutive pieces of at most limit runes each.
// Counting is per rune, not per byte, so multi-byte glyphs and control
// sequences are never split mid-encoding. Concatenating all chunks in
// order reproduces text exactly; empty text yields no chunks. The sequence
// is restartable. A non-positive limit falls back to ChunkLimit.
//
// No attempt is made to keep a color/reset control pair inside one chunk:
// the relay enforces a hard line-length ceiling regardless of content, so a
// decoration sequence may open in one chunk and reset in the next.
func Chunks(text string, limit int) iter.Seq[string] {
	if limit <= 0 {
		limit = ChunkLimit
	}
	return func(yield func(string) bool) {
		runes := []rune(text)
		for start := 0; start < len(runes); start += limit {
			end := min(start+limit, len(runes))
			if !yield(string(runes[start:end])) {
				return
			}
		}
	}
}

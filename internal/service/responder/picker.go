// Package responder turns free text into canned supportive replies. Matching
// is an ordered keyword table; when nothing matches a reply is drawn from a
// pool through an injectable Picker.
package responder

import "math/rand/v2"

// Picker chooses an index in [0, n).
type Picker interface {
	IntN(n int) int
}

type randomPicker struct{}

func (randomPicker) IntN(n int) int { return rand.IntN(n) }

// RandomPicker returns a Picker backed by the global math/rand/v2 source.
func RandomPicker() Picker { return randomPicker{} }

func pick(p Picker, pool []string) string {
	return pool[p.IntN(len(pool))]
}

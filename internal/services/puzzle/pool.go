package puzzle

import (
	"github.com/mcoot/missingletters/internal/dependencies/random"
)

// Pool serves words from a fixed list so that every word is drawn once
// before any word repeats
type Pool struct {
	words  []string
	order  []string
	random random.Random
}

// NewPool creates a pool over the given words. The draw order is filled
// lazily on the first Draw.
func NewPool(words []string, rnd random.Random) *Pool {
	return &Pool{
		words:  append([]string(nil), words...),
		random: rnd,
	}
}

// RestorePool creates a pool that resumes from a saved draw order. Saved
// entries no longer in words are dropped, so a pool restored after the word
// list changed only ever draws from the current list.
func RestorePool(words, order []string, rnd random.Random) *Pool {
	p := NewPool(words, rnd)

	known := make(map[string]struct{}, len(p.words))
	for _, w := range p.words {
		known[w] = struct{}{}
	}
	for _, w := range order {
		if _, ok := known[w]; ok {
			p.order = append(p.order, w)
		}
	}
	return p
}

// Draw removes and returns the word at the end of the draw order,
// refilling it with a fresh permutation when it is empty
func (p *Pool) Draw() string {
	if len(p.words) == 0 {
		return ""
	}
	if len(p.order) == 0 {
		p.Refill()
	}
	last := len(p.order) - 1
	word := p.order[last]
	p.order = p.order[:last]
	return word
}

// Refill discards the remaining order and replaces it with a new
// permutation of the full word list
func (p *Pool) Refill() {
	order := append([]string(nil), p.words...)
	random.Shuffle(p.random, len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	p.order = order
}

// Remaining returns how many words are left in the current cycle
func (p *Pool) Remaining() int {
	return len(p.order)
}

// Order returns a copy of the remaining draw order
func (p *Pool) Order() []string {
	return append([]string(nil), p.order...)
}

// Words returns a copy of the full word list
func (p *Pool) Words() []string {
	return append([]string(nil), p.words...)
}

package engine

import (
	"math/rand"
)

// VariationPicker draws random variants from a fixed pool without
// repeating one until every variant has been used, then starts over. Each
// engine owns its pickers, so independent conversations do not share
// exhaustion history.
type VariationPicker struct {
	pool []string
	used map[int]bool
	rnd  *rand.Rand
}

// NewVariationPicker creates a picker over the given pool.
func NewVariationPicker(pool []string, rnd *rand.Rand) *VariationPicker {
	return &VariationPicker{
		pool: pool,
		used: make(map[int]bool),
		rnd:  rnd,
	}
}

// Pick returns one unused variant, resetting once the pool is exhausted.
func (p *VariationPicker) Pick() string {
	if len(p.pool) == 0 {
		return ""
	}
	if len(p.used) >= len(p.pool) {
		p.used = make(map[int]bool)
	}

	available := make([]int, 0, len(p.pool))
	for i := range p.pool {
		if !p.used[i] {
			available = append(available, i)
		}
	}

	idx := available[p.rnd.Intn(len(available))]
	p.used[idx] = true
	return p.pool[idx]
}

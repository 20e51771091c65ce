package bank

import (
	"math"
	"math/rand/v2"
)

// seedStream separates the two PCG streams so that one seed value gives one order.
const seedStream = 0x9e3779b97f4a7c15

// Select picks a working set of at most limit entries in presentation order.
// Dichotomy and factor entries keep the bank's proportion; limit <= 0 keeps
// everything. The same seed always yields the same order.
func (b *Bank) Select(limit int, seed uint64) []Entry {
	r := rand.New(rand.NewPCG(seed, seed^seedStream))

	dichotomy := b.Dichotomy()
	factor := b.Factor()
	total := len(dichotomy) + len(factor)
	if limit <= 0 || limit > total {
		limit = total
	}

	nd := int(math.Round(float64(limit) * float64(len(dichotomy)) / float64(total)))
	nf := limit - nd
	if nf > len(factor) {
		nf = len(factor)
		nd = limit - nf
	}

	shuffle(r, dichotomy)
	shuffle(r, factor)

	picked := make([]Entry, 0, limit)
	picked = append(picked, dichotomy[:nd]...)
	picked = append(picked, factor[:nf]...)
	shuffle(r, picked)
	return picked
}

// IDs lists entry ids in order.
func IDs(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	return ids
}

func shuffle(r *rand.Rand, entries []Entry) {
	r.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
}

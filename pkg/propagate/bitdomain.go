package propagate

import "math/bits"

// bitDomain is a bitset over the dense indices [0, n) of a single
// variable's original domain slice. Index i is set iff the value at
// domain[i] is still present in the reduced domain. This mirrors
// gokanlogic's BitSetDomain/BitSet representation (pkg/minikanren
// domain.go, fd.go), generalized from a contiguous [1, maxValue] value
// range to an arbitrary per-variable domain via the index/value maps
// held alongside it in varState.
//
// bitDomain is mutated in place; it is never shared between two
// variables or two propagator instances, so in-place mutation carries no
// aliasing hazard.
type bitDomain struct {
	n     int
	words []uint64
}

// newFullBitDomain returns a bitDomain with all n indices set.
func newFullBitDomain(n int) bitDomain {
	d := bitDomain{n: n, words: make([]uint64, (n+63)/64)}
	for i := 0; i < n; i++ {
		d.words[i/64] |= 1 << uint(i%64)
	}
	return d
}

func (d *bitDomain) has(i int) bool {
	if i < 0 || i >= d.n {
		return false
	}
	return d.words[i/64]&(1<<uint(i%64)) != 0
}

// remove clears index i. Returns true if the domain became empty.
func (d *bitDomain) remove(i int) (wipedOut bool) {
	if d.has(i) {
		d.words[i/64] &^= 1 << uint(i%64)
	}
	return d.count() == 0
}

func (d *bitDomain) count() int {
	c := 0
	for _, w := range d.words {
		c += bits.OnesCount64(w)
	}
	return c
}

func (d *bitDomain) isSingleton() bool { return d.count() == 1 }

// singletonIndex returns the sole set index. Behavior is undefined if
// the domain is not a singleton.
func (d *bitDomain) singletonIndex() int {
	for wi, w := range d.words {
		if w == 0 {
			continue
		}
		return wi*64 + bits.TrailingZeros64(w)
	}
	return -1
}

// indices calls f for each set index in ascending order, matching the
// order values appear in the variable's original domain — callers rely
// on this to make weighted value selection reproducible under a fixed
// seed.
func (d *bitDomain) indices(f func(i int)) {
	for wi, w := range d.words {
		for w != 0 {
			t := w & -w
			off := bits.TrailingZeros64(w)
			f(wi*64 + off)
			w ^= t
		}
	}
}

func (d *bitDomain) clone() bitDomain {
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return bitDomain{n: d.n, words: words}
}

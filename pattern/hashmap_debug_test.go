//go:build patterndebug

package pattern

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordMaskMapProbeBound(t *testing.T) {
	require.True(t, debugProbes)

	r := rand.New(rand.NewSource(5))
	keySets := map[string]func(i int) uint64{
		"random":   func(int) uint64 { return r.Uint64() | 1<<8 },
		"high-bit": func(int) uint64 { return 1<<63 | r.Uint64()&^(mapSize-1) },
		"dense":    func(i int) uint64 { return uint64(256 + i*mapSize) },
	}

	for name, next := range keySets {
		for _, n := range []int{mapSize - 1, mapSize} {
			for round := 0; round < 50; round++ {
				var m WordMaskMap
				seen := map[uint64]bool{}
				for i := 0; len(seen) < n; i++ {
					k := next(i)
					if seen[k] {
						continue
					}
					seen[k] = true
					m.Insert(k, i%64)
				}
				require.Equal(t, n, m.Len())

				assert.NotPanics(t, func() {
					for i := 0; i < 64; i++ {
						k := r.Uint64()
						if seen[k] {
							continue
						}
						if got := m.Get(k); got != 0 {
							t.Errorf("%s/%d: Get(%#x) = %#x, want 0", name, n, k, got)
						}
					}
					for k := range seen {
						if m.Get(k) == 0 {
							t.Errorf("%s/%d: Get(%#x) = 0", name, n, k)
						}
					}
				}, "%s/%d", name, n)
			}
		}
	}
}

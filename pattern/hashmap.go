package pattern

const (
	mapSize = 128

	// maxProbes bounds the probe loop in debug builds. Once perturb has
	// shifted down to zero (at most 13 rounds for a 64-bit key) the
	// recurrence i = 5i+1 mod 128 visits every slot, so 2*mapSize is never
	// reached by a map with a free slot.
	maxProbes = 2 * mapSize
)

type mapElem struct {
	key   uint64
	value uint64
}

// WordMaskMap is a fixed-size open-addressing map from a character code to a
// 64-bit mask. A slot with a zero value is empty, so masks are only ever
// OR'ed in and never cleared.
//
// The map holds at most 128 distinct keys. The zero value is an empty map.
type WordMaskMap struct {
	m [mapSize]mapElem
	n int
}

// Insert sets bit pos in the mask stored for key.
func (m *WordMaskMap) Insert(key uint64, pos int) {
	m.InsertMask(key, bitAt(pos))
}

// InsertMask ORs mask into the mask stored for key.
func (m *WordMaskMap) InsertMask(key uint64, mask uint64) {
	if mask == 0 {
		return
	}
	var i int
	if m.n == mapSize {
		if i = m.indexOf(key); i < 0 {
			panic("pattern: WordMaskMap capacity exceeded")
		}
	} else {
		i = m.lookup(key)
	}
	if m.m[i].value == 0 {
		m.n++
		m.m[i].key = key
	}
	m.m[i].value |= mask
}

// Get returns the mask stored for key, or 0 if key was never inserted.
func (m *WordMaskMap) Get(key uint64) uint64 {
	if m.n == mapSize {
		if i := m.indexOf(key); i >= 0 {
			return m.m[i].value
		}
		return 0
	}
	return m.m[m.lookup(key)].value
}

func (m *WordMaskMap) Len() int {
	return m.n
}

// lookup returns the slot holding key, or the empty slot where key belongs.
// Collisions are resolved with the CPython dict perturbation scheme. The map
// must have a free slot unless key is present.
func (m *WordMaskMap) lookup(key uint64) int {
	i := key % mapSize
	if m.m[i].value == 0 || m.m[i].key == key {
		return int(i)
	}

	perturb := key
	for probes := 1; ; probes++ {
		i = (i*5 + perturb + 1) % mapSize
		if m.m[i].value == 0 || m.m[i].key == key {
			return int(i)
		}
		perturb >>= 5

		if debugProbes && probes > maxProbes {
			panic("pattern: WordMaskMap probe sequence did not terminate")
		}
	}
}

// indexOf is the lookup for a full map, where the probe loop has no empty
// slot to stop at. It returns -1 if key is absent.
func (m *WordMaskMap) indexOf(key uint64) int {
	for i := range m.m {
		if m.m[i].key == key {
			return i
		}
	}
	return -1
}

func bitAt(pos int) uint64 {
	if uint(pos) >= 64 {
		panic("pattern: bit position out of range")
	}
	return 1 << uint(pos)
}

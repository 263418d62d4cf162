package keymaps

// BiMap is a one-to-one mapping that can be queried from either side.
// Inserting a pair removes any existing pair that shares its left or its
// right value, so the map stays a bijection.
type BiMap[L, R comparable] struct {
	byLeft  map[L]R
	byRight map[R]L
}

// NewBiMap returns an empty BiMap.
func NewBiMap[L, R comparable]() *BiMap[L, R] {
	return &BiMap[L, R]{
		byLeft:  map[L]R{},
		byRight: map[R]L{},
	}
}

// Insert adds the pair (l, r), evicting pairs that collide on either side.
func (m *BiMap[L, R]) Insert(l L, r R) {
	if old, ok := m.byLeft[l]; ok {
		delete(m.byRight, old)
	}
	if old, ok := m.byRight[r]; ok {
		delete(m.byLeft, old)
	}
	m.byLeft[l] = r
	m.byRight[r] = l
}

// ByLeft returns the right value paired with l.
func (m *BiMap[L, R]) ByLeft(l L) (R, bool) {
	r, ok := m.byLeft[l]
	return r, ok
}

// ByRight returns the left value paired with r.
func (m *BiMap[L, R]) ByRight(r R) (L, bool) {
	l, ok := m.byRight[r]
	return l, ok
}

// Len returns the number of pairs.
func (m *BiMap[L, R]) Len() int { return len(m.byLeft) }

// Each calls fn for every pair in unspecified order.
func (m *BiMap[L, R]) Each(fn func(l L, r R)) {
	for l, r := range m.byLeft {
		fn(l, r)
	}
}

type pair[L, R any] struct {
	l L
	r R
}

func biMapOf[L, R comparable](pairs []pair[L, R]) *BiMap[L, R] {
	m := NewBiMap[L, R]()
	for _, p := range pairs {
		m.Insert(p.l, p.r)
	}
	return m
}

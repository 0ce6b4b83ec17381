package window

// selectable is a map with one selected key.
type selectable[K comparable, V any] struct {
	items   map[K]V
	current K
}

func newSelectable[K comparable, V any](current K) *selectable[K, V] {
	return &selectable[K, V]{items: make(map[K]V), current: current}
}

func (s *selectable[K, V]) put(k K, v V) {
	s.items[k] = v
}

func (s *selectable[K, V]) get(k K) (V, bool) {
	v, ok := s.items[k]
	return v, ok
}

func (s *selectable[K, V]) selected() (V, bool) {
	return s.get(s.current)
}

func (s *selectable[K, V]) selectKey(k K) {
	s.current = k
}

package sim

// Set is a sparse-set component storage keyed by Entity. The dense entity
// slice preserves insertion order, which keeps per-tick iteration
// deterministic.
type Set[T any] struct {
	dense  []Entity
	values []T
	sparse []int
}

// Has reports whether e has a component in this set.
func (s *Set[T]) Has(e Entity) bool {
	if s == nil || e == 0 || int(e)-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[e-1]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx] == e
}

// Get returns the component for e, or the zero value when absent.
func (s *Set[T]) Get(e Entity) (T, bool) {
	var zero T
	if !s.Has(e) {
		return zero, false
	}
	return s.values[s.sparse[e-1]], true
}

// Set inserts or updates the component for e.
func (s *Set[T]) Set(e Entity, v T) {
	if s == nil || e == 0 {
		return
	}
	for int(e)-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(e) {
		s.values[s.sparse[e-1]] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[e-1] = len(s.dense) - 1
}

// Remove deletes the component for e if present.
func (s *Set[T]) Remove(e Entity) {
	if !s.Has(e) {
		return
	}
	idx := s.sparse[e-1]
	last := len(s.dense) - 1
	lastEnt := s.dense[last]

	s.dense[idx] = s.dense[last]
	s.values[idx] = s.values[last]
	s.sparse[lastEnt-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e-1] = -1
}

// Entities returns the dense entity list in insertion order.
func (s *Set[T]) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}

// Len returns the number of stored components.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// ForEach visits every (entity, component) pair in insertion order.
func (s *Set[T]) ForEach(fn func(Entity, T)) {
	if s == nil {
		return
	}
	for i, e := range s.dense {
		fn(e, s.values[i])
	}
}

package sim

import "strconv"

// Entity is a unique simulation entity id. Zero is never a valid entity.
type Entity uint32

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e > 0
}

// entityStore allocates ids and tracks liveness. Entities are created at
// scene load (or spawned by behaviors) and destroyed only at teardown, so
// ids are never recycled.
type entityStore struct {
	next  Entity
	alive []bool
}

func (s *entityStore) create() Entity {
	s.next++
	s.alive = append(s.alive, true)
	return s.next
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.alive[e-1] = false
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	return e > 0 && int(e) <= len(s.alive) && s.alive[e-1]
}

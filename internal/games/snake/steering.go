package snake

import "sync/atomic"

// steering holds the current and pending direction in one word so that a
// direction change and a tick never observe each other half-way.
// Layout: current in bits 8..15, pending in bits 0..7.
type steering struct {
	word atomic.Uint32
}

func pack(current, pending Direction) uint32 {
	return uint32(current)<<8 | uint32(pending)
}

func (s *steering) reset(d Direction) {
	s.word.Store(pack(d, d))
}

func (s *steering) current() Direction {
	return Direction(s.word.Load() >> 8 & 0xff)
}

func (s *steering) pending() Direction {
	return Direction(s.word.Load() & 0xff)
}

// request stores d as pending unless it reverses the current direction.
func (s *steering) request(d Direction) bool {
	for {
		old := s.word.Load()
		cur := Direction(old >> 8 & 0xff)
		if d == cur.Opposite() {
			return false
		}
		if s.word.CompareAndSwap(old, pack(cur, d)) {
			return true
		}
	}
}

// advance promotes the pending direction to current and returns it.
func (s *steering) advance() Direction {
	for {
		old := s.word.Load()
		next := Direction(old & 0xff)
		if s.word.CompareAndSwap(old, pack(next, next)) {
			return next
		}
	}
}

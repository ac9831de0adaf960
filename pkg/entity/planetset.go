// pkg/entity/planetset.go
package entity

import "github.com/opd-ai/go-orbit/pkg/physics"

// Ref is a non-owning handle to a planet slot. A ref taken before the
// planet was removed no longer resolves, even if the slot is reused.
type Ref struct {
	Index      int
	Generation uint32
}

type planetSlot struct {
	planet     *Planet
	generation uint32
}

// PlanetSet stores planets in stable slot order. Iteration and nearest
// search always visit slots in ascending index, which fixes collision and
// tie-break order.
type PlanetSet struct {
	slots []planetSlot
	free  []int
	count int
}

// NewPlanetSet creates an empty set with room for capacity planets.
func NewPlanetSet(capacity int) *PlanetSet {
	return &PlanetSet{slots: make([]planetSlot, 0, capacity)}
}

// Add stores a planet and returns its ref. Freed slots are reused lowest
// index first.
func (s *PlanetSet) Add(p *Planet) Ref {
	s.count++
	if n := len(s.free); n > 0 {
		idx := s.free[0]
		s.free = s.free[1:]
		s.slots[idx].planet = p
		return Ref{Index: idx, Generation: s.slots[idx].generation}
	}
	s.slots = append(s.slots, planetSlot{planet: p})
	return Ref{Index: len(s.slots) - 1}
}

// Remove empties the slot ref points to and invalidates every ref to it.
// It reports whether anything was removed.
func (s *PlanetSet) Remove(ref Ref) bool {
	if _, ok := s.Get(ref); !ok {
		return false
	}
	slot := &s.slots[ref.Index]
	slot.planet = nil
	slot.generation++
	s.count--
	s.insertFree(ref.Index)
	return true
}

func (s *PlanetSet) insertFree(idx int) {
	i := 0
	for i < len(s.free) && s.free[i] < idx {
		i++
	}
	s.free = append(s.free, 0)
	copy(s.free[i+1:], s.free[i:])
	s.free[i] = idx
}

// Get resolves ref. ok is false when the planet has been removed.
func (s *PlanetSet) Get(ref Ref) (*Planet, bool) {
	if ref.Index < 0 || ref.Index >= len(s.slots) {
		return nil, false
	}
	slot := s.slots[ref.Index]
	if slot.planet == nil || slot.generation != ref.Generation {
		return nil, false
	}
	return slot.planet, true
}

// Len returns the number of live planets.
func (s *PlanetSet) Len() int {
	return s.count
}

// Each calls fn for every live planet in ascending slot order.
func (s *PlanetSet) Each(fn func(ref Ref, p *Planet)) {
	for i, slot := range s.slots {
		if slot.planet != nil {
			fn(Ref{Index: i, Generation: slot.generation}, slot.planet)
		}
	}
}

// Planets returns the live planets in ascending slot order.
func (s *PlanetSet) Planets() []*Planet {
	out := make([]*Planet, 0, s.count)
	s.Each(func(_ Ref, p *Planet) {
		out = append(out, p)
	})
	return out
}

// Nearest returns the planet whose centre is closest to point. Distances
// are compared squared with a strict less-than, so the lowest slot wins a
// tie. ok is false for an empty set.
func (s *PlanetSet) Nearest(point physics.Vector2D) (ref Ref, ok bool) {
	best := 0.0
	s.Each(func(r Ref, p *Planet) {
		d := p.Position.DistanceSquared(point)
		if !ok || d < best {
			ref, best, ok = r, d, true
		}
	})
	return ref, ok
}

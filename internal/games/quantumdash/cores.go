package quantumdash

import "github.com/vovakirdan/quantum-dash/internal/core"

// Core is a stationary collectible worth points.
type Core struct {
	ID   int
	Pos  core.Vec
	Size float64
}

// Rect returns the core's collision rectangle.
func (c Core) Rect() core.Rect {
	return core.RectCentered(c.Pos, c.Size)
}

// CoreSet holds the live cores. Order carries no meaning.
type CoreSet struct {
	cores  []Core
	nextID int
}

// Add inserts a core at pos and returns it with its assigned ID.
func (s *CoreSet) Add(pos core.Vec, size float64) Core {
	s.nextID++
	c := Core{ID: s.nextID, Pos: pos, Size: size}
	s.cores = append(s.cores, c)
	return c
}

// Get returns the live core with the given ID.
func (s *CoreSet) Get(id int) (Core, bool) {
	for _, c := range s.cores {
		if c.ID == id {
			return c, true
		}
	}
	return Core{}, false
}

// Remove deletes the core with the given ID. Returns false if it was not live.
func (s *CoreSet) Remove(id int) bool {
	for i, c := range s.cores {
		if c.ID == id {
			s.cores = append(s.cores[:i], s.cores[i+1:]...)
			return true
		}
	}
	return false
}

// IDs returns a copy of the live IDs, safe to range over while removing.
func (s *CoreSet) IDs() []int {
	ids := make([]int, len(s.cores))
	for i, c := range s.cores {
		ids[i] = c.ID
	}
	return ids
}

// All returns the live cores. The slice must not be modified.
func (s *CoreSet) All() []Core {
	return s.cores
}

// Len returns the number of live cores.
func (s *CoreSet) Len() int {
	return len(s.cores)
}

// Reset removes every core.
func (s *CoreSet) Reset() {
	s.cores = s.cores[:0]
	s.nextID = 0
}

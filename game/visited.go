package game

import "golang.org/x/exp/maps"

// Visited holds the positions seen since the last irreversible move.
type Visited map[Rep]struct{}

func NewVisited() Visited {
	return Visited{}
}

func (v Visited) Add(rep Rep) {
	v[rep] = struct{}{}
}

func (v Visited) Contains(rep Rep) bool {
	_, ok := v[rep]
	return ok
}

func (v Visited) Clear() {
	maps.Clear(v)
}

// Snapshot returns a copy that agents may read or modify freely.
func (v Visited) Snapshot() Visited {
	return maps.Clone(v)
}

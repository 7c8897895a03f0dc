package model

// DirtySet holds the coordinates that must be re-evaluated next generation
type DirtySet struct {
	members map[Coord]struct{}
}

// NewDirtySet creates an empty set
func NewDirtySet() *DirtySet {
	return &DirtySet{members: make(map[Coord]struct{})}
}

// Mark adds c to the set; marking twice is a no-op
func (d *DirtySet) Mark(c Coord) {
	d.members[c] = struct{}{}
}

// Contains reports whether c is pending evaluation
func (d *DirtySet) Contains(c Coord) bool {
	_, ok := d.members[c]
	return ok
}

// Len returns the frontier size
func (d *DirtySet) Len() int {
	return len(d.members)
}

// Drain appends every member to dst, empties the set and returns the worklist.
// Order is unspecified.
func (d *DirtySet) Drain(dst []Coord) []Coord {
	for c := range d.members {
		dst = append(dst, c)
	}
	clear(d.members)
	return dst
}

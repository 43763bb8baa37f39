// Package tsp: tour representation and slot-level operations.
//
// This file contains the Tour type and the helpers that operate purely on its
// structure, without computing distances:
//   - NewTour: an empty tour with every slot unset.
//   - GenerateIndividual: copy a node list and shuffle it in place.
//   - Node / SetNode / Swap / ContainsNode: slot access and membership.
//   - IsComplete, FirstEmpty, Len, Nodes, Clone: inspection and copying.
//   - RotateToStart: cyclic shift so the tour begins at a given node.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - Each slot carries an explicit filled marker; no coordinate is reserved
//     as a sentinel, so (-1,-1) is an ordinary node.
//   - SetNode and Swap invalidate fitness; nothing else mutates the sequence
//     after GenerateIndividual.
//   - No logging, no panics on caller input, only sentinel errors from types.go.
package tsp

import (
	"math/rand"
	"strings"
)

// Tour is one candidate ordering of the problem's nodes plus derived fitness.
type Tour struct {
	nodes  []Node
	filled []bool

	fitness          float64
	relativeFitness  float64
	amplifiedFitness float64
}

// NewTour returns a tour of size unset slots with zeroed fitness fields.
// A negative size is treated as zero.
//
// Complexity: O(size).
func NewTour(size int) *Tour {
	if size < 0 {
		size = 0
	}
	return &Tour{
		nodes:  make([]Node, size),
		filled: make([]bool, size),
	}
}

// GenerateIndividual fills the tour with nodes in their original order and
// then shuffles it: for ShufflePasses passes, every position j is swapped
// with a uniformly drawn position r whenever r != j.
//
// Contract:
//   - len(nodes) == t.Len(), otherwise ErrSizeMismatch.
//   - rng must be non-nil, otherwise ErrNilRNG.
//
// The rng is consumed exactly ShufflePasses*Len() times.
//
// Complexity: O(ShufflePasses·n).
func (t *Tour) GenerateIndividual(rng *rand.Rand, nodes []Node) error {
	if len(nodes) != len(t.nodes) {
		return ErrSizeMismatch
	}
	if rng == nil {
		return ErrNilRNG
	}

	var (
		n    = len(t.nodes)
		pass int
		j    int
		r    int
	)
	copy(t.nodes, nodes)
	for j = 0; j < n; j++ {
		t.filled[j] = true
	}

	for pass = 0; pass < ShufflePasses; pass++ {
		for j = 0; j < n; j++ {
			r = rng.Intn(n)
			if r != j {
				t.nodes[j], t.nodes[r] = t.nodes[r], t.nodes[j]
			}
		}
	}
	t.resetFitness()

	return nil
}

// Len returns the number of slots.
func (t *Tour) Len() int { return len(t.nodes) }

// Node returns the node at index i and whether that slot is filled.
// An out-of-range index reports (Node{}, false).
func (t *Tour) Node(i int) (Node, bool) {
	if i < 0 || i >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[i], t.filled[i]
}

// SetNode places n at index i and marks the slot filled. All three fitness
// fields are reset to zero: the tour's fitness is stale until recomputed.
func (t *Tour) SetNode(i int, n Node) error {
	if i < 0 || i >= len(t.nodes) {
		return ErrIndexOutOfRange
	}
	t.nodes[i] = n
	t.filled[i] = true
	t.resetFitness()

	return nil
}

// swap exchanges slots i and j, resetting fitness like SetNode.
// Indices are trusted by the caller.
func (t *Tour) swap(i, j int) {
	t.nodes[i], t.nodes[j] = t.nodes[j], t.nodes[i]
	t.filled[i], t.filled[j] = t.filled[j], t.filled[i]
	t.resetFitness()
}

// Swap exchanges the nodes at i and j. Fitness is invalidated as by SetNode.
func (t *Tour) Swap(i, j int) error {
	if i < 0 || i >= len(t.nodes) || j < 0 || j >= len(t.nodes) {
		return ErrIndexOutOfRange
	}
	t.swap(i, j)

	return nil
}

// ContainsNode reports whether a filled slot holds a node equal to n by (x,y).
//
// Complexity: O(n).
func (t *Tour) ContainsNode(n Node) bool {
	var i int
	for i = range t.nodes {
		if t.filled[i] && t.nodes[i].Equal(n) {
			return true
		}
	}
	return false
}

// IsComplete reports whether every slot is filled.
func (t *Tour) IsComplete() bool {
	var f bool
	for _, f = range t.filled {
		if !f {
			return false
		}
	}
	return true
}

// FirstEmpty returns the lowest unfilled index, or -1 for a complete tour.
func (t *Tour) FirstEmpty() int {
	var i int
	for i = range t.filled {
		if !t.filled[i] {
			return i
		}
	}
	return -1
}

// Nodes returns a copy of the sequence. Unfilled slots are zero Nodes.
func (t *Tour) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Clone returns an independent deep copy, fitness fields included.
//
// Complexity: O(n) time, O(n) space.
func (t *Tour) Clone() *Tour {
	c := &Tour{
		nodes:            make([]Node, len(t.nodes)),
		filled:           make([]bool, len(t.filled)),
		fitness:          t.fitness,
		relativeFitness:  t.relativeFitness,
		amplifiedFitness: t.amplifiedFitness,
	}
	copy(c.nodes, t.nodes)
	copy(c.filled, t.filled)
	return c
}

// RotateToStart returns a fresh copy of a complete tour shifted cyclically so
// that the first slot holds start. The cycle (and so its distance) is unchanged;
// fitness fields are not carried over.
//
// Errors: ErrIncompleteTour, ErrNodeNotFound.
//
// Complexity: O(n) time, O(n) space.
func (t *Tour) RotateToStart(start Node) (*Tour, error) {
	if !t.IsComplete() {
		return nil, ErrIncompleteTour
	}

	var (
		n     = len(t.nodes)
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if t.nodes[i].Equal(start) {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrNodeNotFound
	}

	out := NewTour(n)
	for i = 0; i < n; i++ {
		out.nodes[i] = t.nodes[(pivot+i)%n]
		out.filled[i] = true
	}
	return out, nil
}

// DebugString returns a compact representation such as "[(0,0) (0,10) _]"
// where "_" marks an unfilled slot.
func (t *Tour) DebugString() string {
	var (
		b strings.Builder
		i int
	)
	b.WriteByte('[')
	for i = range t.nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		if !t.filled[i] {
			b.WriteByte('_')
			continue
		}
		b.WriteString(t.nodes[i].String())
	}
	b.WriteByte(']')
	return b.String()
}

func (t *Tour) resetFitness() {
	t.fitness = 0
	t.relativeFitness = 0
	t.amplifiedFitness = 0
}

package tsp

import "fmt"

// DefaultTag is the tag carried by nodes read from coordinate pairs.
const DefaultTag = 'n'

// Node is a 2D point with an auxiliary tag. Nodes are values: copy freely,
// never mutate one that already sits in a tour.
type Node struct {
	X   int
	Y   int
	Tag rune
}

// NewNode returns the node (x, y) tagged with tag.
func NewNode(x, y int, tag rune) Node {
	return Node{X: x, Y: y, Tag: tag}
}

// Equal reports tour-membership equality: X and Y match. Tag is ignored.
func (n Node) Equal(other Node) bool {
	return n.X == other.X && n.Y == other.Y
}

// String renders the node as "(x,y)".
func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.X, n.Y)
}

// point is the coordinate key used for set membership.
type point struct{ x, y int }

func (n Node) key() point { return point{n.X, n.Y} }

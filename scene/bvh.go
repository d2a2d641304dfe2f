package scene

import (
	"math"

	"github.com/yanky319/Ray-tracing/types"
)

// BvhNode is a node of a BVH stored in a flat node list. Leaf nodes point to
// a surface; inner nodes list the indices of their child nodes.
type BvhNode struct {
	BBox BoundingBox

	// Index into BVH.Surfaces for leaf nodes; -1 for inner nodes.
	Surface int32

	// Child node indices (inner nodes only).
	Children []uint32
}

// IsLeaf returns true if the node references a surface.
func (n *BvhNode) IsLeaf() bool {
	return n.Surface >= 0
}

// BVH is an immutable bounding volume hierarchy. Nodes reference each other
// by index so the structure can be shared between goroutines without
// synchronization.
type BVH struct {
	Nodes    []BvhNode
	Surfaces []*Surface
	Root     uint32
}

// Get the bounding box of the root node.
func (b *BVH) BBox() BoundingBox {
	if len(b.Nodes) == 0 {
		return EmptyBox()
	}
	return b.Nodes[b.Root].BBox
}

// Intersect returns every hit closer than maxDistance. Subtrees whose
// bounding box misses the ray are skipped.
func (b *BVH) Intersect(ray types.Ray, maxDistance float64) []GeoHit {
	if len(b.Nodes) == 0 {
		return nil
	}

	var hits []GeoHit
	stack := make([]uint32, 1, 32)
	stack[0] = b.Root
	for len(stack) > 0 {
		node := &b.Nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]

		if !node.BBox.Hit(ray, maxDistance) {
			continue
		}
		if node.IsLeaf() {
			hits = append(hits, b.Surfaces[node.Surface].intersectGeometry(ray, maxDistance)...)
			continue
		}
		stack = append(stack, node.Children...)
	}
	return hits
}

// Nearest returns the hit closest to the ray origin.
func (b *BVH) Nearest(ray types.Ray) (GeoHit, bool) {
	return Nearest(ray.Origin, b.Intersect(ray, math.Inf(1)))
}

// Depth returns the number of levels in the tree.
func (b *BVH) Depth() int {
	if len(b.Nodes) == 0 {
		return 0
	}
	return b.depth(b.Root)
}

func (b *BVH) depth(index uint32) int {
	maxChild := 0
	for _, child := range b.Nodes[index].Children {
		if d := b.depth(child); d > maxChild {
			maxChild = d
		}
	}
	return maxChild + 1
}

// Leafs returns the number of leaf nodes.
func (b *BVH) Leafs() int {
	count := 0
	for i := range b.Nodes {
		if b.Nodes[i].IsLeaf() {
			count++
		}
	}
	return count
}

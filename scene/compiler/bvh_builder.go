package compiler

import (
	"errors"
	"fmt"
	"time"

	"github.com/dhconnelly/rtreego"

	"github.com/yanky319/Ray-tracing/log"
	"github.com/yanky319/Ray-tracing/scene"
)

// ErrUnsupportedItem is returned when an aggregate contains an item that
// is neither a surface nor a nested aggregate.
var ErrUnsupportedItem = errors.New("compiler: unsupported aggregate member")

const (
	// R-tree branching factors used for the centroid index.
	rtreeMinChildren = 25
	rtreeMaxChildren = 50

	// Centroids are indexed as tiny boxes of this size.
	centroidTolerance = 1e-9
)

// A bounded node waiting to be paired. It implements rtreego.Spatial so it
// can be indexed by its centroid.
type clusterItem struct {
	node    uint32
	center  rtreego.Point
	removed bool
}

func (c *clusterItem) Bounds() rtreego.Rect {
	return c.center.ToRect(centroidTolerance)
}

type bvhStats struct {
	surfaces  int
	unbounded int
	nodes     int
	leafs     int
}

type bvhBuilder struct {
	logger log.Logger

	// Bvh nodes stored as a contiguous list
	nodes    []scene.BvhNode
	surfaces []*scene.Surface

	stats bvhStats
}

// BuildBVH constructs a bounding volume hierarchy from the aggregate tree
// rooted at root. The input aggregate is not modified.
//
// Each aggregate is clustered by greedily pairing every bounded member with
// the bounded member whose bounding box center is closest to it, until a
// single node remains. Members with unbounded boxes (planes, tubes) are kept
// in a separate branch which is merged with the bounded node at the end.
func BuildBVH(root *scene.Aggregate) (*scene.BVH, error) {
	builder := &bvhBuilder{
		logger: log.New("bvh builder"),
		nodes:  make([]scene.BvhNode, 0),
	}

	start := time.Now()
	rootIndex, err := builder.cluster(root)
	if err != nil {
		return nil, err
	}

	bvh := &scene.BVH{
		Nodes:    builder.nodes,
		Surfaces: builder.surfaces,
		Root:     rootIndex,
	}
	builder.logger.Debugf(
		"BVH tree build time: %d ms, surfaces: %d (%d unbounded), depth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		builder.stats.surfaces, builder.stats.unbounded,
		bvh.Depth(), builder.stats.nodes, builder.stats.leafs,
	)
	return bvh, nil
}

// Cluster the members of an aggregate and return the index of the node that
// encloses all of them.
func (b *bvhBuilder) cluster(agg *scene.Aggregate) (uint32, error) {
	var bounded, unbounded []uint32
	for _, item := range agg.Items() {
		index, err := b.convert(item)
		if err != nil {
			return 0, err
		}

		if b.nodes[index].BBox.IsUnbounded() {
			unbounded = append(unbounded, index)
		} else {
			bounded = append(bounded, index)
		}
	}

	members := unbounded
	if len(bounded) > 0 {
		members = append([]uint32{b.pair(bounded)}, unbounded...)
	}

	switch len(members) {
	case 0:
		return b.addInner(nil), nil
	case 1:
		return members[0], nil
	}
	return b.addInner(members), nil
}

// Convert an aggregate member into a node and return its index.
func (b *bvhBuilder) convert(item scene.Intersectable) (uint32, error) {
	switch v := item.(type) {
	case *scene.Surface:
		return b.addLeaf(v), nil
	case *scene.Aggregate:
		return b.cluster(v)
	}
	return 0, fmt.Errorf("%w: %T", ErrUnsupportedItem, item)
}

// Repeatedly merge the oldest unpaired node with its nearest neighbour until
// one node is left. Nodes created by a merge are queued behind the existing
// ones so that pairing proceeds level by level.
func (b *bvhBuilder) pair(indices []uint32) uint32 {
	if len(indices) == 1 {
		return indices[0]
	}

	queue := make([]*clusterItem, 0, 2*len(indices))
	tree := rtreego.NewTree(3, rtreeMinChildren, rtreeMaxChildren)
	for _, index := range indices {
		item := b.newClusterItem(index)
		queue = append(queue, item)
		tree.Insert(item)
	}

	for tree.Size() > 1 {
		a := queue[0]
		queue = queue[1:]
		if a.removed {
			continue
		}

		tree.Delete(a)
		a.removed = true

		nearest := tree.NearestNeighbor(a.center).(*clusterItem)
		tree.Delete(nearest)
		nearest.removed = true

		merged := b.newClusterItem(b.addInner([]uint32{a.node, nearest.node}))
		queue = append(queue, merged)
		tree.Insert(merged)
	}

	for _, item := range queue {
		if !item.removed {
			return item.node
		}
	}

	// Unreachable; the tree always keeps one item.
	return queue[len(queue)-1].node
}

func (b *bvhBuilder) newClusterItem(index uint32) *clusterItem {
	c := b.nodes[index].BBox.Center()
	return &clusterItem{
		node:   index,
		center: rtreego.Point{c[0], c[1], c[2]},
	}
}

// Append a leaf for surface and return its node index.
func (b *bvhBuilder) addLeaf(surface *scene.Surface) uint32 {
	b.surfaces = append(b.surfaces, surface)
	b.nodes = append(b.nodes, scene.BvhNode{
		BBox:    surface.BBox(),
		Surface: int32(len(b.surfaces) - 1),
	})

	b.stats.surfaces++
	b.stats.leafs++
	if surface.BBox().IsUnbounded() {
		b.stats.unbounded++
	}
	return uint32(len(b.nodes) - 1)
}

// Append an inner node whose box encloses all children and return its index.
func (b *bvhBuilder) addInner(children []uint32) uint32 {
	bbox := scene.EmptyBox()
	for _, child := range children {
		bbox = bbox.Union(b.nodes[child].BBox)
	}

	b.nodes = append(b.nodes, scene.BvhNode{
		BBox:     bbox,
		Surface:  -1,
		Children: children,
	})
	b.stats.nodes++
	return uint32(len(b.nodes) - 1)
}

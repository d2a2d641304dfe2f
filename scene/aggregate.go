package scene

import "github.com/yanky319/Ray-tracing/types"

// Aggregate is a composite of surfaces and nested aggregates. Its bounding
// box always encloses all of its members.
type Aggregate struct {
	items []Intersectable
	bbox  BoundingBox
}

// Create an aggregate containing the given items.
func NewAggregate(items ...Intersectable) *Aggregate {
	a := &Aggregate{bbox: EmptyBox()}
	a.Add(items...)
	return a
}

// Add one or more items and grow the bounding box to enclose them.
func (a *Aggregate) Add(items ...Intersectable) {
	for _, item := range items {
		a.items = append(a.items, item)
		a.bbox = a.bbox.Union(item.BBox())
	}
}

// Items returns a copy of the aggregate members.
func (a *Aggregate) Items() []Intersectable {
	return append([]Intersectable(nil), a.items...)
}

// Get number of direct members.
func (a *Aggregate) Len() int {
	return len(a.items)
}

// Get the aggregate bounding box.
func (a *Aggregate) BBox() BoundingBox {
	return a.bbox
}

// Intersect checks the aggregate bounding box and then collects the hits of
// every member. All hits are returned, not just the first one.
func (a *Aggregate) Intersect(ray types.Ray, maxDistance float64) []GeoHit {
	if !a.bbox.Hit(ray, maxDistance) {
		return nil
	}

	var hits []GeoHit
	for _, item := range a.items {
		hits = append(hits, item.Intersect(ray, maxDistance)...)
	}
	return hits
}

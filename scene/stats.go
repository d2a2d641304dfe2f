package scene

// Stats summarizes the contents of a scene.
type Stats struct {
	// Surface count per type.
	Surfaces map[SurfaceType]int

	// Number of nested aggregates (not counting the root).
	Aggregates int

	// Surfaces whose bounding box is unbounded.
	Unbounded int

	Lights int

	// BVH stats; zero for scenes that are not compiled.
	BvhNodes int
	BvhLeafs int
	BvhDepth int
}

// Total number of surfaces.
func (st Stats) TotalSurfaces() int {
	total := 0
	for _, count := range st.Surfaces {
		total += count
	}
	return total
}

// Collect scene stats.
func (s *Scene) Stats() Stats {
	st := Stats{
		Surfaces: make(map[SurfaceType]int),
		Lights:   len(s.Lights),
	}
	countItems(s.Geometries, &st)

	if s.BVH != nil {
		st.BvhNodes = len(s.BVH.Nodes)
		st.BvhLeafs = s.BVH.Leafs()
		st.BvhDepth = s.BVH.Depth()
	}
	return st
}

func countItems(agg *Aggregate, st *Stats) {
	for _, item := range agg.items {
		switch v := item.(type) {
		case *Surface:
			st.Surfaces[v.Type]++
			if v.bbox.IsUnbounded() {
				st.Unbounded++
			}
		case *Aggregate:
			st.Aggregates++
			countItems(v, st)
		}
	}
}

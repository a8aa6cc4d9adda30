package layout

import "math"

// track holds the resolved size and offset of one row or column.
type track struct {
	def    Value
	size   int
	offset int // Relative to the start of the content rect
}

// trackItem is a child's extent along one axis.
// This is stack-allocated per layout call, not stored on nodes.
type trackItem struct {
	index   int // First track, clamped to the track count
	span    int // Track count covered, clamped to the track count
	content int // Intrinsic size plus margin along this axis
}

// implicitTracks returns defs, or a single Star(1) track when no tracks
// are defined so that every container has at least one cell.
func implicitTracks(defs []Value) []Value {
	if len(defs) == 0 {
		return []Value{Star(1)}
	}
	return defs
}

// clampSpan restricts a start index and span to count tracks.
// Items past the last track land in the last track.
func clampSpan(start, span, count int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start >= count {
		start = count - 1
	}
	if span < 1 {
		span = 1
	}
	if start+span > count {
		span = count - start
	}
	return start, span
}

// resolveTracks sizes the tracks of one axis within available cells.
// Fixed, percent and auto tracks are sized first; star tracks then split
// whatever is left after gaps.
func resolveTracks(defs []Value, items []trackItem, available, gap int) []track {
	tracks := make([]track, len(defs))
	used := gap * max(0, len(defs)-1)

	for i, def := range defs {
		tracks[i].def = def
		switch {
		case def.IsStar():
			continue
		case def.IsAuto():
			tracks[i].size = autoTrackSize(i, items)
		default:
			tracks[i].size = max(0, def.Resolve(available, 0))
		}
		used += tracks[i].size
	}

	distributeStar(tracks, available-used)

	offset := 0
	for i := range tracks {
		tracks[i].offset = offset
		offset += tracks[i].size + gap
	}
	return tracks
}

// autoTrackSize returns the largest content size among single-span items
// starting in the track. Spanning items do not grow auto tracks.
func autoTrackSize(index int, items []trackItem) int {
	size := 0
	for _, item := range items {
		if item.span == 1 && item.index == index {
			size = max(size, item.content)
		}
	}
	return size
}

// distributeStar splits free cells among star tracks by weight.
// Floor shares are handed out first; the cells lost to rounding then go
// one at a time to star tracks from left to right, so star tracks always
// sum to exactly free.
//
// Weights are scaled by a power of two near the largest weight, which is
// exact, so that sums and products stay finite for any positive finite
// weight.
func distributeStar(tracks []track, free int) {
	if free <= 0 {
		return
	}

	maxWeight := 0.0
	for _, t := range tracks {
		maxWeight = max(maxWeight, starWeight(t.def))
	}
	if maxWeight == 0 {
		return
	}
	_, exp := math.Frexp(maxWeight)

	totalWeight := 0.0
	for _, t := range tracks {
		totalWeight += math.Ldexp(starWeight(t.def), -exp)
	}

	assigned := 0
	for i := range tracks {
		if !tracks[i].def.IsStar() {
			continue
		}
		share := float64(free) * math.Ldexp(starWeight(tracks[i].def), -exp) / totalWeight
		cells := int(math.Min(math.Max(share, 0), float64(free-assigned)))
		tracks[i].size = cells
		assigned += cells
	}

	for i := 0; assigned < free; i = (i + 1) % len(tracks) {
		if tracks[i].def.IsStar() {
			tracks[i].size++
			assigned++
		}
	}
}

// starWeight returns the weight of a star value, or 0 for other units and
// for weights that are not positive finite numbers.
func starWeight(v Value) float64 {
	if !v.IsStar() || !(v.Amount > 0) || math.IsInf(v.Amount, 0) {
		return 0
	}
	return v.Amount
}

// extent returns the size covered by span tracks starting at start,
// including the gaps between them.
func extent(tracks []track, start, span, gap int) int {
	size := gap * (span - 1)
	for i := start; i < start+span; i++ {
		size += tracks[i].size
	}
	return size
}

// contentExtent returns the natural size of an axis: fixed tracks at their
// size, auto and star tracks at their content size, percent tracks at zero.
func contentExtent(defs []Value, items []trackItem, gap int) int {
	total := gap * max(0, len(defs)-1)
	for i, def := range defs {
		switch def.Unit {
		case UnitFixed:
			total += max(0, int(def.Amount))
		case UnitPercent:
		default:
			total += autoTrackSize(i, items)
		}
	}
	return total
}

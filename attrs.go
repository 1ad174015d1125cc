package outline

import "slices"

// PointAttributes is the optional per-point metadata column of a
// [PackedPath]. It is either absent, meaning no point of the path carries
// metadata, or materialized, in which case it holds one entry per point and
// a nil entry means "no metadata for this point".
//
// A path's column never reverts from materialized to absent, even when
// every entry becomes nil again.
type PointAttributes struct {
	materialized bool
	entries      []Attrs
}

// MaterializedAttributes returns a materialized column holding copies of
// entries.
func MaterializedAttributes(entries ...Attrs) PointAttributes {
	pa := PointAttributes{materialized: true, entries: make([]Attrs, len(entries))}
	for i, a := range entries {
		pa.entries[i] = a.Clone()
	}
	return pa
}

func (pa PointAttributes) Materialized() bool { return pa.materialized }

// Len returns the number of entries, which is 0 for an absent column.
func (pa PointAttributes) Len() int { return len(pa.entries) }

// At returns the metadata of point i, or nil.
func (pa PointAttributes) At(i int) Attrs {
	if !pa.materialized {
		return nil
	}
	return pa.entries[i]
}

// Entries returns a copy of the column, or nil if it is absent.
func (pa PointAttributes) Entries() []Attrs {
	if !pa.materialized {
		return nil
	}
	out := make([]Attrs, len(pa.entries))
	for i, a := range pa.entries {
		out[i] = a.Clone()
	}
	return out
}

// Any reports whether at least one point carries metadata.
func (pa PointAttributes) Any() bool {
	return slices.ContainsFunc(pa.entries, func(a Attrs) bool { return a != nil })
}

// Equal reports whether pa and o hold the same metadata, point by point.
// An absent column equals one whose entries are all nil, so Equal ignores
// the materialized tag.
func (pa PointAttributes) Equal(o PointAttributes) bool {
	for i := range max(len(pa.entries), len(o.entries)) {
		if !pa.entry(i).Equal(o.entry(i)) {
			return false
		}
	}
	return true
}

// entry is like At but reads past the end of the column as nil.
func (pa PointAttributes) entry(i int) Attrs {
	if i >= len(pa.entries) {
		return nil
	}
	return pa.entries[i]
}

func (pa PointAttributes) clone() PointAttributes {
	if !pa.materialized {
		return PointAttributes{}
	}
	return MaterializedAttributes(pa.entries...)
}

func (pa *PointAttributes) materialize(numPoints int) {
	if pa.materialized {
		return
	}
	pa.materialized = true
	pa.entries = make([]Attrs, numPoints)
}

func (pa *PointAttributes) set(numPoints, i int, a Attrs) {
	if !pa.materialized {
		if a == nil {
			return
		}
		pa.materialize(numPoints)
	}
	pa.entries[i] = a.Clone()
}

// splice replaces del entries at start with ins, where ins describes
// insCount points and may be nil if none of them carry metadata.
// numPoints is the point count before the splice.
func (pa *PointAttributes) splice(numPoints, start, del int, ins []Attrs, insCount int) {
	if !pa.materialized {
		if !slices.ContainsFunc(ins, func(a Attrs) bool { return a != nil }) {
			return
		}
		pa.materialize(numPoints)
	}
	block := make([]Attrs, insCount)
	for i := range min(len(ins), insCount) {
		block[i] = ins[i].Clone()
	}
	pa.entries = slices.Replace(pa.entries, start, start+del, block...)
}

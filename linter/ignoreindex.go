package linter

import "sort"

// IgnoreIndex answers "is this violation suppressed?" without a full scan
// of every directive for every violation (spec.md §4.8: "letting
// contains(range, rule) be answered in O(log N)"). Directives are sorted
// by their range's start; a prefix-max of range ends lets Contains binary
// search to the directives that could possibly overlap a query range
// before falling back to a short linear scan over just that window.
type IgnoreIndex struct {
	directives   []*ignoreDirective
	maxEndPrefix []int
}

// newIgnoreIndex builds an index over directives, sorted by Range.Start.
func newIgnoreIndex(directives []*ignoreDirective) *IgnoreIndex {
	sorted := make([]*ignoreDirective, len(directives))
	copy(sorted, directives)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Range.Start < sorted[j].Range.Start })

	prefix := make([]int, len(sorted))
	max := 0
	for i, d := range sorted {
		if d.Range.End > max {
			max = d.Range.End
		}
		prefix[i] = max
	}
	return &IgnoreIndex{directives: sorted, maxEndPrefix: prefix}
}

// overlaps reports whether a and b, both half-open [Start, End) ranges,
// share at least one byte. A zero-length violation range (common for a
// fix-only diagnostic anchored at a single point) still counts as inside
// a directive whose range contains that point.
func overlaps(a, b TextRange) bool {
	if a.Start == a.End {
		return a.Start >= b.Start && a.Start < b.End
	}
	return a.Start < b.End && b.Start < a.End
}

// Contains reports whether rng is suppressed for rule r by any directive
// in the index.
func (idx *IgnoreIndex) Contains(rng TextRange, r Rule) bool {
	d := idx.find(rng, r)
	return d != nil
}

// find returns the latest-starting directive overlapping rng and covering
// r (it scans the sorted order backwards), marking it used, or nil if none
// match.
func (idx *IgnoreIndex) find(rng TextRange, r Rule) *ignoreDirective {
	// Directives starting after rng.End cannot overlap rng (one starting
	// exactly at rng.End can still hold a zero-length rng), so binary
	// search for the first index starting past rng.End.
	hi := sort.Search(len(idx.directives), func(i int) bool {
		return idx.directives[i].Range.Start > rng.End
	})
	if hi == 0 || idx.maxEndPrefix[hi-1] <= rng.Start {
		return nil
	}
	for i := hi - 1; i >= 0; i-- {
		d := idx.directives[i]
		if d.Range.End <= rng.Start {
			continue
		}
		if overlaps(rng, d.Range) && d.covers(r) {
			d.used = true
			return d
		}
	}
	return nil
}

// Unused returns every directive that never suppressed a violation —
// consulted by the unused-ignore rule.
func (idx *IgnoreIndex) Unused() []*ignoreDirective {
	var out []*ignoreDirective
	for _, d := range idx.directives {
		if !d.used {
			out = append(out, d)
		}
	}
	return out
}

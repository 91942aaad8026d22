package query

import "sort"

// noneMarker is the UI-layer sentinel meaning "records with no restriction
// markers". It is confined to this filter layer and must never be
// inserted into the index's restriction set (see SPEC_FULL.md's Open
// Question decision on the 'none' sentinel).
const noneMarker = "none"

// SortOrder overrides the BM25 tie-broken ordering with an explicit
// isoDate sort.
type SortOrder int

const (
	// SortNone leaves the incoming order (BM25, or id order for browse
	// mode) untouched.
	SortNone SortOrder = iota
	SortAsc
	SortDesc
)

// Filter describes the post-scoring filter and sort request (spec.md §4.9).
// Zero values mean "no constraint" for each field except Restrictions,
// where a nil/empty slice also means "no constraint".
type Filter struct {
	Credit        string
	HasCredit     bool
	DateFrom      string
	DateTo        string
	Restrictions  []string
	Sort          SortOrder
	QueryWasEmpty bool
}

// Apply filters results per spec.md §4.9 (AND across categories, OR within
// the restrictions category) and then applies the sort override, if any.
// When the query was empty and no explicit sort was requested, the layer
// defaults to descending isoDate order.
func Apply(results []Result, f Filter) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if !matchesCredit(r, f) {
			continue
		}
		if !matchesDateFrom(r, f) {
			continue
		}
		if !matchesDateTo(r, f) {
			continue
		}
		if !matchesRestrictions(r, f) {
			continue
		}
		filtered = append(filtered, r)
	}

	order := f.Sort
	if order == SortNone && f.QueryWasEmpty {
		order = SortDesc
	}

	switch order {
	case SortAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Record.IsoDate < filtered[j].Record.IsoDate
		})
	case SortDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Record.IsoDate > filtered[j].Record.IsoDate
		})
	}

	return filtered
}

func matchesCredit(r Result, f Filter) bool {
	if !f.HasCredit {
		return true
	}
	return r.Record.Credit == f.Credit
}

func matchesDateFrom(r Result, f Filter) bool {
	if f.DateFrom == "" {
		return true
	}
	return r.Record.IsoDate != "" && r.Record.IsoDate >= f.DateFrom
}

func matchesDateTo(r Result, f Filter) bool {
	if f.DateTo == "" {
		return true
	}
	return r.Record.IsoDate != "" && r.Record.IsoDate <= f.DateTo
}

func matchesRestrictions(r Result, f Filter) bool {
	if len(f.Restrictions) == 0 {
		return true
	}

	wantsNone := false
	wanted := make(map[string]struct{}, len(f.Restrictions))
	for _, rr := range f.Restrictions {
		if rr == noneMarker {
			wantsNone = true
			continue
		}
		wanted[rr] = struct{}{}
	}

	if wantsNone && len(r.Record.Markers) == 0 {
		return true
	}
	for _, m := range r.Record.Markers {
		if _, ok := wanted[m]; ok {
			return true
		}
	}
	return false
}

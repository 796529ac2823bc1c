// Package offering computes the changes needed to move a specialist's
// offering links from their current set to a desired set.
package offering

import (
	"bytes"
	"sort"

	"backoffice/pkg/domain"
)

// Delta is the minimal change between two sets of offering ids. Ids present
// in both sets appear in neither list so their link rows stay untouched.
type Delta struct {
	ToAdd    []domain.CatalogOfferingID
	ToRemove []domain.CatalogOfferingID
}

// IsEmpty reports whether applying the delta would change nothing.
func (d Delta) IsEmpty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// Reconcile returns desired minus current as ToAdd and current minus desired
// as ToRemove. Duplicates are collapsed and both lists are sorted.
func Reconcile(current, desired []domain.CatalogOfferingID) Delta {
	cur := toSet(current)
	want := toSet(desired)

	return Delta{
		ToAdd:    difference(want, cur),
		ToRemove: difference(cur, want),
	}
}

// Apply returns the set obtained by applying d to current, sorted.
func Apply(current []domain.CatalogOfferingID, d Delta) []domain.CatalogOfferingID {
	set := toSet(current)
	for _, id := range d.ToRemove {
		delete(set, id)
	}
	for _, id := range d.ToAdd {
		set[id] = struct{}{}
	}

	return difference(set, nil)
}

func toSet(ids []domain.CatalogOfferingID) map[domain.CatalogOfferingID]struct{} {
	set := make(map[domain.CatalogOfferingID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func difference(a, b map[domain.CatalogOfferingID]struct{}) []domain.CatalogOfferingID {
	var out []domain.CatalogOfferingID
	for id := range a {
		if _, ok := b[id]; !ok {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i][:], out[j][:]) < 0
	})

	return out
}

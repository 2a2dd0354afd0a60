package janitor

import (
	"context"
	"slices"
)

// GroundTruth is the set of instance IDs considered live for one pass.
// It is immutable once built and safe for concurrent reads.
type GroundTruth struct {
	ids map[InstanceID]struct{}
}

// NewGroundTruth builds a set from the given IDs. Duplicates are ignored.
func NewGroundTruth(ids ...InstanceID) *GroundTruth {
	set := make(map[InstanceID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &GroundTruth{ids: set}
}

// Contains reports whether id is a known instance.
func (g *GroundTruth) Contains(id InstanceID) bool {
	_, ok := g.ids[id]
	return ok
}

// Len returns the number of known instances.
func (g *GroundTruth) Len() int {
	return len(g.ids)
}

// IDs returns the known instance IDs in sorted order.
func (g *GroundTruth) IDs() []InstanceID {
	ids := make([]InstanceID, 0, len(g.ids))
	for id := range g.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// CollectGroundTruth lists every instance through lister.
//
// Any listing failure is returned as a *GroundTruthError and no set is
// produced. An empty listing is also rejected unless allowEmpty is set,
// because an empty ground truth marks every matching resource as orphaned.
func CollectGroundTruth(ctx context.Context, lister InstanceLister, allowEmpty bool) (*GroundTruth, error) {
	ids, err := lister.ListInstanceIDs(ctx)
	if err != nil {
		return nil, &GroundTruthError{Err: err}
	}
	if len(ids) == 0 && !allowEmpty {
		return nil, &GroundTruthError{Err: ErrEmptyGroundTruth}
	}
	return NewGroundTruth(ids...), nil
}

package schedule

import "sync"

// Index holds the committed intervals per resource key. It is the conflict
// detector's working set, hydrated from the database at startup and kept in
// lockstep with it afterwards.
//
// The map itself is guarded internally; atomicity of check-then-commit is the
// caller's job via KeyedMutex.
type Index struct {
	mu    sync.RWMutex
	byKey map[Key][]Commitment
}

func NewIndex() *Index {
	return &Index{byKey: make(map[Key][]Commitment)}
}

// Add registers the commitment under every given key.
func (idx *Index) Add(c Commitment, keys ...Key) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, key := range keys {
		idx.byKey[key] = append(idx.byKey[key], c)
	}
}

// Remove drops the commitment identified by kind and id from every given key.
func (idx *Index) Remove(kind CommitmentKind, id int, keys ...Key) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, key := range keys {
		existing := idx.byKey[key]
		kept := existing[:0]
		for _, c := range existing {
			if c.Kind == kind && c.ID == id {
				continue
			}
			kept = append(kept, c)
		}
		if len(kept) == 0 {
			delete(idx.byKey, key)
		} else {
			idx.byKey[key] = kept
		}
	}
}

// FindConflict returns the first commitment under key whose interval overlaps
// candidate, or nil. A commitment matching exclude is skipped, which lets a
// class update re-validate against everything except its own prior slot.
func (idx *Index) FindConflict(key Key, candidate Interval, exclude *Commitment) *Commitment {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	for _, c := range idx.byKey[key] {
		if exclude != nil && c.Kind == exclude.Kind && c.ID == exclude.ID {
			continue
		}
		if c.Interval.Overlaps(candidate) {
			found := c
			return &found
		}
	}
	return nil
}

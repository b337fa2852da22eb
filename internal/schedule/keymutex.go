package schedule

import (
	"sort"
	"sync"
)

// KeyedMutex serializes mutations per resource key. Operations on disjoint
// keys proceed in parallel; Lock with multiple keys acquires them in a fixed
// global order (kind, then id) so that two creations referencing the same
// room and trainer in opposite order cannot deadlock.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[Key]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[Key]*sync.Mutex)}
}

func (km *KeyedMutex) get(key Key) *sync.Mutex {
	km.mu.Lock()
	defer km.mu.Unlock()

	m, ok := km.locks[key]
	if !ok {
		m = &sync.Mutex{}
		km.locks[key] = m
	}
	return m
}

// Lock acquires every key and returns the matching unlock. Duplicate keys
// are collapsed so a caller passing the same key twice does not self-deadlock.
func (km *KeyedMutex) Lock(keys ...Key) (unlock func()) {
	ordered := dedupe(keys)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Kind != ordered[j].Kind {
			return ordered[i].Kind < ordered[j].Kind
		}
		return ordered[i].ID < ordered[j].ID
	})

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, key := range ordered {
		m := km.get(key)
		m.Lock()
		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func dedupe(keys []Key) []Key {
	seen := make(map[Key]struct{}, len(keys))
	out := make([]Key, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

package registration

import "sync"

// Ledger tracks the active registration count per class against its declared
// capacity. Every mutation is linearizable per class: two concurrent reserves
// racing for one remaining seat resolve to exactly one success.
//
// The database stays the system of record; the ledger is the admission
// decision structure, seeded from the database at startup and mutated in
// lockstep with registration rows afterwards.
type Ledger struct {
	mu      sync.RWMutex
	entries map[int]*ledgerEntry
}

type ledgerEntry struct {
	mu       sync.Mutex
	capacity int
	active   int
}

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[int]*ledgerEntry)}
}

// Register installs a ledger entry for a newly committed class, or updates
// the capacity of an existing one without touching its active count.
func (l *Ledger) Register(classID, capacity int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entries[classID]; ok {
		e.mu.Lock()
		e.capacity = capacity
		e.mu.Unlock()
		return
	}
	l.entries[classID] = &ledgerEntry{capacity: capacity}
}

// Seed installs an entry with a known active count, used when hydrating from
// persisted registrations.
func (l *Ledger) Seed(classID, capacity, active int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[classID] = &ledgerEntry{capacity: capacity, active: active}
}

func (l *Ledger) Has(classID int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.entries[classID]
	return ok
}

func (l *Ledger) get(classID int) *ledgerEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[classID]
}

// TryReserve atomically claims a seat if one is free. It returns false for a
// full class and for a class the ledger does not know.
func (l *Ledger) TryReserve(classID int) bool {
	e := l.get(classID)
	if e == nil {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active >= e.capacity {
		return false
	}
	e.active++
	return true
}

// Release frees a seat. Releasing an empty entry is a no-op so cancellation
// retries stay safe.
func (l *Ledger) Release(classID int) {
	e := l.get(classID)
	if e == nil {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active > 0 {
		e.active--
	}
}

func (l *Ledger) ActiveCount(classID int) int {
	e := l.get(classID)
	if e == nil {
		return 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Snapshot returns class id -> active count for every known class.
func (l *Ledger) Snapshot() map[int]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[int]int, len(l.entries))
	for id, e := range l.entries {
		e.mu.Lock()
		out[id] = e.active
		e.mu.Unlock()
	}
	return out
}

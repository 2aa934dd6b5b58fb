// Package ledger tracks rooms allocated away from contract inventory. The
// counts arrive over the allocation topic and are advisory: searches read
// them, nothing in the request path writes them.
package ledger

import "sync"

// Ledger exposes allocation counts per room type.
type Ledger interface {
	Allocated(roomTypeID string) int
	Set(roomTypeID string, rooms int)
	Add(roomTypeID string, rooms int)
	Release(roomTypeID string, rooms int)
	EffectiveAvailable(roomTypeID string, totalRooms int) int
	Snapshot() map[string]int
}

type memoryLedger struct {
	mu        sync.RWMutex
	allocated map[string]int
}

func NewMemoryLedger() Ledger {
	return &memoryLedger{
		allocated: make(map[string]int),
	}
}

func (l *memoryLedger) Allocated(roomTypeID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.allocated[roomTypeID]
}

func (l *memoryLedger) Set(roomTypeID string, rooms int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if rooms < 0 {
		rooms = 0
	}
	l.allocated[roomTypeID] = rooms
}

func (l *memoryLedger) Add(roomTypeID string, rooms int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.allocated[roomTypeID] += rooms
}

// Release lowers the allocated count, clamping at zero.
func (l *memoryLedger) Release(roomTypeID string, rooms int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	remaining := l.allocated[roomTypeID] - rooms
	if remaining < 0 {
		remaining = 0
	}
	l.allocated[roomTypeID] = remaining
}

// EffectiveAvailable is the contract's room count minus allocations, floored
// at zero. Over-allocation reads as nothing left, not negative inventory.
func (l *memoryLedger) EffectiveAvailable(roomTypeID string, totalRooms int) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	available := totalRooms - l.allocated[roomTypeID]
	if available < 0 {
		return 0
	}
	return available
}

func (l *memoryLedger) Snapshot() map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]int, len(l.allocated))
	for k, v := range l.allocated {
		out[k] = v
	}
	return out
}

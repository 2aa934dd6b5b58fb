package ledger

import (
	"sync"
	"testing"
)

func TestMemoryLedger_SetAddRelease(t *testing.T) {
	l := NewMemoryLedger()

	l.Set("rt1", 4)
	if got := l.Allocated("rt1"); got != 4 {
		t.Errorf("after Set: got %d, want 4", got)
	}

	l.Add("rt1", 2)
	if got := l.Allocated("rt1"); got != 6 {
		t.Errorf("after Add: got %d, want 6", got)
	}

	l.Release("rt1", 3)
	if got := l.Allocated("rt1"); got != 3 {
		t.Errorf("after Release: got %d, want 3", got)
	}
}

func TestMemoryLedger_ReleaseClampsAtZero(t *testing.T) {
	l := NewMemoryLedger()

	l.Set("rt1", 2)
	l.Release("rt1", 10)

	if got := l.Allocated("rt1"); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestMemoryLedger_SetNegativeClampsAtZero(t *testing.T) {
	l := NewMemoryLedger()

	l.Set("rt1", -5)

	if got := l.Allocated("rt1"); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestMemoryLedger_EffectiveAvailable(t *testing.T) {
	l := NewMemoryLedger()
	l.Set("rt1", 3)

	tests := []struct {
		name       string
		roomTypeID string
		totalRooms int
		want       int
	}{
		{"partial allocation", "rt1", 10, 7},
		{"over allocation floors at zero", "rt1", 2, 0},
		{"no allocation", "rt2", 5, 5},
		{"exact allocation", "rt1", 3, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.EffectiveAvailable(tc.roomTypeID, tc.totalRooms); got != tc.want {
				t.Errorf("EffectiveAvailable(%s, %d) = %d, want %d", tc.roomTypeID, tc.totalRooms, got, tc.want)
			}
		})
	}
}

func TestMemoryLedger_ConcurrentAccess(t *testing.T) {
	l := NewMemoryLedger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.Add("rt1", 1)
		}()
		go func() {
			defer wg.Done()
			_ = l.EffectiveAvailable("rt1", 100)
		}()
	}
	wg.Wait()

	if got := l.Allocated("rt1"); got != 50 {
		t.Errorf("got %d, want 50", got)
	}
}

func TestMemoryLedger_Snapshot(t *testing.T) {
	l := NewMemoryLedger()
	l.Set("rt1", 2)
	l.Set("rt2", 5)

	snap := l.Snapshot()
	if len(snap) != 2 || snap["rt1"] != 2 || snap["rt2"] != 5 {
		t.Errorf("unexpected snapshot: %v", snap)
	}

	// Mutating the snapshot must not touch the ledger.
	snap["rt1"] = 99
	if got := l.Allocated("rt1"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

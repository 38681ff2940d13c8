package clock

import (
	"testing"
	"time"
)

func TestFreezeAndRestore(t *testing.T) {
	pinned := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	restore := Freeze(pinned)

	if got := Now(); !got.Equal(pinned) {
		t.Fatalf("expected frozen time %s, got %s", pinned, got)
	}
	if got := UTC(); got.Location() != time.UTC || got.Hour() != 11 {
		t.Fatalf("expected UTC conversion, got %s", got)
	}

	restore()
	if got := Now(); got.Equal(pinned) {
		t.Fatalf("expected restored clock, still frozen at %s", got)
	}
}

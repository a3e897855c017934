package handlers

import (
	"testing"
	"time"
)

func TestDropGuard_DeduplicatesWithinWindow(t *testing.T) {
	g := NewDropGuard(5 * time.Second)
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	g.now = func() time.Time { return current }

	if !g.FirstSeen("gesture-1") {
		t.Fatal("first drop must pass")
	}
	if g.FirstSeen("gesture-1") {
		t.Fatal("repeat drop within window must be rejected")
	}
	if !g.FirstSeen("gesture-2") {
		t.Fatal("independent gesture must pass")
	}
}

func TestDropGuard_WindowExpiry(t *testing.T) {
	g := NewDropGuard(5 * time.Second)
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	g.now = func() time.Time { return current }

	if !g.FirstSeen("gesture-1") {
		t.Fatal("first drop must pass")
	}

	current = current.Add(6 * time.Second)
	if !g.FirstSeen("gesture-1") {
		t.Fatal("same gesture after the window is a new drop")
	}
}

package undo

import (
	"testing"
	"time"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
)

func entry(title string) Entry {
	return Entry{
		Event: models.CalendarEvent{ID: "s1", Title: title},
		Schedules: []models.Schedule{
			{ID: 1, Title: title, Project: "강남 오피스텔"},
		},
	}
}

func TestStack_LIFO(t *testing.T) {
	s := New(0)
	s.Push("김민수", entry("철거"))
	s.Push("김민수", entry("설비"))

	e, ok := s.Pop("김민수")
	if !ok || e.Event.Title != "설비" {
		t.Fatalf("first pop: got %q ok=%v, want 설비", e.Event.Title, ok)
	}
	e, ok = s.Pop("김민수")
	if !ok || e.Event.Title != "철거" {
		t.Fatalf("second pop: got %q ok=%v, want 철거", e.Event.Title, ok)
	}
	if _, ok := s.Pop("김민수"); ok {
		t.Fatal("third pop: want empty stack")
	}
}

func TestStack_PerUserIsolation(t *testing.T) {
	s := New(0)
	s.Push("김민수", entry("철거"))

	if _, ok := s.Pop("박지은"); ok {
		t.Fatal("other user popped someone else's deletion")
	}
	if _, ok := s.Pop("김민수"); !ok {
		t.Fatal("owner could not pop own deletion")
	}
}

func TestStack_Expiry(t *testing.T) {
	s := New(10 * time.Minute)
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	s.now = func() time.Time { return current }

	s.Push("김민수", entry("철거"))
	current = current.Add(11 * time.Minute)
	s.Push("김민수", entry("설비"))

	e, ok := s.Pop("김민수")
	if !ok || e.Event.Title != "설비" {
		t.Fatalf("got %q ok=%v, want fresh 설비", e.Event.Title, ok)
	}
	if _, ok := s.Pop("김민수"); ok {
		t.Fatal("expired entry should not pop")
	}
}

func TestStack_Sweep(t *testing.T) {
	s := New(10 * time.Minute)
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	s.now = func() time.Time { return current }

	s.Push("김민수", entry("철거"))
	s.Push("박지은", entry("설비"))
	current = current.Add(11 * time.Minute)
	s.Push("박지은", entry("전기"))

	if removed := s.Sweep(); removed != 2 {
		t.Fatalf("sweep removed %d, want 2", removed)
	}
	if s.Len("김민수") != 0 {
		t.Error("김민수 should have no live entries")
	}
	if s.Len("박지은") != 1 {
		t.Errorf("박지은 should keep 1 live entry, got %d", s.Len("박지은"))
	}
}

package tui

import (
	"testing"
	"time"
)

func TestScheduler_EveryQueuesFirstTick(t *testing.T) {
	s := NewScheduler()
	if s.Drain() != nil {
		t.Fatal("empty scheduler should have nothing to drain")
	}
	s.Every(10*time.Millisecond, func() {})
	if s.Active() != 1 {
		t.Errorf("Active() = %d, want 1", s.Active())
	}
	if s.Drain() == nil {
		t.Error("Drain() should return the first tick")
	}
	if s.Drain() != nil {
		t.Error("Drain() should empty the queue")
	}
}

func TestScheduler_HandleRunsStep(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(time.Millisecond, func() { calls++ })

	for i := 0; i < 3; i++ {
		if cmd := s.Handle(stepMsg{id: 1}); cmd == nil {
			t.Fatalf("step %d should reschedule", i)
		}
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestScheduler_CancelDropsInFlightTick(t *testing.T) {
	s := NewScheduler()
	calls := 0
	task := s.Every(time.Millisecond, func() { calls++ })
	task.Cancel()

	if cmd := s.Handle(stepMsg{id: 1}); cmd != nil {
		t.Error("cancelled task must not reschedule")
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d, want 0", s.Active())
	}
}

func TestScheduler_CancelFromStep(t *testing.T) {
	s := NewScheduler()
	var self interface{ Cancel() }
	self = s.Every(time.Millisecond, func() { self.Cancel() })
	if cmd := s.Handle(stepMsg{id: 1}); cmd != nil {
		t.Error("a step that cancels its own task must not reschedule")
	}
}

func TestScheduler_IndependentTasks(t *testing.T) {
	s := NewScheduler()
	var a, b int
	ta := s.Every(time.Millisecond, func() { a++ })
	s.Every(time.Millisecond, func() { b++ })
	ta.Cancel()

	s.Handle(stepMsg{id: 1})
	s.Handle(stepMsg{id: 2})
	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want 0 and 1", a, b)
	}
}

func TestScheduler_DefaultInterval(t *testing.T) {
	s := NewScheduler()
	s.Every(0, func() {})
	if got := s.tasks[1].interval; got <= 0 {
		t.Errorf("interval = %v, want a positive default", got)
	}
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// stepMsg fires one step of a scheduled task.
type stepMsg struct{ id int }

// Scheduler runs repeating widget steps as bubbletea tick messages so they
// execute on the same event loop as key handling. It is not safe for
// concurrent use.
type Scheduler struct {
	nextID  int
	tasks   map[int]*task
	pending []tea.Cmd
}

// NewScheduler creates an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{tasks: make(map[int]*task)}
}

type task struct {
	id       int
	interval time.Duration
	step     func()
	sched    *Scheduler
}

// Every registers step to run every interval. The first tick is queued and
// returned by the next Drain.
func (s *Scheduler) Every(interval time.Duration, step func()) widgets.Task {
	if interval <= 0 {
		interval = widgets.DefaultProgressInterval
	}
	s.nextID++
	t := &task{id: s.nextID, interval: interval, step: step, sched: s}
	s.tasks[t.id] = t
	s.pending = append(s.pending, t.tick())
	return t
}

// Cancel stops the task. A tick already in flight is dropped on arrival.
func (t *task) Cancel() {
	delete(t.sched.tasks, t.id)
}

func (t *task) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return stepMsg{id: id}
	})
}

// Handle runs the step for msg and schedules the following tick. Ticks for
// cancelled tasks are ignored.
func (s *Scheduler) Handle(msg stepMsg) tea.Cmd {
	t, ok := s.tasks[msg.id]
	if !ok {
		return nil
	}
	t.step()
	if _, ok := s.tasks[msg.id]; !ok {
		return nil
	}
	return t.tick()
}

// Drain returns the ticks queued by Every since the last call.
func (s *Scheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active reports the number of live tasks.
func (s *Scheduler) Active() int {
	return len(s.tasks)
}

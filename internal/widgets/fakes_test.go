package widgets

import "time"

type record struct {
	action  string
	details string
}

type recorder struct {
	records []record
}

func (r *recorder) Append(action, details string) {
	r.records = append(r.records, record{action, details})
}

func (r *recorder) last() record {
	if len(r.records) == 0 {
		return record{}
	}
	return r.records[len(r.records)-1]
}

// manualScheduler runs steps only when fire is called.
type manualScheduler struct {
	tasks []*manualTask
}

type manualTask struct {
	interval  time.Duration
	step      func()
	cancelled bool
}

func (t *manualTask) Cancel() { t.cancelled = true }

func (s *manualScheduler) Every(interval time.Duration, step func()) Task {
	t := &manualTask{interval: interval, step: step}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) active() []*manualTask {
	var out []*manualTask
	for _, t := range s.tasks {
		if !t.cancelled {
			out = append(out, t)
		}
	}
	return out
}

// fire runs every active task's step n times.
func (s *manualScheduler) fire(n int) {
	for i := 0; i < n; i++ {
		for _, t := range s.active() {
			t.step()
		}
	}
}

package notifyfakes

import (
	"sync"

	"github.com/jrsteele09/go-gamehub-client/notify"
)

var _ notify.Notifier = (*Recorder)(nil)

// Recorder is a Notifier that records every message for assertions.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Warnings  []string
	Errors    []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, msg)
}

func (r *Recorder) Warning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Warnings = append(r.Warnings, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, msg)
}

// All returns every recorded message in category order.
func (r *Recorder) All() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.Successes)+len(r.Warnings)+len(r.Errors))
	out = append(out, r.Successes...)
	out = append(out, r.Warnings...)
	out = append(out, r.Errors...)
	return out
}

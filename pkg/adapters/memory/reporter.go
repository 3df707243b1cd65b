package memory

import (
	"strings"
	"sync"
)

// Reporter implements ports.Reporter in memory.
// Safe for concurrent use.
type Reporter struct {
	lines []string
	mu    sync.RWMutex
}

// NewReporter creates an empty in-memory reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records the text.
func (r *Reporter) Report(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
}

// Lines returns a copy of everything reported so far.
func (r *Reporter) Lines() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// String joins the reported blocks with newlines.
func (r *Reporter) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return strings.Join(r.lines, "\n")
}

// Reset drops all recorded text.
func (r *Reporter) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}

// Package observ provides lightweight phase timing for CLI runs.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Phase records the duration and metadata of one run phase.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer tracks the execution time of sequential run phases (load,
// tokenize, format).
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Begin starts a phase and returns the function that ends it. The note is
// free-form context shown next to the duration ("12 files", cache hits).
func (t *Timer) Begin(name string) func(note string) {
	start := time.Now()
	return func(note string) {
		t.phases = append(t.phases, Phase{
			Name: name,
			Dur:  time.Since(start),
			Note: note,
		})
	}
}

// Summary returns a human-readable block summarizing all finished phases.
func (t *Timer) Summary() string {
	var sb strings.Builder
	sb.WriteString("timings:\n")
	var total time.Duration
	for _, p := range t.phases {
		total += p.Dur
		fmt.Fprintf(&sb, "  %-12s %7.2f ms", p.Name, millis(p.Dur))
		if p.Note != "" {
			sb.WriteString("  // " + p.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-12s %7.2f ms\n", "total", millis(total))
	return sb.String()
}

// Phases returns the finished phases in order.
func (t *Timer) Phases() []Phase { return t.phases }

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

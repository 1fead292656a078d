package nurikabe

import (
	"fmt"
	"sort"
	"time"
)

// Watch accumulates time spent in each analysis step. The solver is
// single-threaded, so a package-level instance is safe; hypothetical
// clones simply add to the same buckets.
var Watch Stopwatch

type Stopwatch struct {
	buckets map[string]time.Duration
	starts  map[string]time.Time
}

func init() {
	Watch = Stopwatch{
		buckets: make(map[string]time.Duration),
		starts:  make(map[string]time.Time),
	}
}

func (s *Stopwatch) Start(b string) {
	s.starts[b] = time.Now()
	if _, ok := s.buckets[b]; !ok {
		s.buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	start, ok := s.starts[b]
	if !ok {
		return
	}
	s.buckets[b] += time.Since(start)
	delete(s.starts, b)
}

func (s *Stopwatch) Reset() {
	s.buckets = make(map[string]time.Duration)
	s.starts = make(map[string]time.Time)
}

func (s *Stopwatch) Results() string {
	names := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		names = append(names, k)
	}
	sort.Strings(names)
	out := ""
	for _, k := range names {
		out += fmt.Sprintf("%s: %s\n", k, formatDuration(s.buckets[k]))
	}
	return out
}

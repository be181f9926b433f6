// Package stdin drains log lines piped on standard input.
package stdin

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/beccau/fix-mode/internal/source"
)

// StdinSource collects lines from standard input in the background until EOF.
type StdinSource struct {
	mu      sync.Mutex
	lines   []string
	running bool
	stopped bool
}

// New creates a StdinSource.
func New() source.Source {
	return &StdinSource{}
}

func (s *StdinSource) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if ctx.Err() != nil {
				break
			}
			line := scanner.Text()
			if line == "" {
				continue
			}
			s.mu.Lock()
			if s.stopped {
				s.mu.Unlock()
				break
			}
			s.lines = append(s.lines, line)
			s.mu.Unlock()
		}
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()
	return nil
}

// Stop marks the source as done. The scanner goroutine cannot be unblocked
// from a pending stdin read; it exits on EOF or the next scanned line, and
// drops anything scanned after Stop so a disconnected source stays quiescent.
func (s *StdinSource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.running = false
}

func (s *StdinSource) Read() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return nil, nil
	}
	out := s.lines
	s.lines = nil
	return out, nil
}

func (s *StdinSource) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

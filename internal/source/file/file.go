// Package file reads log lines from a file on disk, optionally following it
// for appended lines.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/beccau/fix-mode/internal/source"
	"github.com/beccau/fix-mode/pkg/log"
)

var pollInterval = time.Second

// FileSource reads a log file once, or tail-style when follow is enabled.
type FileSource struct {
	path   string
	follow bool

	mu      sync.Mutex
	lines   []string
	offset  int64
	running bool
	stopCh  chan struct{}
}

// New creates a FileSource for the given path.
func New(path string, follow bool) source.Source {
	return &FileSource{
		path:   path,
		follow: follow,
		stopCh: make(chan struct{}),
	}
}

func (f *FileSource) Start(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return nil
	}

	if err := f.readNew(); err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}

	if !f.follow {
		return nil
	}
	f.running = true
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				f.mu.Lock()
				if err := f.readNew(); err != nil {
					log.Warn("failed to read appended lines",
						zap.String("path", f.path),
						zap.Error(err))
				}
				f.mu.Unlock()
			case <-ctx.Done():
				return
			case <-f.stopCh:
				return
			}
		}
	}()
	return nil
}

func (f *FileSource) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		close(f.stopCh)
		f.running = false
	}
}

func (f *FileSource) Read() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.lines) == 0 {
		return nil, nil
	}
	out := f.lines
	f.lines = nil
	return out, nil
}

// Connected reports whether more lines may still arrive. A one-shot read is
// done as soon as Start returns.
func (f *FileSource) Connected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

// readNew reads lines appended past the current offset. Caller holds the
// mutex.
func (f *FileSource) readNew() error {
	fh, err := os.Open(f.path)
	if err != nil {
		return err
	}
	defer fh.Close()

	info, err := fh.Stat()
	if err != nil {
		return err
	}
	if info.Size() < f.offset {
		// file was truncated or rotated in place, start over
		f.offset = 0
	}
	if info.Size() == f.offset {
		return nil
	}
	if _, err := fh.Seek(f.offset, io.SeekStart); err != nil {
		return err
	}

	reader := bufio.NewReader(fh)
	for {
		chunk, err := reader.ReadString('\n')
		if err == io.EOF {
			// no trailing newline yet: while following, leave the partial
			// line at its offset so it is emitted whole on a later poll
			if chunk != "" && !f.follow {
				f.offset += int64(len(chunk))
				if line := strings.TrimRight(chunk, "\r"); line != "" {
					f.lines = append(f.lines, line)
				}
			}
			return nil
		}
		if err != nil {
			return err
		}
		f.offset += int64(len(chunk))
		if line := strings.TrimRight(chunk, "\r\n"); line != "" {
			f.lines = append(f.lines, line)
		}
	}
}

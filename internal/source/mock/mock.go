// Package mock emits synthetic FIX traffic for demo runs without a log file.
package mock

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/beccau/fix-mode/internal/decoder"
	"github.com/beccau/fix-mode/internal/source"
)

// MockSource generates one order-flow message per tick.
type MockSource struct {
	mu      sync.Mutex
	running bool
	lines   []string
	seq     int
	ticker  *time.Ticker
	stopCh  chan struct{}
}

// New creates a MockSource.
func New() source.Source {
	return &MockSource{stopCh: make(chan struct{})}
}

func (m *MockSource) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return nil
	}
	m.ticker = time.NewTicker(2 * time.Second)
	m.running = true
	// emit one message right away so the first refresh has content
	m.lines = append(m.lines, m.generate())
	go func() {
		for {
			select {
			case <-m.ticker.C:
				m.mu.Lock()
				m.lines = append(m.lines, m.generate())
				m.mu.Unlock()
			case <-ctx.Done():
				return
			case <-m.stopCh:
				return
			}
		}
	}()
	return nil
}

func (m *MockSource) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	m.ticker.Stop()
	close(m.stopCh)
	m.running = false
}

func (m *MockSource) Read() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.lines) == 0 {
		return nil, nil
	}
	out := m.lines
	m.lines = nil
	return out, nil
}

// Connected for MockSource always returns true while running.
func (m *MockSource) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

var (
	symbols  = []string{"MSFT", "AAPL", "ORCL", "IBM", "TSLA"}
	sides    = []string{"1", "2"}
	msgTypes = []string{"D", "8", "F", "0"}
)

// generate builds one FIX.4.4 message. Caller holds the mutex.
func (m *MockSource) generate() string {
	m.seq++
	fields := []string{
		"8=FIX.4.4",
		"9=176",
		"35=" + msgTypes[rand.Intn(len(msgTypes))],
		"34=" + strconv.Itoa(m.seq),
		"49=MOCKSND",
		"56=MOCKTGT",
		"52=" + time.Now().UTC().Format("20060102-15:04:05"),
		"11=" + fmt.Sprintf("ORD%05d", m.seq),
		"55=" + symbols[rand.Intn(len(symbols))],
		"54=" + sides[rand.Intn(len(sides))],
		"38=" + strconv.Itoa((rand.Intn(20)+1)*100),
		"40=2",
		"44=" + fmt.Sprintf("%.2f", 50+rand.Float64()*150),
		"10=000",
	}
	return strings.Join(fields, decoder.DelimiterSOH)
}

package stdin

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapStdin points os.Stdin at a pipe and returns its write end.
func swapStdin(t *testing.T) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = old
		r.Close()
		w.Close()
	})
	return w
}

func TestReadPipedLines(t *testing.T) {
	w := swapStdin(t)

	src := New()
	require.NoError(t, src.Start(context.Background()))

	_, err := w.WriteString("8=FIX.4.4|35=D|\n\n8=FIX.4.4|35=8|\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var got []string
	require.Eventually(t, func() bool {
		lines, err := src.Read()
		require.NoError(t, err)
		got = append(got, lines...)
		return len(got) == 2 && !src.Connected()
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "8=FIX.4.4|35=D|", got[0])
	assert.Equal(t, "8=FIX.4.4|35=8|", got[1])
}

func TestStopDropsLateLines(t *testing.T) {
	w := swapStdin(t)

	src := New()
	require.NoError(t, src.Start(context.Background()))

	_, err := w.WriteString("8=FIX.4.4|35=D|\n")
	require.NoError(t, err)

	var got []string
	require.Eventually(t, func() bool {
		lines, err := src.Read()
		require.NoError(t, err)
		got = append(got, lines...)
		return len(got) == 1
	}, 2*time.Second, 10*time.Millisecond)

	src.Stop()
	assert.False(t, src.Connected())

	// anything scanned after Stop must not surface
	_, err = w.WriteString("8=FIX.4.4|35=8|\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	time.Sleep(100 * time.Millisecond)
	lines, err := src.Read()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

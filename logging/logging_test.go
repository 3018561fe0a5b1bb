package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sandpile/logging"
)

func TestPrintfFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf)
	logging.SetClock(l, func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) })

	l.Printf("Ran in (%f) seconds\n", 1.5)
	require.Equal(t, "[2024-03-01T12:00:00Z] Ran in (1.500000) seconds\n", buf.String())
	require.NoError(t, l.Close())
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *logging.Logger
	require.NotPanics(t, func() { l.Printf("ignored %d", 1) })
	require.NoError(t, l.Close())
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sandpile.log")
	for i := 0; i < 2; i++ {
		l, err := logging.Open(path)
		require.NoError(t, err)
		l.Printf("run %d", i)
		require.NoError(t, l.Close())
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "] run 0"))
	require.True(t, strings.HasSuffix(lines[1], "] run 1"))
}

func TestOpenFailsOnDirectory(t *testing.T) {
	_, err := logging.Open(t.TempDir())
	require.Error(t, err)
}

func TestConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New(&buf)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Printf("rank %02d done", i)
		}()
	}
	wg.Wait()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 16)
	for _, line := range lines {
		require.Regexp(t, `^\[[^\]]+\] rank \d\d done$`, line)
	}
}

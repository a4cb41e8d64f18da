package poller

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBellSounderBeepsUntilStopped(t *testing.T) {
	out := &syncBuffer{}
	sounder := NewBellSounder(out, 10*time.Millisecond)

	stop := sounder.Start()
	time.Sleep(55 * time.Millisecond)
	stop()

	beeps := strings.Count(out.String(), "\a")
	if beeps < 2 {
		t.Errorf("expected repeated beeps, got %d", beeps)
	}

	// Stopping again is a no-op.
	stop()

	time.Sleep(30 * time.Millisecond)
	if after := strings.Count(out.String(), "\a"); after != beeps {
		t.Errorf("expected no beeps after stop, got %d more", after-beeps)
	}
}

func TestNewBellSounderDefaultInterval(t *testing.T) {
	sounder := NewBellSounder(&syncBuffer{}, 0)
	if sounder.interval != DefaultBeepInterval {
		t.Errorf("expected default interval %v, got %v", DefaultBeepInterval, sounder.interval)
	}
}

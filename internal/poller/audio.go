package poller

import (
	"io"
	"sync"
	"time"
)

const DefaultBeepInterval = 600 * time.Millisecond

// BellSounder rings the terminal bell until stopped.
type BellSounder struct {
	out      io.Writer
	interval time.Duration
}

func NewBellSounder(out io.Writer, interval time.Duration) *BellSounder {
	if interval <= 0 {
		interval = DefaultBeepInterval
	}

	return &BellSounder{
		out:      out,
		interval: interval,
	}
}

// Start beeps immediately and then every interval. stop blocks until the loop has exited.
func (s *BellSounder) Start() func() {
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.beep()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.beep()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
		})
	}
}

func (s *BellSounder) beep() {
	_, _ = io.WriteString(s.out, "\a")
}

package poller

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

// TerminalPresenter prints the alarm and treats the next entered line as the button press.
type TerminalPresenter struct {
	out      io.Writer
	location *time.Location
	lines    <-chan string
}

func NewTerminalPresenter(in io.Reader, out io.Writer, location *time.Location) *TerminalPresenter {
	if location == nil {
		location = time.Local
	}

	return &TerminalPresenter{
		out:      out,
		location: location,
		lines:    readLines(in),
	}
}

// readLines reads in on a single goroutine for the life of the process, so a cancelled
// presentation never leaves a reader behind that swallows the next press.
func readLines(in io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func (p *TerminalPresenter) Present(ctx context.Context, alarm domain.QueueEntry, label string) error {
	p.drain()

	if _, err := io.WriteString(p.out, p.render(alarm, label)); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case _, ok := <-p.lines:
		if !ok {
			return io.EOF
		}
		return nil
	}
}

// drain drops input typed while no alarm was on screen.
func (p *TerminalPresenter) drain() {
	for {
		select {
		case _, ok := <-p.lines:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func (p *TerminalPresenter) render(alarm domain.QueueEntry, label string) string {
	var b strings.Builder

	headline := "UPCOMING VISIT"
	if alarm.TriggerType.IsExact() {
		headline = "VISIT TIME NOW"
	}

	rule := strings.Repeat("=", 48)
	fmt.Fprintf(&b, "\n%s\n  %s\n%s\n", rule, headline, rule)
	fmt.Fprintf(&b, "  Name:      %s\n", orDash(alarm.Record.Name))
	fmt.Fprintf(&b, "  Phone:     %s\n", orDash(alarm.Record.PhoneNumber))
	fmt.Fprintf(&b, "  Scheduled: %s\n", alarm.ScheduledDatetime.In(p.location).Format("Mon 02 Jan 2006 15:04"))
	fmt.Fprintf(&b, "  Response:  %s\n", orDash(alarm.Record.Response))
	fmt.Fprintf(&b, "  Notes:     %s\n", orDash(alarm.Record.Notes))
	fmt.Fprintf(&b, "%s\n  Press Enter: [ %s ]\n", strings.Repeat("-", 48), label)

	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

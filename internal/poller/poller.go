package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

const (
	DefaultInterval = 30 * time.Second
	DefaultTimeout  = 10 * time.Second

	LabelAdvance = "OK, GOT IT"
	LabelExact   = "STOP ALARM"
)

type State string

const (
	StateIdle           State = "idle"
	StatePolling        State = "polling"
	StateAlarmPresented State = "alarm_presented"
	StateAcknowledging  State = "acknowledging"
)

type API interface {
	CheckReminders(ctx context.Context) (int, error)
	FetchQueue(ctx context.Context) ([]domain.QueueEntry, error)
	Dismiss(ctx context.Context, queueID string) error
}

// Presenter shows one alarm and blocks until the caller presses its button.
// A nil error means the caller acted.
type Presenter interface {
	Present(ctx context.Context, alarm domain.QueueEntry, label string) error
}

// Sounder starts the looping audio cue. The returned stop func must be safe to call repeatedly.
type Sounder interface {
	Start() (stop func())
}

type Options struct {
	Interval time.Duration
	Timeout  time.Duration
}

type Poller struct {
	api       API
	presenter Presenter
	sounder   Sounder
	interval  time.Duration
	timeout   time.Duration

	mu    sync.Mutex
	state State
}

func New(api API, presenter Presenter, sounder Sounder, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &Poller{
		api:       api,
		presenter: presenter,
		sounder:   sounder,
		interval:  opts.Interval,
		timeout:   opts.Timeout,
		state:     StateIdle,
	}
}

func Label(trigger domain.TriggerType) string {
	if trigger.IsExact() {
		return LabelExact
	}
	return LabelAdvance
}

func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) setState(state State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
}

// Run polls once immediately and then on every interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "alarm poller started",
		slog.Duration("interval", p.interval),
		slog.Duration("timeout", p.timeout),
	)

	p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			p.setState(StateIdle)
			slog.InfoContext(ctx, "alarm poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	defer p.setState(StateIdle)

	if ctx.Err() != nil {
		return
	}
	p.setState(StatePolling)

	checkCtx, cancel := context.WithTimeout(ctx, p.timeout)
	queued, err := p.api.CheckReminders(checkCtx)
	cancel()
	if err != nil {
		slog.WarnContext(ctx, "failed to check reminders",
			slog.String("error", err.Error()),
		)
	} else if queued > 0 {
		slog.InfoContext(ctx, "new alarms queued", slog.Int("newly_queued", queued))
	}

	entries, err := p.fetch(ctx)
	if err != nil {
		return
	}

	for len(entries) > 0 {
		if ctx.Err() != nil {
			return
		}

		if !p.present(ctx, entries[0]) {
			return
		}

		if !p.acknowledge(ctx, entries[0]) {
			return
		}

		// Present the next alarm right away instead of waiting for the next tick.
		entries, err = p.fetch(ctx)
		if err != nil {
			return
		}
	}
}

func (p *Poller) fetch(ctx context.Context) ([]domain.QueueEntry, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	entries, err := p.api.FetchQueue(fetchCtx)
	if err != nil {
		slog.WarnContext(ctx, "failed to fetch alarm queue",
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return entries, nil
}

// present reports whether the caller acted on the alarm.
func (p *Poller) present(ctx context.Context, alarm domain.QueueEntry) bool {
	p.setState(StateAlarmPresented)

	stop := sync.OnceFunc(p.sounder.Start())
	defer stop()

	err := p.presenter.Present(ctx, alarm, Label(alarm.TriggerType))
	stop()

	if err != nil {
		if ctx.Err() == nil {
			slog.WarnContext(ctx, "alarm presentation failed",
				slog.String("queue_id", alarm.QueueID),
				slog.String("error", err.Error()),
			)
		}
		return false
	}
	return true
}

// acknowledge reports whether polling may continue with the next alarm.
func (p *Poller) acknowledge(ctx context.Context, alarm domain.QueueEntry) bool {
	p.setState(StateAcknowledging)

	dismissCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.api.Dismiss(dismissCtx, alarm.QueueID)
	switch {
	case err == nil:
		slog.InfoContext(ctx, "alarm dismissed",
			slog.String("queue_id", alarm.QueueID),
			slog.String("trigger_type", alarm.TriggerType.String()),
		)
		return true
	case errors.Is(err, ErrNotFound):
		// Dismissed elsewhere already.
		slog.DebugContext(ctx, "alarm already dismissed",
			slog.String("queue_id", alarm.QueueID),
		)
		return true
	default:
		slog.WarnContext(ctx, "failed to dismiss alarm, will retry on next poll",
			slog.String("queue_id", alarm.QueueID),
			slog.String("error", err.Error()),
		)
		return false
	}
}

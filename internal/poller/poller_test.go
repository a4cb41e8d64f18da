package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

type fakeAPI struct {
	mu         sync.Mutex
	queue      []domain.QueueEntry
	checkErr   error
	fetchErr   error
	dismissErr map[string]error
	checks     int
	fetches    int
	dismissed  []string
}

func (f *fakeAPI) CheckReminders(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checks++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("request without deadline")
	}
	return 0, f.checkErr
}

func (f *fakeAPI) FetchQueue(ctx context.Context) ([]domain.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("request without deadline")
	}
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return append([]domain.QueueEntry(nil), f.queue...), nil
}

func (f *fakeAPI) Dismiss(_ context.Context, queueID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.dismissErr[queueID]; err != nil {
		return err
	}
	f.dismissed = append(f.dismissed, queueID)
	for i, e := range f.queue {
		if e.QueueID == queueID {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeAPI) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checks + f.fetches + len(f.dismissed)
}

type fakeSounder struct {
	mu     sync.Mutex
	starts int
	active int
}

func (f *fakeSounder) Start() func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.starts++
	f.active++

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.active--
		})
	}
}

func (f *fakeSounder) snapshot() (starts, active int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.starts, f.active
}

type presentation struct {
	queueID string
	label   string
	state   State
	sounds  int
}

type fakePresenter struct {
	mu        sync.Mutex
	poller    *Poller
	sounder   *fakeSounder
	shown     []presentation
	block     bool
	presented chan struct{}
}

func (f *fakePresenter) Present(ctx context.Context, alarm domain.QueueEntry, label string) error {
	_, active := f.sounder.snapshot()

	f.mu.Lock()
	f.shown = append(f.shown, presentation{
		queueID: alarm.QueueID,
		label:   label,
		state:   f.poller.State(),
		sounds:  active,
	})
	f.mu.Unlock()

	if f.presented != nil {
		f.presented <- struct{}{}
	}
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func entry(id string, trigger domain.TriggerType) domain.QueueEntry {
	return domain.QueueEntry{QueueID: id, CallerID: 1, ReminderID: 1, TriggerType: trigger}
}

func newTestPoller(api *fakeAPI) (*Poller, *fakePresenter, *fakeSounder) {
	sounder := &fakeSounder{}
	presenter := &fakePresenter{sounder: sounder}
	p := New(api, presenter, sounder, Options{Interval: time.Hour, Timeout: time.Second})
	presenter.poller = p
	return p, presenter, sounder
}

func TestPollPresentsAlarmsOneAtATime(t *testing.T) {
	api := &fakeAPI{
		queue: []domain.QueueEntry{
			entry("a", domain.TriggerAdvance),
			entry("b", domain.TriggerExact),
		},
	}
	p, presenter, sounder := newTestPoller(api)

	p.poll(context.Background())

	if len(presenter.shown) != 2 {
		t.Fatalf("expected 2 presentations, got %d", len(presenter.shown))
	}

	expected := []presentation{
		{queueID: "a", label: LabelAdvance, state: StateAlarmPresented, sounds: 1},
		{queueID: "b", label: LabelExact, state: StateAlarmPresented, sounds: 1},
	}
	for i, want := range expected {
		if presenter.shown[i] != want {
			t.Errorf("presentation %d: expected %+v, got %+v", i, want, presenter.shown[i])
		}
	}

	if len(api.dismissed) != 2 || api.dismissed[0] != "a" || api.dismissed[1] != "b" {
		t.Errorf("expected dismissals [a b], got %v", api.dismissed)
	}

	starts, active := sounder.snapshot()
	if starts != 2 || active != 0 {
		t.Errorf("expected 2 starts and no active sound, got starts=%d active=%d", starts, active)
	}
	if p.State() != StateIdle {
		t.Errorf("expected idle after poll, got %s", p.State())
	}
}

func TestPollFailures(t *testing.T) {
	tests := []struct {
		name              string
		api               *fakeAPI
		expectedShown     int
		expectedDismissed []string
		expectedRemaining int
	}{
		{
			name: "failed check still fetches",
			api: &fakeAPI{
				checkErr: errors.New("timeout"),
				queue:    []domain.QueueEntry{entry("a", domain.TriggerAdvance)},
			},
			expectedShown:     1,
			expectedDismissed: []string{"a"},
		},
		{
			name: "failed fetch presents nothing",
			api: &fakeAPI{
				fetchErr: errors.New("connection refused"),
				queue:    []domain.QueueEntry{entry("a", domain.TriggerAdvance)},
			},
			expectedShown:     0,
			expectedRemaining: 1,
		},
		{
			name: "transient dismiss failure returns to idle",
			api: &fakeAPI{
				queue:      []domain.QueueEntry{entry("a", domain.TriggerExact), entry("b", domain.TriggerAdvance)},
				dismissErr: map[string]error{"a": &APIError{StatusCode: 503}},
			},
			expectedShown:     1,
			expectedRemaining: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, presenter, sounder := newTestPoller(tt.api)

			p.poll(context.Background())

			if len(presenter.shown) != tt.expectedShown {
				t.Errorf("expected %d presentations, got %d", tt.expectedShown, len(presenter.shown))
			}
			if len(tt.api.dismissed) != len(tt.expectedDismissed) {
				t.Errorf("expected dismissals %v, got %v", tt.expectedDismissed, tt.api.dismissed)
			}
			if len(tt.api.queue) != tt.expectedRemaining {
				t.Errorf("expected %d remaining entries, got %d", tt.expectedRemaining, len(tt.api.queue))
			}
			if _, active := sounder.snapshot(); active != 0 {
				t.Errorf("expected sound stopped, %d active", active)
			}
			if p.State() != StateIdle {
				t.Errorf("expected idle, got %s", p.State())
			}
		})
	}
}

// notFoundOnceAPI reports the first entry as dismissed elsewhere and drops it.
type notFoundOnceAPI struct {
	*fakeAPI
}

func (f notFoundOnceAPI) Dismiss(ctx context.Context, queueID string) error {
	f.mu.Lock()
	if queueID == "a" {
		f.queue = f.queue[1:]
		f.mu.Unlock()
		return ErrNotFound
	}
	f.mu.Unlock()
	return f.fakeAPI.Dismiss(ctx, queueID)
}

func TestPollNotFoundDismissContinues(t *testing.T) {
	api := &fakeAPI{
		queue: []domain.QueueEntry{entry("a", domain.TriggerExact), entry("b", domain.TriggerAdvance)},
	}
	sounder := &fakeSounder{}
	presenter := &fakePresenter{sounder: sounder}
	p := New(notFoundOnceAPI{api}, presenter, sounder, Options{Interval: time.Hour, Timeout: time.Second})
	presenter.poller = p

	p.poll(context.Background())

	if len(presenter.shown) != 2 {
		t.Fatalf("expected both alarms to be presented, got %d", len(presenter.shown))
	}
	if len(api.dismissed) != 1 || api.dismissed[0] != "b" {
		t.Errorf("expected b to be dismissed, got %v", api.dismissed)
	}
}

func TestTransientDismissIsRetriedOnNextPoll(t *testing.T) {
	api := &fakeAPI{
		queue:      []domain.QueueEntry{entry("a", domain.TriggerExact)},
		dismissErr: map[string]error{"a": &APIError{StatusCode: 503}},
	}
	p, presenter, _ := newTestPoller(api)

	p.poll(context.Background())

	api.mu.Lock()
	delete(api.dismissErr, "a")
	api.mu.Unlock()

	p.poll(context.Background())

	if len(presenter.shown) != 2 || presenter.shown[1].queueID != "a" {
		t.Fatalf("expected a to be presented again, got %+v", presenter.shown)
	}
	if len(api.dismissed) != 1 {
		t.Errorf("expected a single successful dismissal, got %v", api.dismissed)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	api := &fakeAPI{
		queue: []domain.QueueEntry{entry("a", domain.TriggerExact)},
	}
	p, presenter, sounder := newTestPoller(api)
	presenter.block = true
	presenter.presented = make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	select {
	case <-presenter.presented:
	case <-time.After(5 * time.Second):
		t.Fatal("alarm was never presented")
	}

	if _, active := sounder.snapshot(); active != 1 {
		t.Errorf("expected sound playing while presented, %d active", active)
	}

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if _, active := sounder.snapshot(); active != 0 {
		t.Errorf("expected sound stopped after cancel, %d active", active)
	}
	if len(api.dismissed) != 0 {
		t.Errorf("expected no dismissal after cancel, got %v", api.dismissed)
	}

	requests := api.requestCount()
	time.Sleep(50 * time.Millisecond)
	if api.requestCount() != requests {
		t.Error("expected no requests after Run returned")
	}
	if p.State() != StateIdle {
		t.Errorf("expected idle after cancel, got %s", p.State())
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		trigger  domain.TriggerType
		expected string
	}{
		{trigger: domain.TriggerAdvance, expected: "OK, GOT IT"},
		{trigger: domain.TriggerExact, expected: "STOP ALARM"},
	}

	for _, tt := range tests {
		t.Run(tt.trigger.String(), func(t *testing.T) {
			if got := Label(tt.trigger); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

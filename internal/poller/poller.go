package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/metrics"
)

// DefaultSchedule matches the five minute cadence of the upstream feed.
const DefaultSchedule = "@every 5m"

// Config controls when poll cycles run.
type Config struct {
	Schedule   string
	RunOnStart bool
}

// Poller runs the orchestrator on a cron schedule and tracks recent health.
type Poller struct {
	orchestrator *Orchestrator
	logger       *slog.Logger
	metrics      *metrics.Recorder
	schedule     string
	runOnStart   bool
	now          func() time.Time

	cron     *cron.Cron
	startMu  sync.Mutex
	started  bool
	stopOnce sync.Once
	cycleMu  sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poll loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastResult          *Result
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. An unparseable schedule is rejected here rather than at Start.
func New(orchestrator *Orchestrator, cfg Config, logger *slog.Logger, recorder *metrics.Recorder) (*Poller, error) {
	schedule := cfg.Schedule
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid poll schedule %q: %w", schedule, err)
	}
	return &Poller{
		orchestrator: orchestrator,
		logger:       logger,
		metrics:      recorder,
		schedule:     schedule,
		runOnStart:   cfg.RunOnStart,
		now:          time.Now,
	}, nil
}

// Start registers the cron job and begins scheduling. Cycles stop when ctx is
// cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) error {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.started {
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: p.logger})))
	if _, err := c.AddFunc(p.schedule, func() {
		if ctx.Err() != nil {
			return
		}
		_, _ = p.PollOnce(ctx)
	}); err != nil {
		return fmt.Errorf("schedule poll: %w", err)
	}
	p.cron = c
	p.started = true
	c.Start()
	logging.Info(p.logger, "poller started", "schedule", p.schedule)

	if p.runOnStart {
		go func() { _, _ = p.PollOnce(ctx) }()
	}
	go func() {
		<-ctx.Done()
		_ = p.Stop(context.Background())
	}()
	return nil
}

// Stop halts scheduling and waits for a running cycle or ctx, whichever comes first.
func (p *Poller) Stop(ctx context.Context) error {
	p.startMu.Lock()
	c := p.cron
	p.startMu.Unlock()
	if c == nil {
		return nil
	}
	var err error
	p.stopOnce.Do(func() {
		done := c.Stop()
		select {
		case <-done.Done():
			logging.Info(p.logger, "poller stopped")
		case <-ctx.Done():
			err = ctx.Err()
		}
	})
	return err
}

// PollOnce runs one cycle immediately. Concurrent callers are serialized.
func (p *Poller) PollOnce(ctx context.Context) (Result, error) {
	p.cycleMu.Lock()
	defer p.cycleMu.Unlock()

	start := p.now()
	p.recordAttempt(start)
	result, err := p.orchestrator.PollTodayGame(ctx, start)
	duration := time.Since(start)
	p.metrics.RecordPollerCycle(duration, err)
	if err != nil {
		logging.Error(p.logger, "poll cycle failed", err, logging.FieldDurationMS, duration.Milliseconds())
		p.recordFailure(err, start)
		return Result{}, err
	}
	p.recordSuccess(start, result)
	return result, nil
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, result Result) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastResult = &result
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logging.Debug(l.logger, "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logging.Error(l.logger, "cron: "+msg, err, keysAndValues...)
}

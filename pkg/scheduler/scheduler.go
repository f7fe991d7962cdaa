package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"frotaweb/pkg/config"
	"frotaweb/pkg/logger"
	"frotaweb/pkg/relay"
)

// Job statuses
const (
	JobStatusScheduled = "scheduled"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Names of the built-in jobs
const (
	JobRelayProbe = "relay_probe"
	JobTokenPrune = "token_prune"
	JobLogFlush   = "log_flush"
)

// Error variables
var (
	ErrJobNotFound = errors.New("job not found")
	ErrJobFailed   = errors.New("scheduled job failed")
)

// Prober checks whether the form relay answers.
type Prober interface {
	Probe(ctx context.Context) relay.ProbeStatus
}

// Pruner drops expired entries and reports how many went.
type Pruner interface {
	Prune() int
}

// Config holds scheduler configuration and the components the jobs act on
type Config struct {
	Scheduler *config.SchedulerConfig
	Relay     Prober
	Pruners   []Pruner
	// Flush defaults to logger.Sync.
	Flush func() error
}

// JobFunc is the body of a scheduled job.
type JobFunc func(ctx context.Context) error

// TaskScheduler manages scheduled jobs using cron
type TaskScheduler struct {
	cron      *cron.Cron
	config    *Config
	ctx       context.Context
	jobs      map[string]*ScheduledJob
	jobsMutex sync.RWMutex
	running   bool
}

// ScheduledJob represents a scheduled job
type ScheduledJob struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Cron      string       `json:"cron"`
	NextRun   time.Time    `json:"next_run"`
	LastRun   time.Time    `json:"last_run"`
	Status    string       `json:"status"`
	Runs      int          `json:"runs"`
	LastError string       `json:"last_error,omitempty"`
	EntryID   cron.EntryID `json:"-"`

	run JobFunc
}

// Status is a point-in-time view of the scheduler
type Status struct {
	Running   bool           `json:"running"`
	JobCount  int            `json:"job_count"`
	Entries   int            `json:"entries"`
	Timestamp time.Time      `json:"timestamp"`
	Jobs      []ScheduledJob `json:"jobs"`
}

// NewTaskScheduler creates a new task scheduler
func NewTaskScheduler(ctx context.Context, config *Config) (*TaskScheduler, error) {
	logger.Info("Initializing task scheduler")

	if config.Flush == nil {
		config.Flush = logger.Sync
	}

	cronScheduler := cron.New(
		cron.WithChain(cron.Recover(cron.DefaultLogger)),
	)

	scheduler := &TaskScheduler{
		cron:   cronScheduler,
		config: config,
		ctx:    ctx,
		jobs:   make(map[string]*ScheduledJob),
	}

	if err := scheduler.loadConfiguredJobs(); err != nil {
		return nil, fmt.Errorf("failed to load configured jobs: %w", err)
	}

	logger.Info("Task scheduler initialized", zap.Int("job_count", len(scheduler.jobs)))
	return scheduler, nil
}

// Start starts the task scheduler and blocks until its context is cancelled
func (ts *TaskScheduler) Start() error {
	logger.Info("Starting task scheduler")

	ts.cron.Start()

	ts.jobsMutex.Lock()
	ts.running = true
	for _, job := range ts.jobs {
		if err := ts.updateJobNextRunTime(job); err != nil {
			logger.Warn("Failed to update next run time after start",
				zap.String("job_name", job.Name),
				zap.Error(err))
		}
	}
	ts.jobsMutex.Unlock()

	ts.logScheduledJobs()

	<-ts.ctx.Done()
	logger.Info("Task scheduler context cancelled")

	return nil
}

// Shutdown stops the cron loop and waits for running jobs or ctx
func (ts *TaskScheduler) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down task scheduler")

	cronCtx := ts.cron.Stop()

	ts.jobsMutex.Lock()
	ts.running = false
	ts.jobsMutex.Unlock()

	select {
	case <-cronCtx.Done():
		logger.Info("All scheduled jobs completed")
	case <-ctx.Done():
		logger.Warn("Scheduler shutdown timeout, some jobs may still be running")
		return ctx.Err()
	}

	return nil
}

// AddJob schedules fn under name with a standard five-field cron expression
func (ts *TaskScheduler) AddJob(name, spec string, fn JobFunc) (*ScheduledJob, error) {
	ts.jobsMutex.Lock()
	defer ts.jobsMutex.Unlock()

	job := &ScheduledJob{
		ID:   uuid.New().String(),
		Name: name,
		Cron: spec,
		run:  fn,
	}

	entryID, err := ts.cron.AddFunc(job.Cron, func() { ts.execute(job) })
	if err != nil {
		return nil, fmt.Errorf("failed to add cron job %s: %w", name, err)
	}

	job.EntryID = entryID
	job.Status = JobStatusScheduled

	if err := ts.updateJobNextRunTime(job); err != nil {
		logger.Warn("Failed to update next run time", zap.String("job_name", job.Name), zap.Error(err))
	}

	ts.jobs[job.ID] = job

	logger.Info("Added scheduled job",
		zap.String("job_id", job.ID),
		zap.String("job_name", job.Name),
		zap.String("cron", job.Cron),
		zap.Time("next_run", job.NextRun),
	)

	return job, nil
}

// RemoveJob removes a scheduled job
func (ts *TaskScheduler) RemoveJob(jobID string) error {
	ts.jobsMutex.Lock()
	defer ts.jobsMutex.Unlock()

	job, exists := ts.jobs[jobID]
	if !exists {
		return fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	ts.cron.Remove(job.EntryID)
	delete(ts.jobs, jobID)

	logger.Info("Removed scheduled job", zap.String("job_id", jobID), zap.String("job_name", job.Name))
	return nil
}

// RunJob executes the named job immediately, outside its schedule
func (ts *TaskScheduler) RunJob(name string) error {
	ts.jobsMutex.RLock()
	var job *ScheduledJob
	for _, j := range ts.jobs {
		if j.Name == name {
			job = j
			break
		}
	}
	ts.jobsMutex.RUnlock()

	if job == nil {
		return fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}
	return ts.execute(job)
}

// GetJobs returns a snapshot of all scheduled jobs ordered by name
func (ts *TaskScheduler) GetJobs() []ScheduledJob {
	ts.jobsMutex.Lock()
	defer ts.jobsMutex.Unlock()

	jobs := make([]ScheduledJob, 0, len(ts.jobs))
	for _, job := range ts.jobs {
		_ = ts.updateJobNextRunTime(job)
		jobs = append(jobs, *job)
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Name < jobs[j].Name })

	return jobs
}

// GetJob returns a snapshot of a specific scheduled job
func (ts *TaskScheduler) GetJob(jobID string) (ScheduledJob, error) {
	ts.jobsMutex.RLock()
	defer ts.jobsMutex.RUnlock()

	job, exists := ts.jobs[jobID]
	if !exists {
		return ScheduledJob{}, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}

	return *job, nil
}

// GetStatus returns scheduler status
func (ts *TaskScheduler) GetStatus() *Status {
	jobs := ts.GetJobs()

	ts.jobsMutex.RLock()
	defer ts.jobsMutex.RUnlock()

	return &Status{
		Running:   ts.running,
		JobCount:  len(jobs),
		Entries:   len(ts.cron.Entries()),
		Timestamp: time.Now().UTC(),
		Jobs:      jobs,
	}
}

// loadConfiguredJobs registers the built-in jobs whose cron expression is set
func (ts *TaskScheduler) loadConfiguredJobs() error {
	cfg := ts.config.Scheduler
	if cfg == nil || !cfg.Enabled {
		logger.Info("Scheduler disabled, no jobs loaded")
		return nil
	}

	type builtin struct {
		name string
		spec string
		fn   JobFunc
	}
	var jobs []builtin
	if ts.config.Relay != nil && cfg.RelayProbeCron != "" {
		jobs = append(jobs, builtin{JobRelayProbe, cfg.RelayProbeCron, ts.probeRelay})
	}
	if len(ts.config.Pruners) > 0 && cfg.TokenPruneCron != "" {
		jobs = append(jobs, builtin{JobTokenPrune, cfg.TokenPruneCron, ts.prune})
	}
	if cfg.LogFlushCron != "" {
		jobs = append(jobs, builtin{JobLogFlush, cfg.LogFlushCron, ts.flushLogs})
	}

	for _, j := range jobs {
		if _, err := ts.AddJob(j.name, j.spec, j.fn); err != nil {
			return err
		}
	}
	return nil
}

func (ts *TaskScheduler) probeRelay(ctx context.Context) error {
	status := ts.config.Relay.Probe(ctx)
	log := logger.FromContext(ctx)
	if !status.Reachable {
		log.Warn("Form relay unreachable",
			zap.Int("status_code", status.StatusCode),
			zap.Duration("latency", status.Latency),
			zap.String("error", status.Error))
		return fmt.Errorf("%w: %s", relay.ErrUnreachable, status.Error)
	}
	log.Debug("Form relay reachable",
		zap.Int("status_code", status.StatusCode),
		zap.Duration("latency", status.Latency))
	return nil
}

func (ts *TaskScheduler) prune(ctx context.Context) error {
	removed := 0
	for _, p := range ts.config.Pruners {
		removed += p.Prune()
	}
	logger.FromContext(ctx).Debug("Pruned expired entries", zap.Int("removed", removed))
	return nil
}

// flushLogs ignores the errors fsync reports for terminals and pipes.
func (ts *TaskScheduler) flushLogs(ctx context.Context) error {
	err := ts.config.Flush()
	if err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}

// execute runs job once under a fresh run id
func (ts *TaskScheduler) execute(job *ScheduledJob) error {
	runID := uuid.New().String()
	ctx := logger.WithJobID(ts.ctx, runID)
	log := logger.FromContext(ctx).With(zap.String("job_name", job.Name))

	log.Debug("Executing scheduled job")

	ts.jobsMutex.Lock()
	job.Status = JobStatusRunning
	job.LastRun = time.Now()
	job.Runs++
	ts.jobsMutex.Unlock()

	err := job.run(ctx)

	ts.jobsMutex.Lock()
	defer ts.jobsMutex.Unlock()
	if err != nil {
		log.Error("Scheduled job failed", zap.Error(err))
		job.Status = JobStatusFailed
		job.LastError = err.Error()
		return fmt.Errorf("%w: %s: %w", ErrJobFailed, job.Name, err)
	}
	job.Status = JobStatusCompleted
	job.LastError = ""
	return nil
}

// logScheduledJobs logs information about all scheduled jobs
func (ts *TaskScheduler) logScheduledJobs() {
	ts.jobsMutex.RLock()
	defer ts.jobsMutex.RUnlock()

	if len(ts.jobs) == 0 {
		logger.Info("No scheduled jobs configured")
		return
	}

	for _, job := range ts.jobs {
		logger.Info("Scheduled job",
			zap.String("job_name", job.Name),
			zap.String("cron", job.Cron),
			zap.Time("next_run", job.NextRun),
			zap.String("status", job.Status),
		)
	}
}

// updateJobNextRunTime updates the next run time for a job. Callers hold jobsMutex.
func (ts *TaskScheduler) updateJobNextRunTime(job *ScheduledJob) error {
	for _, entry := range ts.cron.Entries() {
		if entry.ID == job.EntryID && !entry.Next.IsZero() {
			job.NextRun = entry.Next
			return nil
		}
	}

	// Before Start the cron entries carry no next time yet
	schedule, err := cron.ParseStandard(job.Cron)
	if err != nil {
		return fmt.Errorf("failed to parse cron expression %s: %w", job.Cron, err)
	}
	job.NextRun = schedule.Next(time.Now())
	return nil
}

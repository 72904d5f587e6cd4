package game

import (
	"context"
	"reflect"
	"time"
)

// System is one step of the game loop. Systems run in registration order
// once per frame.
type System interface {
	Execute(frame *UpdateFrame)
}

type UpdateFrame struct {
	Context   context.Context
	DeltaTime float64
	Session   *Session
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems against a session and records their timings.
type Scheduler struct {
	session     *Session
	systems     []System
	systemStats []*systemStatsInternal
}

// NewScheduler creates a scheduler for the given session with no systems.
func NewScheduler(session *Session) *Scheduler {
	return &Scheduler{
		session: session,
		systems: make([]System, 0),
	}
}

// NewDefaultScheduler creates a scheduler with DefaultSystems registered.
func NewDefaultScheduler(session *Session) *Scheduler {
	s := NewScheduler(session)
	for _, system := range DefaultSystems() {
		s.Register(system)
	}
	return s
}

func (s *Scheduler) Session() *Session {
	return s.session
}

// Register appends a system to the run order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once runs every system once with the given delta time in seconds, then
// flushes the session's events.
func (s *Scheduler) Once(dt float64) {
	s.once(context.Background(), dt)
}

func (s *Scheduler) once(ctx context.Context, dt float64) {
	frame := &UpdateFrame{
		Context:   ctx,
		DeltaTime: dt,
		Session:   s.session,
	}

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.session.Flush()
}

// Run executes all systems at the given interval until the context is
// cancelled or the game is over.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.once(ctx, dt)
			if s.session.Over() {
				return
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

package earnings

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"moneytracker/internal/schedule"
)

type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// Session tracks one day of earnings. The schedule and salary are copied at
// Start and stay fixed until Reset.
type Session struct {
	ID        string
	State     State
	Schedule  schedule.Schedule
	Rates     Rates
	StartedAt time.Time

	loc *time.Location
	log *slog.Logger
}

// NewSession returns a stopped session measuring time in loc.
func NewSession(log *slog.Logger, loc *time.Location) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Session{State: StateStopped, loc: loc, log: log}
}

func (s *Session) Location() *time.Location { return s.loc }

func (s *Session) Running() bool { return s.State == StateRunning }

// Start moves a stopped session to running. On error the session is left untouched.
func (s *Session) Start(sched schedule.Schedule, dailySalary float64, now time.Time) error {
	if s.Running() {
		return ErrSessionRunning
	}
	rates, err := StartSession(sched, dailySalary)
	if err != nil {
		s.log.Debug("session start rejected", slog.String("error", err.Error()))
		return err
	}

	s.ID = uuid.NewString()
	s.State = StateRunning
	s.Schedule = sched.Clone()
	s.Rates = rates
	s.StartedAt = now.In(s.loc)

	s.log.Info("session started",
		slog.String("session_id", s.ID),
		slog.String("schedule", s.Schedule.String()),
		slog.Float64("daily_salary", rates.DailySalary),
		slog.Uint64("total_seconds", rates.TotalSeconds),
		slog.Float64("money_per_second", rates.MoneyPerSecond),
	)
	return nil
}

// Reset returns the session to stopped and drops the derived rates.
func (s *Session) Reset() {
	if s.Running() {
		s.log.Info("session reset", slog.String("session_id", s.ID))
	}
	s.ID = ""
	s.State = StateStopped
	s.Schedule = nil
	s.Rates = Rates{}
	s.StartedAt = time.Time{}
}

// Snapshot is one observation of a session.
type Snapshot struct {
	At             time.Time
	ElapsedSeconds float64
	Earned         float64
	Progress       float64
	Working        bool
	Current        schedule.Period
}

// Snapshot measures the session at now. A stopped session yields zero values.
func (s *Session) Snapshot(now time.Time) Snapshot {
	local := now.In(s.loc)
	snap := Snapshot{At: local}
	if !s.Running() {
		return snap
	}

	snap.ElapsedSeconds = ElapsedPaidSeconds(s.Schedule, local)
	snap.Earned = snap.ElapsedSeconds * s.Rates.MoneyPerSecond
	snap.Progress = ProgressPercent(snap.Earned, s.Rates.DailySalary)
	snap.Current, snap.Working = s.Schedule.Working(local)
	return snap
}

package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"moneytracker/internal/earnings"
	"moneytracker/internal/preset"
	"moneytracker/internal/schedule"
)

// Handler serves a single tracking session. Requests are serialized on mu.
type Handler struct {
	mu      sync.Mutex
	session *earnings.Session

	defaultSchedule schedule.Schedule
	defaultSalary   float64

	clock earnings.Clock
	log   *slog.Logger
}

// NewHandler uses sched and salary whenever a start request leaves them out.
func NewHandler(log *slog.Logger, clock earnings.Clock, loc *time.Location, sched schedule.Schedule, salary float64) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if clock == nil {
		clock = earnings.RealClock{}
	}
	return &Handler{
		session:         earnings.NewSession(log, loc),
		defaultSchedule: sched.Clone(),
		defaultSalary:   salary,
		clock:           clock,
		log:             log,
	}
}

func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	all := preset.All()
	dtos := make([]PresetDTO, len(all))
	for i, p := range all {
		dtos[i] = toPresetDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	writeJSON(w, http.StatusOK, toSessionDTO(h.session, h.clock.Now()))
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	sched := h.defaultSchedule
	if req.Periods != "" {
		parsed, err := schedule.Parse(req.Periods)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "invalid periods", err)
			return
		}
		sched = parsed
	}
	salary := h.defaultSalary
	if req.DailySalary != nil {
		salary = *req.DailySalary
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.session.Start(sched, salary, h.clock.Now()); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, earnings.ErrSessionRunning) {
			status = http.StatusConflict
		}
		writeError(w, status, "cannot start session", err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionDTO(h.session, h.clock.Now()))
}

func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.session.Reset()
	writeJSON(w, http.StatusOK, toSessionDTO(h.session, h.clock.Now()))
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.Debug("request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
		)
	})
}

// errorKind names the validation failure for API clients.
func errorKind(err error) string {
	switch {
	case errors.Is(err, earnings.ErrZeroDurationSchedule):
		return "zero_duration_schedule"
	case errors.Is(err, earnings.ErrZeroSalary):
		return "zero_salary"
	case errors.Is(err, earnings.ErrSessionRunning):
		return "session_running"
	case errors.Is(err, schedule.ErrEmptySchedule):
		return "empty_schedule"
	case errors.Is(err, schedule.ErrInvalidPeriod):
		return "invalid_period"
	case errors.Is(err, schedule.ErrInvalidTimeOfDay):
		return "invalid_time_of_day"
	}
	return ""
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Kind = errorKind(err)
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

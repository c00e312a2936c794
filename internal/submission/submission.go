// Package submission hands validated mission plans to whoever consumes them.
package submission

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"coronet_planner/internal/models"
	"coronet_planner/internal/validate"
)

// SuccessTitle is the confirmation shown for an accepted plan
const SuccessTitle = "Mission plan submitted successfully!"

// Receipt confirms that a handler accepted a plan
type Receipt struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	SubmittedAt time.Time `json:"submittedAt" yaml:"submittedAt"`
}

// Handler receives plans that passed validation
type Handler interface {
	Handle(ctx context.Context, plan *models.MissionPlan) (*Receipt, error)
}

// Submit validates record and forwards the resulting plan to h. An invalid
// record is returned as validate.Errors and never reaches h.
func Submit(ctx context.Context, v *validate.Validator, record *models.MissionRecord, h Handler) (*Receipt, error) {
	plan, errs := v.Validate(record)
	if len(errs) > 0 {
		slog.Warn("Mission plan rejected",
			"mission_number", record.MissionNumber,
			"error_count", len(errs),
		)
		return nil, errs
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	receipt, err := h.Handle(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to submit mission plan: %w", err)
	}
	return receipt, nil
}

func newReceipt(plan *models.MissionPlan) *Receipt {
	return &Receipt{
		ID:          uuid.NewString(),
		Title:       SuccessTitle,
		Description: plan.Title(),
		SubmittedAt: time.Now().UTC(),
	}
}

// LogHandler logs each plan and confirms it. It keeps nothing.
type LogHandler struct {
	logger *slog.Logger
}

// NewLogHandler creates a LogHandler writing to logger, or to the default
// logger when logger is nil
func NewLogHandler(logger *slog.Logger) *LogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHandler{logger: logger}
}

func (h *LogHandler) Handle(ctx context.Context, plan *models.MissionPlan) (*Receipt, error) {
	receipt := newReceipt(plan)
	h.logger.InfoContext(ctx, "Mission plan submitted",
		"receipt_id", receipt.ID,
		"mission_number", plan.MissionNumber,
		"mission_name", plan.MissionName,
		"classification", plan.Classification,
		"priority", plan.Priority,
		"departure_icao", plan.DepartureICAO,
		"destination_icao", plan.DestinationICAO,
		"aircraft_count", len(plan.Aircraft),
		"tanker_count", len(plan.Tankers),
		"waypoint_count", len(plan.Waypoints),
	)
	return receipt, nil
}

// Recorder keeps accepted plans in memory, in submission order. When it
// wraps another handler a plan is kept only once that handler accepts it.
type Recorder struct {
	next  Handler
	mu    sync.Mutex
	plans []*models.MissionPlan
}

// NewRecorder creates an empty Recorder forwarding to next, which may be nil
func NewRecorder(next Handler) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Handle(ctx context.Context, plan *models.MissionPlan) (*Receipt, error) {
	receipt := newReceipt(plan)
	if r.next != nil {
		var err error
		if receipt, err = r.next.Handle(ctx, plan); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans = append(r.plans, plan)
	return receipt, nil
}

// Plans returns the plans received so far
func (r *Recorder) Plans() []*models.MissionPlan {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*models.MissionPlan(nil), r.plans...)
}

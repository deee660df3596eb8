package metrics

import (
	"sync"
	"time"
)

type engineStats struct {
	scheduleRuns       int
	scheduleErrors     int
	validationFailures int
	tradeEvaluations   map[string]int
	offersScored       int
	storeWrites        int
	storeErrors        int
	lastScheduleRun    time.Duration
}

// Recorder captures lightweight, in-memory metrics about the simulation
// engines. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu    sync.Mutex
	stats engineStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: engineStats{tradeEvaluations: make(map[string]int)},
		otel:  otel,
	}
}

// RecordScheduleRun tracks one schedule generation attempt and its latency.
func (r *Recorder) RecordScheduleRun(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.scheduleRuns++
	r.stats.lastScheduleRun = duration
	if err != nil {
		r.stats.scheduleErrors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordScheduleRun(duration, err)
	}
}

// RecordValidationFailure tracks a schedule that failed the validator.
func (r *Recorder) RecordValidationFailure() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.validationFailures++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordValidationFailure()
	}
}

// RecordTradeEvaluation tracks one proposal evaluation by its decision.
func (r *Recorder) RecordTradeEvaluation(decision string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.tradeEvaluations[decision]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordTradeEvaluation(decision)
	}
}

// RecordOffersScored tracks how many free-agency offers were scored.
func (r *Recorder) RecordOffersScored(count int) {
	if r == nil || count <= 0 {
		return
	}
	r.mu.Lock()
	r.stats.offersScored += count
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordOffersScored(count)
	}
}

// RecordStoreWrite tracks one schedule persistence attempt.
func (r *Recorder) RecordStoreWrite(err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.stats.storeWrites++
	if err != nil {
		r.stats.storeErrors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordStoreWrite(err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current engine stats.
type Snapshot struct {
	ScheduleRuns       int
	ScheduleErrors     int
	ValidationFailures int
	TradeEvaluations   map[string]int
	OffersScored       int
	StoreWrites        int
	StoreErrors        int
	LastScheduleRun    time.Duration
}

// Snapshot returns a copy of the current stats.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{TradeEvaluations: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	evals := make(map[string]int, len(r.stats.tradeEvaluations))
	for k, v := range r.stats.tradeEvaluations {
		evals[k] = v
	}
	return Snapshot{
		ScheduleRuns:       r.stats.scheduleRuns,
		ScheduleErrors:     r.stats.scheduleErrors,
		ValidationFailures: r.stats.validationFailures,
		TradeEvaluations:   evals,
		OffersScored:       r.stats.offersScored,
		StoreWrites:        r.stats.storeWrites,
		StoreErrors:        r.stats.storeErrors,
		LastScheduleRun:    r.stats.lastScheduleRun,
	}
}

package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and
// optional OTLP exporter. It returns a Recorder, the Prometheus HTTP
// handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "league-office-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx                context.Context
	meter              metric.Meter
	requests           metric.Int64Counter
	requestLatencyMs   metric.Float64Histogram
	scheduleRuns       metric.Int64Counter
	scheduleErrors     metric.Int64Counter
	scheduleLatencyMs  metric.Float64Histogram
	validationFailures metric.Int64Counter
	tradeEvaluations   metric.Int64Counter
	offersScored       metric.Int64Counter
	storeWrites        metric.Int64Counter
	storeErrors        metric.Int64Counter
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("league-office-service")
	ctx := context.Background()

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}

	scheduleRuns, err := meter.Int64Counter("schedule_generations_total")
	if err != nil {
		return nil, err
	}
	scheduleErrors, err := meter.Int64Counter("schedule_generation_errors_total")
	if err != nil {
		return nil, err
	}
	scheduleLatency, err := meter.Float64Histogram("schedule_generation_duration_ms")
	if err != nil {
		return nil, err
	}
	validationFailures, err := meter.Int64Counter("schedule_validation_failures_total")
	if err != nil {
		return nil, err
	}
	tradeEvaluations, err := meter.Int64Counter("trade_evaluations_total")
	if err != nil {
		return nil, err
	}
	offersScored, err := meter.Int64Counter("fa_offers_scored_total")
	if err != nil {
		return nil, err
	}
	storeWrites, err := meter.Int64Counter("schedule_store_writes_total")
	if err != nil {
		return nil, err
	}
	storeErrors, err := meter.Int64Counter("schedule_store_errors_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:                ctx,
		meter:              meter,
		requests:           requests,
		requestLatencyMs:   requestLatency,
		scheduleRuns:       scheduleRuns,
		scheduleErrors:     scheduleErrors,
		scheduleLatencyMs:  scheduleLatency,
		validationFailures: validationFailures,
		tradeEvaluations:   tradeEvaluations,
		offersScored:       offersScored,
		storeWrites:        storeWrites,
		storeErrors:        storeErrors,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordScheduleRun(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.scheduleRuns, 1)
	o.recordHistogram(o.scheduleLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.scheduleErrors, 1)
	}
}

func (o *otelInstruments) recordValidationFailure() {
	if o == nil {
		return
	}
	o.recordCounter(o.validationFailures, 1)
}

func (o *otelInstruments) recordTradeEvaluation(decision string) {
	if o == nil {
		return
	}
	o.recordCounter(o.tradeEvaluations, 1, attribute.String(AttrDecision, decision))
}

func (o *otelInstruments) recordOffersScored(count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.offersScored, int64(count))
}

func (o *otelInstruments) recordStoreWrite(err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.storeWrites, 1)
	if err != nil {
		o.recordCounter(o.storeErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}

// Package metrics содержит Prometheus-метрики сервиса.
// Методы безопасны для nil-получателя: при выключенных метриках передается nil.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы расчета стоимости
const (
	OutcomeSuccess        = "success"
	OutcomeNoSeasonMatch  = "no_season_match"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeError          = "error"
)

// Причины отклонения записи периода
const (
	RejectionOverlap      = "overlap"
	RejectionInvalidRange = "invalid_range"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge
	dbWaitCount     prometheus.Gauge

	priceComputations *prometheus.CounterVec
	pricedNights      prometheus.Histogram
	periodRejections  *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),
		dbOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		dbInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		dbIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		priceComputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "price_computations_total",
			Help:        "Total number of stay price computations by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		pricedNights: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "priced_nights",
			Help:        "Number of nights in successfully priced stays",
			ConstLabels: labels,
			Buckets:     []float64{1, 2, 3, 5, 7, 14, 30, 60, 120, 365},
		}),
		periodRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "period_write_rejections_total",
			Help:        "Total number of rejected period writes by reason",
			ConstLabels: labels,
		}, []string{"reason"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.dbQueryDuration,
		m.dbQueryErrors,
		m.dbOpenConns,
		m.dbInUseConns,
		m.dbIdleConns,
		m.dbWaitCount,
		m.priceComputations,
		m.pricedNights,
		m.periodRejections,
	)

	return m
}

// Handler возвращает HTTP handler для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр (нужен в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordDBQuery учитывает выполненный SQL запрос
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// SetDBStats обновляет метрики пула соединений
func (m *Metrics) SetDBStats(stats sql.DBStats) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(stats.OpenConnections))
	m.dbInUseConns.Set(float64(stats.InUse))
	m.dbIdleConns.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
}

// RecordPriceComputation учитывает расчет стоимости проживания
func (m *Metrics) RecordPriceComputation(outcome string, nights int) {
	if m == nil {
		return
	}
	m.priceComputations.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.pricedNights.Observe(float64(nights))
	}
}

// RecordPeriodRejection учитывает отклоненную запись периода
func (m *Metrics) RecordPeriodRejection(reason string) {
	if m == nil {
		return
	}
	m.periodRejections.WithLabelValues(reason).Inc()
}

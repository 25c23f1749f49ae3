package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// QueryMetrics метрики запросов к таблице проектов
type QueryMetrics struct {
	// QueriesTotal количество запросов страниц по результату
	QueriesTotal *prometheus.CounterVec
	// QueryDuration время выполнения фильтрации и пагинации
	QueryDuration prometheus.Histogram
	// MatchedRecords сколько записей совпало с фильтрами
	MatchedRecords prometheus.Histogram
	// FilterClauses сколько колонок участвовало в фильтре
	FilterClauses prometheus.Histogram
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *QueryMetrics {
	factory := promauto.With(reg)
	return &QueryMetrics{
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "projectgrid_queries_total",
				Help: "Total number of project page queries",
			},
			[]string{"status"},
		),
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "projectgrid_query_duration_seconds",
			Help:    "Project query latency in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		MatchedRecords: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "projectgrid_query_matched_records",
			Help:    "Number of records matching the query filters",
			Buckets: []float64{0, 1, 10, 50, 100, 250, 500, 1000, 5000},
		}),
		FilterClauses: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "projectgrid_query_filter_clauses",
			Help:    "Number of filtered columns per query",
			Buckets: prometheus.LinearBuckets(0, 1, 14),
		}),
	}
}

// ObserveQuery записывает результат одного запроса
func (m *QueryMetrics) ObserveQuery(clauses, matched int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.QueriesTotal.WithLabelValues(status).Inc()
	m.QueryDuration.Observe(duration.Seconds())
	if err == nil {
		m.MatchedRecords.Observe(float64(matched))
		m.FilterClauses.Observe(float64(clauses))
	}
}

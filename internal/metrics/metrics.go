package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContentLoads считает загрузки текста статей: result = hit|fallback|miss.
	ContentLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscalblog_content_loads_total",
		Help: "Localized content loads by requested locale and result",
	}, []string{"locale", "result"})

	// ContentCache — обращения к Redis-кэшу текстов: result = hit|miss|error.
	ContentCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscalblog_content_cache_total",
		Help: "Content cache lookups by result",
	}, []string{"result"})

	IntegrityWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscalblog_integrity_warnings_total",
		Help: "Data integrity warnings by kind",
	}, []string{"kind"})

	BatchExcluded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fiscalblog_batch_excluded_posts_total",
		Help: "Posts dropped from listings because their content could not be loaded",
	})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fiscalblog_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

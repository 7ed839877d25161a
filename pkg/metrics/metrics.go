package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pkgerrors "uniadmin/pkg/errors"
)

const namespace = "uniadmin"

// Metrics Prometheus 指标集合
type Metrics struct {
	registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	dbStatements   *prometheus.CounterVec
	dbStatementDur *prometheus.HistogramVec
}

// New 创建指标集合并注册到独立 Registry（含 Go 运行时与进程指标）
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP 请求数",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbStatements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "db_statements_total",
			Help:      "写语句执行次数，按结果分类",
		}, []string{"op", "result"}),
		dbStatementDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "db_statement_duration_seconds",
			Help:      "写语句（含事务提交）耗时",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"op"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.dbStatements,
		m.dbStatementDur,
	)
	return m
}

// Handler /metrics 端点
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware 记录请求数与耗时，route 使用路由模板避免高基数
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveStatement 记录一次写语句执行结果
func (m *Metrics) ObserveStatement(op string, elapsed time.Duration, err error) {
	m.dbStatements.WithLabelValues(op, resultOf(err)).Inc()
	m.dbStatementDur.WithLabelValues(op).Observe(elapsed.Seconds())
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, pkgerrors.ErrUniqueViolation):
		return "unique_violation"
	case errors.Is(err, pkgerrors.ErrForeignKeyViolation):
		return "foreign_key_violation"
	case errors.Is(err, pkgerrors.ErrCheckViolation):
		return "check_violation"
	case errors.Is(err, pkgerrors.ErrNotNullViolation):
		return "not_null_violation"
	case errors.Is(err, pkgerrors.ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}

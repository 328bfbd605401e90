package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Prometheus collects per-request counters and latency histograms and serves
// them on a dedicated listener so the metrics port can stay internal.
type Prometheus struct {
	reqCnt *prometheus.CounterVec
	reqDur *prometheus.HistogramVec

	listenAddress string
	pathFn        func(c *gin.Context) string
	log           *zap.SugaredLogger
}

type NewPrometheusOptions struct {
	// Subsystem defaults to "investd".
	Subsystem string
	// PathLabelFn maps a request to the path label; defaults to the gin route
	// template to keep label cardinality bounded.
	PathLabelFn func(c *gin.Context) string
	Logger      *zap.SugaredLogger
}

var durationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}

func NewPrometheus(opts NewPrometheusOptions) *Prometheus {
	subsystem := opts.Subsystem
	if subsystem == "" {
		subsystem = "investd"
	}
	pathFn := opts.PathLabelFn
	if pathFn == nil {
		pathFn = func(c *gin.Context) string {
			if fp := c.FullPath(); fp != "" {
				return fp
			}
			return "unmatched"
		}
	}
	p := &Prometheus{
		reqCnt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      "requests_total",
				Help:      "Total HTTP requests processed, labeled by status, method and path.",
			},
			[]string{"code", "method", "path"},
		),
		reqDur: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Subsystem: subsystem,
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   durationBuckets,
			},
			[]string{"code", "method", "path"},
		),
		pathFn: pathFn,
		log:    opts.Logger,
	}
	prometheus.MustRegister(p.reqCnt, p.reqDur)
	return p
}

// SetListenAddress configures the side listener address, e.g. ":9090".
func (p *Prometheus) SetListenAddress(addr string) {
	p.listenAddress = addr
}

// Use attaches the middleware to the engine and starts the metrics listener
// when one is configured.
func (p *Prometheus) Use(r *gin.Engine) {
	r.Use(p.handlerFunc())
	if p.listenAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(p.listenAddress, mux); err != nil && p.log != nil {
				p.log.Errorf("metrics listener stopped: %v", err)
			}
		}()
	}
}

func (p *Prometheus) handlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		code := strconv.Itoa(c.Writer.Status())
		path := p.pathFn(c)
		p.reqCnt.WithLabelValues(code, c.Request.Method, path).Inc()
		p.reqDur.WithLabelValues(code, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/themobileprof/medicare-be/internal/symptoms"
	"go.uber.org/zap"
)

const collectTimeout = 5 * time.Second

var consultationsDesc = prometheus.NewDesc(
	"medicare_consultations_total",
	"Total consultations recorded by urgency",
	[]string{"urgency"},
	nil,
)

// UrgencyCounter reports stored consultation counts per urgency level
type UrgencyCounter interface {
	CountConsultationsByUrgency(ctx context.Context) (map[symptoms.Urgency]int64, error)
}

// ConsultationCollector reads consultation counts from the database on each scrape.
// Every urgency level is always emitted, zero included.
type ConsultationCollector struct {
	store UrgencyCounter
	log   *zap.Logger
}

// NewConsultationCollector creates a collector backed by store
func NewConsultationCollector(store UrgencyCounter, log *zap.Logger) *ConsultationCollector {
	return &ConsultationCollector{store: store, log: log}
}

// Describe sends the metric descriptor to the channel.
func (c *ConsultationCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- consultationsDesc
}

// Collect queries the database and emits one counter per urgency.
func (c *ConsultationCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	counts, err := c.store.CountConsultationsByUrgency(ctx)
	if err != nil {
		c.log.Error("failed to collect consultation metrics", zap.Error(err))
		return
	}

	for _, u := range []symptoms.Urgency{symptoms.UrgencyLow, symptoms.UrgencyMedium, symptoms.UrgencyHigh} {
		ch <- prometheus.MustNewConstMetric(
			consultationsDesc,
			prometheus.CounterValue,
			float64(counts[u]),
			string(u),
		)
	}
}

// Handler builds a registry with the consultation collector plus the Go
// runtime and process collectors, and returns its scrape handler.
func Handler(store UrgencyCounter, log *zap.Logger) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		NewConsultationCollector(store, log),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

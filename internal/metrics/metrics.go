package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"termguard/internal/db"
	"termguard/internal/models"
)

var (
	negativeKeywordsDesc = prometheus.NewDesc(
		"termguard_negative_keywords",
		"Stored negative keyword count by campaign",
		[]string{"campaign"},
		nil,
	)

	runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "termguard_runs_total",
		Help: "Total reconciliation runs by status",
	}, []string{"status"})

	termsClassifiedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "termguard_terms_classified_total",
		Help: "Total search terms classified by intent",
	}, []string{"intent"})

	exclusionsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "termguard_exclusions_created_total",
		Help: "Total new exact-match exclusions created",
	})

	capReachedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "termguard_cap_reached_total",
		Help: "Total runs cut short by the per-run exclusion cap",
	})
)

// NegativeKeywordCollector is a custom Prometheus collector that reads
// per-campaign negative keyword totals from the database on each scrape.
type NegativeKeywordCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *NegativeKeywordCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- negativeKeywordsDesc
}

// Collect queries the database for negative keyword counts and emits them as gauges.
func (c *NegativeKeywordCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.CountNegativeKeywords(context.Background())
	if err != nil {
		slog.Error("failed to collect negative keyword metrics", "error", err)
		return
	}
	for _, nc := range counts {
		ch <- prometheus.MustNewConstMetric(
			negativeKeywordsDesc,
			prometheus.GaugeValue,
			float64(nc.Count),
			nc.CampaignName,
		)
	}
}

var initOnce sync.Once

// Init registers all collectors. Must be called once at startup.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(
			&NegativeKeywordCollector{db: database},
			runsTotal,
			termsClassifiedTotal,
			exclusionsCreatedTotal,
			capReachedTotal,
		)
	})
}

// RecordRun updates run counters from a finished run summary.
func RecordRun(s *models.RunSummary) {
	runsTotal.WithLabelValues(s.Status).Inc()
	exclusionsCreatedTotal.Add(float64(s.NewExclusions))
	if s.CapReached {
		capReachedTotal.Inc()
	}

	var kept, block, uncertain int
	for _, sc := range s.Scopes {
		kept += sc.Kept
		block += sc.BlockCandidates
		uncertain += sc.Uncertain
	}
	termsClassifiedTotal.WithLabelValues(string(models.IntentKeep)).Add(float64(kept))
	termsClassifiedTotal.WithLabelValues(string(models.IntentBlockCandidate)).Add(float64(block))
	termsClassifiedTotal.WithLabelValues(string(models.IntentUncertain)).Add(float64(uncertain))
}

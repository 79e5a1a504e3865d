package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Sources of a new posting.
const (
	SourceDraft = "draft"
	SourceAPI   = "api"
)

// Metrics holds the board collectors. Each instance owns its registry so
// tests and multiple boards never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	JobsPosted       *prometheus.CounterVec
	JobsTotal        prometheus.Gauge
	DraftRejections  prometheus.Counter
	SelectionsOpened prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		JobsPosted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "jobboard_jobs_posted_total",
				Help: "Total number of jobs appended to the board",
			},
			[]string{"source"},
		),
		JobsTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "jobboard_jobs_total",
				Help: "Number of jobs currently on the board",
			},
		),
		DraftRejections: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "jobboard_draft_rejections_total",
				Help: "Total number of draft submissions refused for missing fields",
			},
		),
		SelectionsOpened: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "jobboard_selections_total",
				Help: "Total number of times a job detail modal was opened",
			},
		),
	}
	m.Registry.MustRegister(m.JobsPosted, m.JobsTotal, m.DraftRejections, m.SelectionsOpened)
	return m
}

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "linkstore"

var (
	loadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "load_total",
		Help:      "links.json load attempts by result.",
	}, []string{"result"})

	loadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "load_failures_total",
		Help:      "links.json load failures by reason.",
	}, []string{"reason"})

	linksAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "links_added_total",
		Help:      "Links appended through the editor.",
	})

	linksRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "links_rejected_total",
		Help:      "Rejected link submissions by reason.",
	}, []string{"reason"})

	linksCurrent = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "links",
		Help:      "Number of links currently held in memory.",
	})

	exportBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "export_bytes",
		Help:      "Size of the latest links.json export.",
	})
)

// reason labels
const (
	reasonUnavailable = "unavailable"
	reasonMalformed   = "malformed"
	reasonRequired    = "required"
	reasonURLPrefix   = "url_prefix"
	reasonInvalid     = "invalid"
)

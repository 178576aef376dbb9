// Package metrics counts analyzed sentences for the Prometheus endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcomes recorded per sentence.
const (
	OutcomeDecoded = "decoded"
	OutcomeUnknown = "unknown"
	OutcomeSkipped = "skipped"
	OutcomeError   = "error"
)

// Recorder tracks analyzer outcomes by message id.
type Recorder struct {
	sentences *prometheus.CounterVec
	registry  *prometheus.Registry
}

// NewRecorder registers the analyzer counters on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	sentences := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nmea",
		Name:      "sentences_total",
		Help:      "Sentences analyzed, by message id and outcome.",
	}, []string{"sentence", "outcome"})
	reg.MustRegister(sentences)
	return &Recorder{sentences: sentences, registry: reg}
}

// Observe counts one analyzed sentence.
func (r *Recorder) Observe(sentence, outcome string) {
	r.sentences.WithLabelValues(sentence, outcome).Inc()
}

// Handler serves the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Package prometheus exposes kvcache hook events as Prometheus counters.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/kvcache"
)

// Hooks implements kvcache.Hooks using Prometheus.
type Hooks struct {
	stored       *prometheus.CounterVec
	storedBytes  *prometheus.CounterVec
	misses       prometheus.Counter
	decodeFailed prometheus.Counter
	setRejected  prometheus.Counter
	counterErrs  *prometheus.CounterVec
	flushes      prometheus.Counter
}

var _ kvcache.Hooks = (*Hooks)(nil)

// New creates the collectors and registers them with reg.
// Panics if a collector with the same name is already registered.
func New(reg prometheus.Registerer) *Hooks {
	h := &Hooks{
		stored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvcache_stored_total",
			Help: "Total number of values written, by value kind",
		}, []string{"kind"}),

		storedBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvcache_stored_bytes_total",
			Help: "Total bytes written, by value kind",
		}, []string{"kind"}),

		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_misses_total",
			Help: "Total number of reads that found no value",
		}),

		decodeFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_decode_failures_total",
			Help: "Total number of typed reads whose bytes did not decode",
		}),

		setRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_set_rejected_total",
			Help: "Total number of writes refused by the provider",
		}),

		counterErrs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kvcache_counter_errors_total",
			Help: "Total number of failed call-counter operations",
		}, []string{"counter"}),

		flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kvcache_flushes_total",
			Help: "Total number of fresh opens that flushed the store",
		}),
	}

	reg.MustRegister(
		h.stored,
		h.storedBytes,
		h.misses,
		h.decodeFailed,
		h.setRejected,
		h.counterErrs,
		h.flushes,
	)
	return h
}

func (h *Hooks) Stored(_ string, kind kvcache.Kind, size int) {
	h.stored.WithLabelValues(kind.String()).Inc()
	h.storedBytes.WithLabelValues(kind.String()).Add(float64(size))
}

func (h *Hooks) Miss(string)                { h.misses.Inc() }
func (h *Hooks) DecodeFailed(string, error) { h.decodeFailed.Inc() }
func (h *Hooks) SetRejected(string)         { h.setRejected.Inc() }
func (h *Hooks) Flushed(string)             { h.flushes.Inc() }

func (h *Hooks) CounterError(name string, _ error) {
	h.counterErrs.WithLabelValues(name).Inc()
}

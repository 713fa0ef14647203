// Package sloghooks reports kvcache hook events through log/slog.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/kvcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	StoredEvery uint64
	MissEvery   uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	storedCtr atomic.Uint64
	missCtr   atomic.Uint64
}

var _ kvcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Stored(storageKey string, kind kvcache.Kind, size int) {
	if h.l == nil || !sample(h.opts.StoredEvery, &h.storedCtr) {
		return
	}
	h.l.Debug("kvcache.stored",
		"key", h.redact(storageKey),
		"kind", kind.String(),
		"size", size)
}

func (h *Hooks) Miss(storageKey string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("kvcache.miss",
		"key", h.redact(storageKey))
}

func (h *Hooks) DecodeFailed(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("kvcache.decode_failed",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) SetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("kvcache.set_rejected",
		"key", h.redact(storageKey))
}

func (h *Hooks) CounterError(name string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("kvcache.counter_error",
		"counter", name,
		"err", err)
}

func (h *Hooks) Flushed(namespace string) {
	if h.l == nil {
		return
	}
	h.l.Info("kvcache.flushed",
		"ns", namespace)
}

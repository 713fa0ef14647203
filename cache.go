package kvcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/kvcache/codec"
	"github.com/unkn0wn-root/kvcache/counter"
	"github.com/unkn0wn-root/kvcache/internal/util"
	pr "github.com/unkn0wn-root/kvcache/provider"
)

type cache struct {
	ns       string
	provider pr.Provider
	counters counter.Store
	log      Logger
	hooks    Hooks
	newKey   KeyFunc
	ttl      time.Duration

	// Store pipeline: CountCalls -> Options.Middleware -> put
	store Op[Value, string]
}

var _ Cache = (*cache)(nil)

func newCache(opts Options) (*cache, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("kvcache: provider is required")
	}

	c := &cache{
		ns:       opts.Namespace,
		provider: opts.Provider,
		ttl:      opts.TTL,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	// counters default to the provider itself; only in-process providers
	// without Incr fall back to a process-local map
	switch inc, ok := opts.Provider.(pr.Incrementer); {
	case opts.Counters != nil:
		c.counters = opts.Counters
	case ok:
		c.counters = counter.NewInProvider(inc)
	default:
		c.counters = counter.NewLocal()
	}
	if opts.KeyFunc != nil {
		c.newKey = opts.KeyFunc
	} else {
		c.newKey = newRandomKey
	}
	if c.ttl < 0 {
		c.ttl = 0
	}

	mws := make([]Middleware[Value, string], 0, len(opts.Middleware)+1)
	mws = append(mws, CountCalls[Value, string](c.counters, c.counterKey(OpStore)))
	mws = append(mws, opts.Middleware...)
	c.store = Chain(Op[Value, string](c.put), mws...)

	return c, nil
}

func (c *cache) Close(ctx context.Context) error {
	var errs []error
	if c.counters != nil {
		errs = append(errs, c.counters.Close(ctx))
	}
	if c.provider != nil {
		errs = append(errs, c.provider.Close(ctx))
	}
	return errors.Join(errs...)
}

func (c *cache) Store(ctx context.Context, v Value) (string, error) {
	key, err := c.store(ctx, v)
	if err != nil {
		var ce *CountError
		if errors.As(err, &ce) {
			c.hooks.CounterError(ce.Name, ce.Err)
			c.log.Warn("call counter increment failed", Fields{"counter": ce.Name, "err": ce.Err})
		}
		return "", err
	}
	return key, nil
}

// put is the uncounted write at the bottom of the Store pipeline.
func (c *cache) put(ctx context.Context, v Value) (string, error) {
	if v == nil {
		return "", ErrNilValue
	}
	key, err := c.newKey()
	if err != nil {
		return "", fmt.Errorf("kvcache: generate key: %w", err)
	}
	raw := v.Encode()
	sk := c.storageKey(key)
	ok, err := c.provider.Set(ctx, sk, raw, int64(len(raw)), c.ttl)
	if err != nil {
		return "", err
	}
	if !ok {
		c.hooks.SetRejected(sk)
		c.log.Debug("Store rejected by provider (pressure)", Fields{"key": key})
		return "", fmt.Errorf("%w: %s", ErrRejected, key)
	}
	c.hooks.Stored(sk, v.Kind(), len(raw))
	c.log.Debug("stored value", Fields{"key": key, "kind": v.Kind().String(), "size": len(raw)})
	return key, nil
}

func (c *cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	sk := c.storageKey(key)
	raw, ok, err := c.provider.Get(ctx, sk)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		c.hooks.Miss(sk)
		return nil, false, nil
	}
	return raw, true, nil
}

func (c *cache) GetStr(ctx context.Context, key string) (string, bool, error) {
	return GetWith[string](ctx, c, key, codec.String{})
}

func (c *cache) GetInt(ctx context.Context, key string) (int64, bool, error) {
	return GetWith[int64](ctx, c, key, codec.Int{})
}

func (c *cache) GetFloat(ctx context.Context, key string) (float64, bool, error) {
	return GetWith[float64](ctx, c, key, codec.Float{})
}

func (c *cache) Calls(ctx context.Context, op string) (int64, error) {
	name := c.counterKey(op)
	n, err := c.counters.Get(ctx, name)
	if err != nil {
		c.hooks.CounterError(name, err)
		return 0, err
	}
	return n, nil
}

func (c *cache) decodeFailed(key string, err error) {
	c.hooks.DecodeFailed(c.storageKey(key), err)
	c.log.Debug("stored bytes failed to decode", Fields{"key": key, "err": err})
}

func (c *cache) flush(ctx context.Context) error {
	f, ok := c.provider.(pr.Flusher)
	if !ok {
		return ErrFlushUnsupported
	}
	if err := f.Flush(ctx); err != nil {
		return fmt.Errorf("kvcache: flush provider: %w", err)
	}
	if err := c.counters.Flush(ctx); err != nil {
		return fmt.Errorf("kvcache: flush counters: %w", err)
	}
	c.hooks.Flushed(c.ns)
	c.log.Info("store flushed on open", Fields{"namespace": c.ns})
	return nil
}

func (c *cache) storageKey(userKey string) string {
	return util.Namespaced(c.ns, userKey)
}

func (c *cache) counterKey(op string) string {
	return util.Namespaced(c.ns, op)
}

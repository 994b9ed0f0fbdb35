package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultLoadTimeout = 30 * time.Second

// Config holds per-namespace TTLs and the per-operation backend timeout.
// LoadTimeout bounds a shared load in Fetch once it is detached from the
// caller that started it.
type Config struct {
	TTLs        map[Namespace]time.Duration
	DefaultTTL  time.Duration
	OpTimeout   time.Duration
	LoadTimeout time.Duration
}

// Layer wraps a Backend with JSON encoding, namespace TTLs and fail-open
// error handling. No method of Layer returns a backend error.
type Layer struct {
	backend Backend
	cfg     Config
	logger  *zap.Logger
	metrics *Metrics
	flight  singleflight.Group

	// mu orders evictions against the generation check and store at the
	// end of a shared load. gens is fixed at construction.
	mu    sync.RWMutex
	gens  map[Namespace]*atomic.Uint64
	other atomic.Uint64
}

// NewLayer creates a cache layer. metrics may be nil.
func NewLayer(backend Backend, cfg Config, logger *zap.Logger, metrics *Metrics) *Layer {
	gens := make(map[Namespace]*atomic.Uint64, len(Namespaces))
	for _, ns := range Namespaces {
		gens[ns] = new(atomic.Uint64)
	}
	return &Layer{
		backend: backend,
		cfg:     cfg,
		logger:  logger.Named("cache"),
		metrics: metrics,
		gens:    gens,
	}
}

// generation counts the evictions of ns. Namespaces outside Namespaces
// share one counter.
func (l *Layer) generation(ns Namespace) *atomic.Uint64 {
	if g, ok := l.gens[ns]; ok {
		return g
	}
	return &l.other
}

// TTL returns the configured lifetime of entries in ns.
func (l *Layer) TTL(ns Namespace) time.Duration {
	if ttl, ok := l.cfg.TTLs[ns]; ok && ttl > 0 {
		return ttl
	}
	return l.cfg.DefaultTTL
}

// Get decodes the entry for key into dest. Any backend or decode failure is
// logged and reported as a miss.
func (l *Layer) Get(ctx context.Context, ns Namespace, key string, dest interface{}) bool {
	ctx, cancel := l.opContext(ctx)
	defer cancel()

	raw, ok, err := l.backend.Get(ctx, ns, key)
	if err != nil {
		l.degraded("get", ns, key, err)
		l.metrics.miss(ns)
		return false
	}
	if !ok {
		l.metrics.miss(ns)
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		l.degraded("decode", ns, key, err)
		l.metrics.miss(ns)
		return false
	}
	l.metrics.hit(ns)
	return true
}

// Put stores value under key with the namespace TTL. A nil value is ignored:
// absent results are never cached.
func (l *Layer) Put(ctx context.Context, ns Namespace, key string, value interface{}) {
	if value == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		l.degraded("encode", ns, key, err)
		return
	}

	ctx, cancel := l.opContext(ctx)
	defer cancel()

	if err := l.backend.Set(ctx, ns, key, raw, l.TTL(ns)); err != nil {
		l.degraded("set", ns, key, err)
	}
}

// Evict clears every entry of ns. Loads in flight when Evict is called
// are neither joined by later readers nor stored.
func (l *Layer) Evict(ctx context.Context, ns Namespace) {
	ctx, cancel := l.opContext(ctx)
	defer cancel()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation(ns).Add(1)

	if err := l.backend.EvictNamespace(ctx, ns); err != nil {
		l.degraded("evict", ns, "", err)
		return
	}
	l.metrics.evicted(ns)
	l.logger.Debug("namespace evicted", zap.String("namespace", string(ns)))
}

// EvictAll clears every namespace.
func (l *Layer) EvictAll(ctx context.Context) {
	ctx, cancel := l.opContext(ctx)
	defer cancel()

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, g := range l.gens {
		g.Add(1)
	}
	l.other.Add(1)

	if err := l.backend.EvictAll(ctx); err != nil {
		l.degraded("evict_all", "", "", err)
		return
	}
	for _, ns := range Namespaces {
		l.metrics.evicted(ns)
	}
}

func (l *Layer) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.cfg.OpTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.cfg.OpTimeout)
}

func (l *Layer) degraded(op string, ns Namespace, key string, err error) {
	l.metrics.failed(ns, op)
	l.logger.Warn("cache operation failed, continuing without cache",
		zap.String("op", op),
		zap.String("namespace", string(ns)),
		zap.String("key", key),
		zap.Error(err))
}

func (l *Layer) loadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := l.cfg.LoadTimeout
	if timeout <= 0 {
		timeout = defaultLoadTimeout
	}
	return context.WithTimeout(context.WithoutCancel(ctx), timeout)
}

// storeIfCurrent stores value unless ns was evicted after gen was read.
func (l *Layer) storeIfCurrent(ctx context.Context, ns Namespace, key string, gen uint64, value interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.generation(ns).Load() != gen {
		l.logger.Debug("discarding load that raced an eviction",
			zap.String("namespace", string(ns)),
			zap.String("key", key))
		return
	}
	l.Put(ctx, ns, key, value)
}

// Fetch returns the cached value for key, or calls load on a miss.
// Concurrent misses on the same key share one load call until ns is evicted;
// readers arriving after an eviction start a fresh load. A result is stored
// only when load reports it as found, returns no error and no eviction of ns
// happened meanwhile. The shared load is detached from the caller that
// started it, so one caller giving up does not fail the others.
func Fetch[T any](
	ctx context.Context,
	l *Layer,
	ns Namespace,
	key string,
	load func(ctx context.Context) (T, bool, error),
) (T, bool, error) {
	var cached T
	if l.Get(ctx, ns, key, &cached) {
		return cached, true, nil
	}

	type result struct {
		value T
		found bool
	}
	gen := l.generation(ns).Load()
	flightKey := string(ns) + "|" + strconv.FormatUint(gen, 10) + "|" + key
	ch := l.flight.DoChan(flightKey, func() (interface{}, error) {
		loadCtx, cancel := l.loadContext(ctx)
		defer cancel()

		value, found, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if found {
			l.storeIfCurrent(loadCtx, ns, key, gen, value)
		}
		return result{value: value, found: found}, nil
	})

	var zero T
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, false, res.Err
		}
		r := res.Val.(result)
		return r.value, r.found, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

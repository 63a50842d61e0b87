package geo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"lifedash/internal/providers"
	"lifedash/internal/storage"
	"lifedash/internal/structures"
)

// ResolvedLocation is a best-effort coordinate plus a human label.
type ResolvedLocation struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Label string  `json:"label"`
}

type Coordinates struct {
	Lat float64
	Lon float64
}

// SensorInterface abstracts the platform position source. CurrentPosition
// is a single-shot read, WatchPosition blocks until a continuous watch
// produces its first fix. Both must honor context cancellation.
type SensorInterface interface {
	CurrentPosition(ctx context.Context) (Coordinates, error)
	WatchPosition(ctx context.Context) (Coordinates, error)
}

// NoopSensor is the default sensor on hosts without positioning hardware;
// it always fails, pushing the resolver down its fallback chain.
type NoopSensor struct{}

func (NoopSensor) CurrentPosition(_ context.Context) (Coordinates, error) {
	return Coordinates{}, fmt.Errorf("no position sensor available")
}

func (NoopSensor) WatchPosition(_ context.Context) (Coordinates, error) {
	return Coordinates{}, fmt.Errorf("no position sensor available")
}

func NewNoopSensor() SensorInterface { return NoopSensor{} }

const defaultSenseTimeout = 7 * time.Second

type ResolverInterface interface {
	Resolve(ctx context.Context) ResolvedLocation
}

// Resolver produces a usable location through a fallback chain: live
// sensing, last-known cache, locale-derived capital, fixed default. Each
// tier runs at most once per call; Resolve never fails.
type Resolver struct {
	conf   *structures.Config
	store  storage.StoreInterface
	sensor SensorInterface
	logger providers.Logger
}

func NewResolver(conf *structures.Config, store storage.StoreInterface, sensor SensorInterface, logger providers.Logger) ResolverInterface {
	return &Resolver{conf: conf, store: store, sensor: sensor, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context) ResolvedLocation {
	if pos, ok := r.sense(ctx); ok {
		out := ResolvedLocation{
			Lat:   pos.Lat,
			Lon:   pos.Lon,
			Label: fmt.Sprintf("%.3f, %.3f", pos.Lat, pos.Lon),
		}
		r.saveLast(out)
		return out
	}

	if cached, ok := r.loadLast(); ok {
		return cached
	}

	if cc := r.regionFromLocale(); cc != "" {
		if capital, ok := capitals[cc]; ok {
			return capital
		}
	}

	return capitals[defaultRegion]
}

// sense races a single-shot request against a continuous watch under one
// ceiling. The first fix wins; cancelling the shared context clears the
// loser.
func (r *Resolver) sense(ctx context.Context) (Coordinates, bool) {
	timeout := r.conf.Location.SenseTimeout * time.Second
	if timeout <= 0 {
		timeout = defaultSenseTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		pos Coordinates
		err error
	}
	results := make(chan result, 2)

	go func() {
		pos, err := r.sensor.CurrentPosition(ctx)
		results <- result{pos, err}
	}()
	go func() {
		pos, err := r.sensor.WatchPosition(ctx)
		results <- result{pos, err}
	}()

	for pending := 2; pending > 0; pending-- {
		select {
		case res := <-results:
			if res.err == nil {
				return res.pos, true
			}
		case <-ctx.Done():
			return Coordinates{}, false
		}
	}
	return Coordinates{}, false
}

func (r *Resolver) loadLast() (ResolvedLocation, bool) {
	raw, ok := r.store.Get(storage.LastPosKey)
	if !ok {
		return ResolvedLocation{}, false
	}
	var pos ResolvedLocation
	if err := json.Unmarshal(raw, &pos); err != nil {
		return ResolvedLocation{}, false
	}
	return pos, true
}

// saveLast caches the last known good position with no expiry; it only ever
// serves as a fallback, never as a freshness-bounded cache.
func (r *Resolver) saveLast(pos ResolvedLocation) {
	raw, err := json.Marshal(pos)
	if err != nil {
		return
	}
	if err := r.store.Set(storage.LastPosKey, raw); err != nil {
		r.logger.Warnf(providers.TypeApp, "Last-position write failed: %s", err)
	}
}

// regionFromLocale extracts a 2-letter region code from the configured
// locale, falling back to the LANG environment variable (e.g. "fr_FR.UTF-8").
func (r *Resolver) regionFromLocale() string {
	loc := r.conf.Location.Locale
	if loc == "" {
		loc = os.Getenv("LANG")
	}
	loc = strings.ToUpper(loc)
	if i := strings.IndexByte(loc, '.'); i >= 0 {
		loc = loc[:i]
	}
	parts := strings.FieldsFunc(loc, func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) < 2 {
		return ""
	}
	cc := parts[1]
	if len(cc) != 2 {
		return ""
	}
	return cc
}

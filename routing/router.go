package routing

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Options configures a Router at construction time. The zero value
// reproduces spec.md's described default behavior exactly; every
// field here is an opt-in escape hatch supplemented from
// original_source/ (see SPEC_FULL.md).
type Options struct {
	// DisableParamMatch treats ':' as an ordinary literal path
	// character instead of a parameter marker.
	DisableParamMatch bool
	// DisablePathCache forces every route through the radix tree,
	// even exact-literal paths that would otherwise go to the hash
	// index.
	DisablePathCache bool
	// Registerer, if non-nil, receives the Router's Prometheus
	// collectors. Metrics are skipped entirely when nil.
	Registerer prometheus.Registerer
}

// Router is the concurrency-safe route matching engine of spec.md §5:
// MatchRoute takes the lock in shared mode and never blocks other
// readers; AddRoute, UpdateRoute and DeleteRoute take it exclusively.
type Router struct {
	mu      sync.RWMutex
	ix      *routeIndex
	opts    Options
	metrics *Metrics
	count   int
}

// New constructs a Router from an initial batch of routes. It fails
// fast: if any route's path is malformed, New returns a nil Router
// and the error, discarding any routes already processed rather than
// returning a partially populated router (SPEC_FULL.md's
// "SUPPLEMENTED FEATURES" section on construction atomicity).
func New(routes []*Route, opts Options) (*Router, error) {
	r := &Router{
		ix:      newRouteIndex(opts.DisablePathCache),
		opts:    opts,
		metrics: newMetrics(opts.Registerer),
	}

	for _, route := range routes {
		if err := r.addRouteLocked(route); err != nil {
			return nil, err
		}
	}
	r.metrics.setRoutesRegistered(r.count)

	return r, nil
}

// AddRoute processes every path of route and inserts the resulting
// records into the index. Per spec.md §4.6, a failure partway through
// route's paths leaves router state unspecified for that route; a
// caller that needs atomicity across a whole route's paths should
// call DeleteRoute for r.ID on error.
func (r *Router) AddRoute(route *Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.addRouteLocked(route)
	if err != nil {
		r.metrics.incAddRouteErrors()
	} else {
		r.metrics.setRoutesRegistered(r.count)
	}
	return err
}

func (r *Router) addRouteLocked(route *Route) error {
	if len(route.Paths) == 0 {
		return newError(MalformedPath, route.ID, "", nil)
	}
	ensureID(route)

	for _, path := range route.Paths {
		rec, err := processRoute(route, path, r.opts.DisableParamMatch)
		if err != nil {
			log.Errorf("add route %q: %v", route.ID, err)
			return err
		}
		r.ix.insert(rec)
		r.count++
	}

	log.Debugf("added route %q (%d path(s))", route.ID, len(route.Paths))
	return nil
}

// DeleteRoute rebuilds the processed record for each of route's paths
// and removes the matching entry from the index. Removing a route
// that isn't present is reported as RouteNotFound.
func (r *Router) DeleteRoute(route *Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.deleteRouteLocked(route)
	if err == nil {
		r.metrics.setRoutesRegistered(r.count)
	}
	return err
}

func (r *Router) deleteRouteLocked(route *Route) error {
	for _, path := range route.Paths {
		rec, err := processRoute(route, path, r.opts.DisableParamMatch)
		if err != nil {
			return err
		}
		if !r.ix.remove(rec) {
			notFound := newError(RouteNotFound, route.ID, path, nil)
			log.Errorf("delete route %q: %v", route.ID, notFound)
			return notFound
		}
		r.count--
	}

	log.Debugf("deleted route %q", route.ID)
	return nil
}

// UpdateRoute is exactly DeleteRoute(old) followed by AddRoute(new),
// each under its own exclusive lock acquisition rather than one held
// across both. Per spec.md §5 this is deliberately not atomic: a
// concurrent MatchRoute call landing between the two steps observes
// neither the old nor the new route, never a mix of both.
func (r *Router) UpdateRoute(oldRoute, newRoute *Route) error {
	if err := r.DeleteRoute(oldRoute); err != nil {
		return err
	}
	return r.AddRoute(newRoute)
}

// MatchRoute is the single query entry point (spec.md §6). It never
// blocks on another reader, allocates only the per-call iterator and
// result map on the success path, and never returns an error for "no
// route matched" — that case is a nil result with a nil error.
func (r *Router) MatchRoute(path string, opts *MatchOptions) (*MatchResult, error) {
	start := time.Now()

	if opts == nil {
		opts = &MatchOptions{}
	}
	lowerHost := lowercaseHost(opts.Host)

	r.mu.RLock()
	result := matchRoute(r.ix, path, opts, lowerHost)
	r.mu.RUnlock()

	if r.metrics != nil {
		outcome := "miss"
		if result != nil {
			outcome = "hit"
		}
		r.metrics.observeMatch("match_route", outcome)
		r.metrics.matchDuration.Observe(time.Since(start).Seconds())
	}

	return result, nil
}

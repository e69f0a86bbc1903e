package routing

import "github.com/google/uuid"

// FilterFunc is a user-supplied predicate evaluated last in the
// per-candidate match order (spec.md §4.5 step 5). It receives the
// extracted variable map (or an empty map when the request supplied
// none) and the match options the candidate is being evaluated
// against; the host field of opts has already been lowercase
// normalized. Implementations must be safe to call concurrently from
// any number of reader goroutines.
type FilterFunc func(vars map[string]string, opts *MatchOptions) bool

// Route is the caller-supplied route descriptor (spec.md §3). Paths
// must be non-empty. Methods and Hosts being nil/empty means "any".
// RemoteAddrs is accepted but neither copied onto the processed record
// nor evaluated by the matcher (reserved, spec.md §1).
type Route struct {
	ID          string
	Paths       []string
	Methods     MethodSet
	Hosts       []string
	RemoteAddrs []string
	Vars        []VarExpr
	FilterFn    FilterFunc
	Priority    int
	Metadata    any
}

// record is the processed form of a single (Route, path) pair — one
// record exists per path in Route.Paths (spec.md §3 "Processed route
// record").
type record struct {
	id       string
	methods  MethodSet
	hosts    []HostPattern
	vars     []VarExpr
	filterFn FilterFunc
	priority int
	metadata any

	pathOriginal string
	pathKey      string
	pathOp       PathOp
	hasParam     bool
	pattern      *compiledPattern
}

// processRoute builds the processed record for one of route's paths.
// It is the one place path patterns are compiled, per spec.md §2's
// dependency order (path parser → pattern compiler → route record).
func processRoute(route *Route, path string, noParamMatch bool) (*record, error) {
	key, op, _ := splitPathKey(path, noParamMatch)

	var pattern *compiledPattern
	hasParam := false
	if op == PrefixMatch {
		compiled, ok, err := compilePattern(path, noParamMatch)
		if err != nil {
			return nil, newError(MalformedPath, route.ID, path, err)
		}
		if ok {
			pattern = compiled
			hasParam = true
		}
	}

	hosts := make([]HostPattern, 0, len(route.Hosts))
	for _, h := range route.Hosts {
		hosts = append(hosts, ParseHostPattern(h))
	}

	return &record{
		id:           route.ID,
		methods:      route.Methods,
		hosts:        hosts,
		vars:         route.Vars,
		filterFn:     route.FilterFn,
		priority:     route.Priority,
		metadata:     route.Metadata,
		pathOriginal: path,
		pathKey:      key,
		pathOp:       op,
		hasParam:     hasParam,
		pattern:      pattern,
	}, nil
}

// ensureID assigns a generated identifier when the caller left ID
// empty, the same convenience the teacher affords synthetic routes
// that don't need a caller-chosen id (see SPEC_FULL.md's DOMAIN STACK
// section on google/uuid).
func ensureID(route *Route) {
	if route.ID == "" {
		route.ID = uuid.NewString()
	}
}

// higherPriority implements the candidate list comparator of spec.md
// §4.3: higher Priority first, ties broken by longer original path
// pattern first. It reports whether a strictly outranks b.
func higherPriority(a, b *record) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return len(a.pathOriginal) > len(b.pathOriginal)
}

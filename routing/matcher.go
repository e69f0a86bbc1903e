package routing

import "strings"

// MatchOptions is the request descriptor passed to MatchRoute
// (spec.md §3 "Match options"). All fields are optional; MatchRoute
// never mutates the value the caller passed in.
type MatchOptions struct {
	Method     string
	Host       string
	RemoteAddr string
	Vars       map[string]string
}

// MatchResult is returned on a successful match (spec.md §3).
// Matched always carries the synthetic "_path" key, and "_method" /
// "_host" whenever the corresponding request field was supplied and
// evaluated.
type MatchResult struct {
	ID       string
	Metadata any
	Matched  map[string]string
}

// evaluateCandidate runs the fixed per-candidate order of spec.md §4.5 against
// r, writing extracted values into matched. It returns false on the
// first failing step, at which point matched's contents for this
// candidate must be discarded by the caller.
func evaluateCandidate(r *record, requestPath string, opts *MatchOptions, lowerHost string, matched map[string]string) bool {
	// 1. Method
	if r.methods != 0 {
		if opts.Method == "" {
			return false
		}
		m, ok := ParseMethod(opts.Method)
		if !ok || !r.methods.Has(m) {
			return false
		}
	}
	if opts.Method != "" {
		matched["_method"] = opts.Method
	}

	// 2. Host
	if len(r.hosts) > 0 {
		if opts.Host == "" {
			return false
		}
		matchedHost := false
		for _, p := range r.hosts {
			if p.Match(lowerHost) {
				matched["_host"] = p.matchValue(opts.Host)
				matchedHost = true
				break
			}
		}
		if !matchedHost {
			return false
		}
	}

	// 3. Path parameters
	if r.hasParam {
		values, ok := r.pattern.extract(requestPath)
		if !ok {
			return false
		}
		for i, name := range r.pattern.names {
			matched[name] = values[i]
		}
	}

	// 4. Variable expressions
	if len(r.vars) > 0 {
		if opts.Vars == nil {
			return false
		}
		for _, expr := range r.vars {
			if !expr.Eval(opts.Vars) {
				return false
			}
		}
	}

	// 5. Predicate callback
	if r.filterFn != nil {
		vars := opts.Vars
		if vars == nil {
			vars = map[string]string{}
		}
		filterOpts := *opts
		filterOpts.Host = lowerHost
		if !r.filterFn(vars, &filterOpts) {
			return false
		}
	}

	return true
}

// matchRoute implements spec.md §4.4's two-phase search against an
// already-built routeIndex. Callers (Router.MatchRoute) are
// responsible for holding the appropriate lock around this call and
// for lowercasing opts.Host into lowerHost before calling.
func matchRoute(ix *routeIndex, path string, opts *MatchOptions, lowerHost string) *MatchResult {
	matched := make(map[string]string)

	// Phase 1: hash probe.
	if list, ok := ix.hashPath.Get(path); ok {
		for _, r := range list.records {
			clearMap(matched)
			if evaluateCandidate(r, path, opts, lowerHost, matched) {
				matched["_path"] = path
				return &MatchResult{ID: r.id, Metadata: r.metadata, Matched: matched}
			}
		}
	}

	// Phase 2: tree walk.
	it := ix.prefixTree.NewIterator()
	keyBytes := []byte(path)
	if !it.Seek(ix.prefixTree, keyBytes) {
		return nil
	}
	for {
		dataKey, ok := it.Up(keyBytes)
		if !ok {
			return nil
		}
		list, ok := ix.matchData[dataKey]
		if !ok {
			continue
		}
		for _, r := range list.records {
			// Equal records reach the tree only under DisablePathCache;
			// they still match their literal path exactly.
			if r.pathOp == Equal && r.pathOriginal != path {
				continue
			}
			clearMap(matched)
			if evaluateCandidate(r, path, opts, lowerHost, matched) {
				matched["_path"] = r.pathOriginal
				return &MatchResult{ID: r.id, Metadata: r.metadata, Matched: matched}
			}
		}
	}
}

func clearMap(m map[string]string) {
	for k := range m {
		delete(m, k)
	}
}

func lowercaseHost(host string) string {
	if host == "" {
		return ""
	}
	return strings.ToLower(host)
}

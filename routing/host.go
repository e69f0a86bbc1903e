package routing

import "strings"

// HostPattern is a single parsed entry of a Route's Hosts list. A
// wildcard pattern stores the suffix including the leading dot, e.g.
// "*.example.com" becomes Pattern ".example.com".
type HostPattern struct {
	IsWildcard bool
	Pattern    string
}

// ParseHostPattern lowercases and classifies a raw host pattern string
// per spec.md §3/§6.
func ParseHostPattern(raw string) HostPattern {
	if strings.HasPrefix(raw, "*") {
		return HostPattern{IsWildcard: true, Pattern: strings.ToLower(raw[1:])}
	}
	return HostPattern{IsWildcard: false, Pattern: strings.ToLower(raw)}
}

// Match reports whether the given (already-lowercased) request host
// satisfies the pattern.
func (p HostPattern) Match(lowerHost string) bool {
	if p.IsWildcard {
		return strings.HasSuffix(lowerHost, p.Pattern)
	}
	return lowerHost == p.Pattern
}

// matchValue returns the value that should be recorded under "_host"
// for a request host that matched this pattern.
func (p HostPattern) matchValue(requestHost string) string {
	if p.IsWildcard {
		return "*" + p.Pattern
	}
	return requestHost
}

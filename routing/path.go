package routing

import (
	"regexp"
	"strings"
)

// PathOp distinguishes a route path pattern that matches only the
// exact literal path from one that requires regex evaluation of a
// parameterized or wildcard pattern.
type PathOp int

const (
	// Equal means the pattern contains no ':' and no '*' character
	// anywhere: it is placed in the exact-path hash index.
	Equal PathOp = iota
	// PrefixMatch means the pattern's literal prefix (path_key) is
	// indexed in the radix tree and the remainder is evaluated by a
	// compiled regular expression.
	PrefixMatch
)

// compiledPattern holds the once-built regex and ordered capture
// names for a parameterized path pattern (spec.md §2.3, §4.1).
type compiledPattern struct {
	re    *regexp.Regexp
	names []string
}

// splitPathKey finds the longest literal prefix of a path pattern: the
// substring up to the first ':' or '*', whichever appears first. It
// returns the prefix, the PathOp, and whether either character was
// found at all. When noParamMatch is set, ':' is not treated as a
// parameter marker (Options.DisableParamMatch, SPEC_FULL.md).
func splitPathKey(pattern string, noParamMatch bool) (key string, op PathOp, hasSpecial bool) {
	chars := "*"
	if !noParamMatch {
		chars = ":*"
	}
	idx := strings.IndexAny(pattern, chars)
	if idx < 0 {
		return pattern, Equal, false
	}
	return pattern[:idx], PrefixMatch, true
}

// compilePattern builds the regular expression and ordered capture
// name list for a path pattern containing ':name' parameters and/or a
// single trailing '*' or '*name' wildcard, per spec.md §4.1. It
// returns an error if the pattern is malformed (currently: a wildcard
// that doesn't appear as the final segment is still compiled — the
// source accepts this and simply captures everything after it, so
// failures here are limited to pathologically invalid segment
// content that regexp.Compile itself rejects).
func compilePattern(pattern string, noParamMatch bool) (*compiledPattern, bool, error) {
	segments := strings.Split(pattern, "/")
	names := make([]string, 0, len(segments))
	parts := make([]string, 0, len(segments))
	hasCapture := false

	for _, seg := range segments {
		switch {
		case seg == "":
			parts = append(parts, "")
		case !noParamMatch && strings.HasPrefix(seg, ":"):
			name := seg[1:]
			names = append(names, name)
			parts = append(parts, `([^/]+)`)
			hasCapture = true
		case strings.HasPrefix(seg, "*"):
			name := seg[1:]
			if name == "" {
				name = "ext"
			}
			names = append(names, name)
			parts = append(parts, `(.*)`)
			hasCapture = true
		default:
			parts = append(parts, regexp.QuoteMeta(seg))
		}
	}

	if !hasCapture {
		return nil, false, nil
	}

	reStr := "^" + strings.Join(parts, "/") + "$"
	re, err := regexp.Compile(reStr)
	if err != nil {
		return nil, false, err
	}

	return &compiledPattern{re: re, names: names}, true, nil
}

// extract applies the compiled pattern to the whole request path and,
// on a full match, returns the ordered capture values. ok is false
// when the pattern does not match the entire path.
func (p *compiledPattern) extract(requestPath string) (values []string, ok bool) {
	m := p.re.FindStringSubmatch(requestPath)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

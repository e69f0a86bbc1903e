package routing

import (
	"regexp"
	"strconv"
)

// VarOp names the comparison a VarExpr performs.
type VarOp int

const (
	VarEq VarOp = iota
	VarNeq
	VarGt
	VarLt
	VarIn
	VarRegex
)

// VarExpr is a single tagged-variant condition over a request's
// variable map (spec.md §3/§4.4). Construct one with the EqVar /
// NeqVar / GtVar / LtVar / InVar / RegexVar helpers rather than
// populating the struct directly; RegexVar compiles its pattern once
// at construction time.
type VarExpr struct {
	op      VarOp
	name    string
	value   string
	values  []string
	pattern *regexp.Regexp
}

func EqVar(name, value string) VarExpr  { return VarExpr{op: VarEq, name: name, value: value} }
func NeqVar(name, value string) VarExpr { return VarExpr{op: VarNeq, name: name, value: value} }
func GtVar(name, value string) VarExpr  { return VarExpr{op: VarGt, name: name, value: value} }
func LtVar(name, value string) VarExpr  { return VarExpr{op: VarLt, name: name, value: value} }

func InVar(name string, values ...string) VarExpr {
	return VarExpr{op: VarIn, name: name, values: values}
}

// RegexVar compiles pattern immediately and panics if it is invalid,
// the same "fail fast at construction" discipline compiled path
// patterns use (see path.go); callers build their Route's Vars slice
// once, well before any AddRoute call is on a hot path.
func RegexVar(name, pattern string) VarExpr {
	return VarExpr{op: VarRegex, name: name, pattern: regexp.MustCompile(pattern)}
}

// Eval evaluates the expression against a request's variable map. A
// missing variable evaluates every op but Neq to false, and Neq to
// true, per spec.md §3.
func (e VarExpr) Eval(vars map[string]string) bool {
	v, ok := vars[e.name]
	switch e.op {
	case VarEq:
		return ok && v == e.value
	case VarNeq:
		return !ok || v != e.value
	case VarGt:
		return ok && numericCompare(v, e.value, func(a, b float64) bool { return a > b })
	case VarLt:
		return ok && numericCompare(v, e.value, func(a, b float64) bool { return a < b })
	case VarIn:
		if !ok {
			return false
		}
		for _, candidate := range e.values {
			if candidate == v {
				return true
			}
		}
		return false
	case VarRegex:
		return ok && e.pattern.MatchString(v)
	default:
		return false
	}
}

func numericCompare(rawA, rawB string, cmp func(a, b float64) bool) bool {
	a, err := strconv.ParseFloat(rawA, 64)
	if err != nil {
		return false
	}
	b, err := strconv.ParseFloat(rawB, 64)
	if err != nil {
		return false
	}
	return cmp(a, b)
}

package report

import (
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/rzbill/stopwatch/pkg/stopwatch"
)

// Filter wraps a compiled CEL program. The zero value, and a Filter built
// from an empty expression, matches everything.
type Filter struct {
	prog    cel.Program
	enabled bool
}

// NewFilter compiles expr. Parse and type errors are returned as-is.
func NewFilter(expr string) (Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Filter{}, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("id", cel.StringType),
		cel.Variable("running", cel.BoolType),
		cel.Variable("laps_ms", cel.ListType(cel.IntType)),
		cel.Variable("lap_count", cel.IntType),
		cel.Variable("total_ms", cel.IntType),
	)
	if err != nil {
		return Filter{}, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return Filter{}, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return Filter{}, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return Filter{}, err
	}
	return Filter{prog: prog, enabled: true}, nil
}

// Enabled reports whether the filter has an expression.
func (f Filter) Enabled() bool { return f.enabled }

// Match evaluates the expression against snap. Evaluation errors and
// non-boolean results count as no match.
func (f Filter) Match(snap stopwatch.Snapshot) bool {
	if !f.enabled {
		return true
	}
	out, _, err := f.prog.Eval(map[string]any{
		"id":        snap.ID,
		"running":   snap.Running,
		"laps_ms":   snap.LapsMs(),
		"lap_count": int64(len(snap.Laps)),
		"total_ms":  snap.Total().Milliseconds(),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}

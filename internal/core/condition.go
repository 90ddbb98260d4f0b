package core

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// ConditionEnv builds the variable set available to catalog `when`
// expressions.
func ConditionEnv(ctx *SystemContext) map[string]any {
	return map[string]any{
		"os":       ctx.OS,
		"distro":   ctx.Distro,
		"version":  ctx.Version,
		"arch":     ctx.Arch,
		"hostname": ctx.Hostname,
	}
}

// EvaluateCondition compiles and runs a boolean `when` expression
// against the system context.
func EvaluateCondition(cond string, ctx *SystemContext) (bool, error) {
	env := ConditionEnv(ctx)

	program, err := expr.Compile(cond, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("invalid condition %q: %w", cond, err)
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("condition %q: %w", cond, err)
	}

	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q did not evaluate to a boolean", cond)
	}
	return result, nil
}

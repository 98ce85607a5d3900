// Package policy evaluates user-defined quality rules written as CEL
// expressions against interface metric samples.
package policy

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
	"gopkg.in/yaml.v3"
)

// DynamicRule is a user-defined alert rule, usually loaded from YAML.
type DynamicRule struct {
	ID        string `json:"id" yaml:"id"`
	Condition string `json:"condition" yaml:"condition"` // CEL: "window == '10m' && query_rate < 90.0"
	Level     string `json:"level" yaml:"level"`         // "warning" or "error"
	Message   string `json:"message" yaml:"message"`
}

// Engine compiles dynamic rules and evaluates them against metric
// variable maps.
type Engine struct {
	env      *cel.Env
	rules    map[string]DynamicRule
	programs map[string]cel.Program
	order    []string
}

// NewEngine initializes the CEL environment with the metric variable
// declarations rules may reference.
func NewEngine() (*Engine, error) {
	env, err := cel.NewEnv(
		cel.Declarations(
			decls.NewVar("id", decls.String),
			decls.NewVar("name", decls.String),
			decls.NewVar("window", decls.String),
			decls.NewVar("query_rate", decls.Double),
			decls.NewVar("response_ms", decls.Double),
			decls.NewVar("error_rate", decls.Double),
			decls.NewVar("calls", decls.Int),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL env: %w", err)
	}

	return &Engine{
		env:      env,
		rules:    make(map[string]DynamicRule),
		programs: make(map[string]cel.Program),
	}, nil
}

// Compile compiles a list of rules into executable programs. Rules are
// evaluated later in the order given here.
func (e *Engine) Compile(rules []DynamicRule) error {
	for _, r := range rules {
		ast, issues := e.env.Compile(r.Condition)
		if issues != nil && issues.Err() != nil {
			return fmt.Errorf("rule %s compilation error: %w", r.ID, issues.Err())
		}

		prg, err := e.env.Program(ast)
		if err != nil {
			return fmt.Errorf("rule %s program creation error: %w", r.ID, err)
		}

		if _, exists := e.programs[r.ID]; !exists {
			e.order = append(e.order, r.ID)
		}
		e.rules[r.ID] = r
		e.programs[r.ID] = prg
	}
	return nil
}

// Evaluate returns the rules whose condition holds for the given
// variables. A rule that fails to evaluate is logged and skipped.
func (e *Engine) Evaluate(vars map[string]interface{}) []DynamicRule {
	var matched []DynamicRule

	for _, id := range e.order {
		out, _, err := e.programs[id].Eval(vars)
		if err != nil {
			slog.Error("Rule evaluation failed", "rule_id", id, "error", err)
			continue
		}

		if match, ok := out.Value().(bool); ok && match {
			matched = append(matched, e.rules[id])
		}
	}

	return matched
}

// LoadRules reads a YAML rule file: a top-level "rules" list of
// DynamicRule entries.
func LoadRules(path string) ([]DynamicRule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var doc struct {
		Rules []DynamicRule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing rules %s: %w", path, err)
	}
	return doc.Rules, nil
}

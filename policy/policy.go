// Package policy decides which elixir.Context kinds a project wants
// surfaced as editor suggestions. Each rule is a boolean
// github.com/expr-lang/expr expression compiled once against a fixed
// environment shape, then evaluated per classification instead of being
// re-parsed every time.
package policy

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrRuleNotBool is returned when a rule expression evaluates to something
// other than a boolean.
var ErrRuleNotBool = errors.New("policy: rule did not evaluate to a boolean")

// Rule is one named gate, e.g. "no module attributes in tests":
//
//	name: no-attrs-in-tests
//	when: kind == "ModuleAttribute" && ext == ".exs"
//	allow: false
type Rule struct {
	Name  string `yaml:"name"`
	When  string `yaml:"when"`
	Allow bool   `yaml:"allow"`
}

// compiledRule pairs a Rule with its compiled expression program.
type compiledRule struct {
	rule    Rule
	program *vm.Program
}

// Config is a compiled set of rules, ready to be evaluated repeatedly
// without re-parsing expressions on every completion request.
type Config struct {
	compiled []compiledRule
}

// Env is the evaluation environment exposed to rule expressions. Field
// names match what a rule author writes in .ember.yaml.
type Env struct {
	Kind      string `expr:"kind"`
	Chars     string `expr:"chars"`
	InsideDot bool   `expr:"insideDot"`
	Ext       string `expr:"ext"`
}

// Compile compiles every rule once. A rule that fails to compile is
// reported with its name so a misconfigured .ember.yaml is easy to fix.
func Compile(rules []Rule) (*Config, error) {
	cfg := &Config{compiled: make([]compiledRule, 0, len(rules))}

	for _, r := range rules {
		program, err := expr.Compile(r.When, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("policy: compiling rule %q: %w", r.Name, err)
		}

		cfg.compiled = append(cfg.compiled, compiledRule{rule: r, program: program})
	}

	return cfg, nil
}

// DefaultConfig is an empty, always-allow policy: no rules means no gate.
func DefaultConfig() *Config {
	return &Config{}
}

// Allows reports whether env is allowed. Rules are evaluated in order; the
// first matching rule's Allow decides the outcome and later rules are not
// consulted.
// A classification with no matching rule is allowed by default.
func (c *Config) Allows(env Env) (bool, error) {
	if c == nil {
		return true, nil
	}

	for _, cr := range c.compiled {
		out, err := expr.Run(cr.program, env)
		if err != nil {
			return false, fmt.Errorf("policy: evaluating rule %q: %w", cr.rule.Name, err)
		}

		matched, ok := out.(bool)
		if !ok {
			return false, fmt.Errorf("%w: rule %q returned %T", ErrRuleNotBool, cr.rule.Name, out)
		}

		if matched {
			return cr.rule.Allow, nil
		}
	}

	return true, nil
}

package rotation

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RuleEnv is the environment a hold rule is evaluated against.
type RuleEnv struct {
	Level        int
	MPPercent    float64
	Lilies       int
	BloodLily    int
	PartyAverage float64
	Enemies      int
	InCombat     bool
	Moving       bool
}

// HoldRules are user-supplied boolean expressions keyed by ability name. A
// rule evaluating true withholds the ability for the tick. Expressions are
// compiled once at load time; an expression that fails to compile is a
// configuration error, not a runtime one.
type HoldRules struct {
	programs map[string]*vm.Program
}

// CompileHoldRules compiles every configured rule against RuleEnv.
func CompileHoldRules(rules map[string]string) (*HoldRules, error) {
	if len(rules) == 0 {
		return nil, nil
	}

	h := &HoldRules{programs: make(map[string]*vm.Program, len(rules))}
	for ability, src := range rules {
		program, err := expr.Compile(src, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("error compiling hold rule for %s: %w", ability, err)
		}
		h.programs[ability] = program
	}

	return h, nil
}

// Held evaluates the rule for an ability, if any. Evaluation errors count as
// "not held": a broken rule must never freeze the rotation mid-combat.
func (h *HoldRules) Held(ability string, env RuleEnv) bool {
	if h == nil {
		return false
	}
	program, found := h.programs[ability]
	if !found {
		return false
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	held, _ := result.(bool)

	return held
}

// Package render turns palette assignments into body classes for a render target.
package render

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/wsuwp/colorpalette/internal/models"
)

// DefaultRule makes single pages eligible.
const DefaultRule = `singular && item.type == "page"`

// Target describes what is being rendered.
type Target struct {
	// ItemID is the item being rendered; empty for listings.
	ItemID string

	// Singular is true when the view shows exactly one item.
	Singular bool

	Type   models.ItemType
	Status models.ItemStatus
}

// Policy decides whether a target may use its assigned palette.
type Policy struct {
	rule    string
	program *vm.Program
}

// NewPolicy compiles rule. An empty rule uses DefaultRule.
func NewPolicy(rule string) (*Policy, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		rule = DefaultRule
	}

	program, err := expr.Compile(rule, expr.Env(ruleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile eligibility rule %q: %w", rule, err)
	}
	return &Policy{rule: rule, program: program}, nil
}

// TypePolicy returns a policy accepting single items of itemType.
func TypePolicy(itemType models.ItemType) (*Policy, error) {
	return NewPolicy(fmt.Sprintf("singular && item.type == %q", string(itemType)))
}

// PolicyFor builds the render policy for a configured rule and eligible
// type. An empty or default rule follows eligibleType, so the render path
// accepts the same items the save path does.
func PolicyFor(rule string, eligibleType models.ItemType) (*Policy, error) {
	rule = strings.TrimSpace(rule)
	if (rule == "" || rule == DefaultRule) && eligibleType != "" {
		return TypePolicy(eligibleType)
	}
	return NewPolicy(rule)
}

// Rule returns the source expression.
func (p *Policy) Rule() string {
	return p.rule
}

// Eligible evaluates the rule against target.
func (p *Policy) Eligible(target Target) (bool, error) {
	out, err := expr.Run(p.program, newRuleEnv(target))
	if err != nil {
		return false, fmt.Errorf("evaluate eligibility rule: %w", err)
	}
	eligible, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("eligibility rule returned %T, want bool", out)
	}
	return eligible, nil
}

// ruleEnv is the typed environment rules compile against, so a rule whose
// result is not a bool fails at load time.
type ruleEnv struct {
	Singular bool     `expr:"singular"`
	Item     ruleItem `expr:"item"`
}

type ruleItem struct {
	ID     string `expr:"id"`
	Type   string `expr:"type"`
	Status string `expr:"status"`
}

func newRuleEnv(target Target) ruleEnv {
	return ruleEnv{
		Singular: target.Singular,
		Item: ruleItem{
			ID:     target.ItemID,
			Type:   string(target.Type),
			Status: string(target.Status),
		},
	}
}

package difficulty

import (
	"fmt"
	"strings"
	"time"
)

// Operator is an arithmetic operation symbol, written exactly as it
// appears in the difficulty menu.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "÷"
)

// Profile describes one difficulty tier: the operand range, the allowed
// operators, and the round duration. The operator set may contain
// duplicates; each occurrence counts once when an operator is drawn, so
// a duplicate doubles that operator's selection weight.
type Profile struct {
	Name         string
	Min          int
	Max          int
	Operators    []Operator
	RoundSeconds int
}

// All returns the fixed difficulty catalog in menu order.
func All() []Profile {
	return []Profile{
		{Name: "Easy", Min: 0, Max: 10, Operators: []Operator{OpAdd, OpSub}, RoundSeconds: 60},
		{Name: "Normal", Min: 1, Max: 20, Operators: []Operator{OpAdd, OpSub, OpMul}, RoundSeconds: 75},
		{Name: "Hard", Min: 2, Max: 50, Operators: []Operator{OpAdd, OpSub, OpMul, OpDiv}, RoundSeconds: 90},
		// OpAdd is listed twice on purpose: additions are drawn at
		// double weight on the largest operand range.
		{Name: "Insane", Min: 5, Max: 120, Operators: []Operator{OpAdd, OpSub, OpMul, OpDiv, OpAdd}, RoundSeconds: 120},
	}
}

// Duration returns the round length as a time.Duration.
func (p Profile) Duration() time.Duration {
	return time.Duration(p.RoundSeconds) * time.Second
}

// OpsList renders the operator set for the menu line, duplicates kept.
func (p Profile) OpsList() string {
	parts := make([]string, len(p.Operators))
	for i, op := range p.Operators {
		parts[i] = string(op)
	}
	return strings.Join(parts, ", ")
}

// Validate checks the structural invariants of a profile.
func (p Profile) Validate() error {
	if p.Min > p.Max {
		return fmt.Errorf("profile %q: operand range %d..%d is inverted", p.Name, p.Min, p.Max)
	}
	if p.RoundSeconds <= 0 {
		return fmt.Errorf("profile %q: round duration must be positive, got %d", p.Name, p.RoundSeconds)
	}
	if len(p.Operators) == 0 {
		return fmt.Errorf("profile %q: empty operator set", p.Name)
	}
	return nil
}

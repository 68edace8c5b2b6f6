package csp

import "github.com/pipegrid/engine/pipe"

// Removal records a single value having been pruned from a variable's
// active domain: which variable, which value, and the index within the
// active domain the value previously occupied. The index is what lets
// Undo restore the exact prior ordering.
type Removal struct {
	Variable *Variable
	Value    pipe.Pipe
	Index    int
}

// ValidatorFunc decides whether a fully assigned scope satisfies a
// constraint. It is only ever invoked once every variable in scope is
// assigned; Constraint.Validate enforces that and panics otherwise.
type ValidatorFunc func(assignments []pipe.Pipe) bool

// PrunerFunc inspects the current (possibly partial) state of scope and
// strips any provably-inconsistent values from the active domains of its
// unassigned members. It MUST perform the removals before returning —
// callers rely on both the returned Removal log (for undo) and the
// mutation itself (for downstream constraints to observe).
// PrunerFunc must be monotone: it only ever removes values, never adds
// them back.
type PrunerFunc func(scope []*Variable) []Removal

// Constraint binds a name to an ordered scope of variables, a Validator,
// and a Pruner.
type Constraint struct {
	Name    string
	Scope   []*Variable
	Valid   ValidatorFunc
	PruneFn PrunerFunc
}

// NewConstraint builds a Constraint over the given scope.
func NewConstraint(name string, scope []*Variable, valid ValidatorFunc, prune PrunerFunc) *Constraint {
	return &Constraint{Name: name, Scope: scope, Valid: valid, PruneFn: prune}
}

// Validate resolves every scope variable's assignment and runs the
// constraint's validator. Calling Validate while any scope variable is
// unassigned is a programmer error and panics.
func (c *Constraint) Validate() bool {
	assignments := make([]pipe.Pipe, len(c.Scope))
	for i, v := range c.Scope {
		if !v.IsAssigned() {
			panic("csp: Validate() called with an unassigned scope variable: " + c.Name)
		}
		assignments[i] = v.Assignment()
	}
	return c.Valid(assignments)
}

// Prune runs the constraint's pruner over its current scope state,
// returning the Removal log of whatever it stripped (possibly empty).
func (c *Constraint) Prune() []Removal {
	return c.PruneFn(c.Scope)
}

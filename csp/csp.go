package csp

// CSP bundles the ordered variables and constraints of one puzzle instance
// together with a variable→constraints index, built once and reused for
// the entire solve.
type CSP struct {
	Name        string
	Variables   []*Variable
	Constraints []*Constraint

	byVariable map[*Variable][]*Constraint
}

// New builds a CSP over variables and constraints, indexing each
// constraint under every variable in its scope.
func New(name string, variables []*Variable, constraints []*Constraint) *CSP {
	index := make(map[*Variable][]*Constraint, len(variables))
	for _, c := range constraints {
		for _, v := range c.Scope {
			index[v] = append(index[v], c)
		}
	}
	return &CSP{
		Name:        name,
		Variables:   variables,
		Constraints: constraints,
		byVariable:  index,
	}
}

// ConstraintsFor returns every constraint whose scope mentions v, in the
// order they were registered.
func (c *CSP) ConstraintsFor(v *Variable) []*Constraint {
	return c.byVariable[v]
}

// Unassigned returns every variable that currently has no assignment, in
// variable-registration order.
func (c *CSP) Unassigned() []*Variable {
	var out []*Variable
	for _, v := range c.Variables {
		if !v.IsAssigned() {
			out = append(out, v)
		}
	}
	return out
}

// AllAssigned reports whether every variable in the CSP currently holds an
// assignment.
func (c *CSP) AllAssigned() bool {
	for _, v := range c.Variables {
		if !v.IsAssigned() {
			return false
		}
	}
	return true
}

// ValidateAll runs every constraint's validator against the current (must
// be total) assignment. Returns false on the first violated constraint.
func (c *CSP) ValidateAll() bool {
	for _, constraint := range c.Constraints {
		if !constraint.Validate() {
			return false
		}
	}
	return true
}

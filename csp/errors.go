package csp

import "errors"

// Sentinel errors for csp operations. Invariant violations (assigning
// outside a domain, reading a missing assignment, validating a scope with
// an unassigned variable) panic rather than return one of these.
var (
	// ErrIncompleteAssignment names the condition of a scope in which at
	// least one variable is unassigned. No function in this package returns
	// it: Constraint.Validate panics in that case.
	ErrIncompleteAssignment = errors.New("csp: not all scope variables are assigned")
)

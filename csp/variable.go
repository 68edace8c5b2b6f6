package csp

import "github.com/pipegrid/engine/pipe"

// Variable owns one grid cell's full domain, its mutable active domain,
// and its optional current assignment. Invariants:
//
//   - ActiveDomain() is always a subset of Domain().
//   - If an assignment is set, it is always a member of Domain(); the
//     active domain is not required to contain it during search.
//   - Domain and ActiveDomain are never reordered by pruning: removing a
//     value preserves the relative order of the survivors.
type Variable struct {
	location int         // cell index this variable represents
	domain   []pipe.Pipe // full domain D, fixed after construction
	active   []pipe.Pipe // active domain A, mutated by pruning
	assigned bool
	value    pipe.Pipe
}

// NewVariable creates a Variable for the given cell index with the given
// full domain. The active domain starts out equal to the full domain.
func NewVariable(location int, domain []pipe.Pipe) *Variable {
	active := make([]pipe.Pipe, len(domain))
	copy(active, domain)
	return &Variable{
		location: location,
		domain:   domain,
		active:   active,
	}
}

// Location returns the cell index this variable represents.
func (v *Variable) Location() int {
	return v.location
}

// Domain returns the variable's full, unpruned domain in enumeration
// order. The returned slice must not be mutated by callers.
func (v *Variable) Domain() []pipe.Pipe {
	return v.domain
}

// ActiveDomain returns the variable's current active domain in the
// relative order of its surviving members. The returned slice must not be
// mutated by callers; use Prune/Restore to change it.
func (v *Variable) ActiveDomain() []pipe.Pipe {
	return v.active
}

// InDomain reports whether p is a member of the variable's full domain.
func (v *Variable) InDomain(p pipe.Pipe) bool {
	for _, d := range v.domain {
		if d == p {
			return true
		}
	}
	return false
}

// IsAssigned reports whether the variable currently holds an assignment.
func (v *Variable) IsAssigned() bool {
	return v.assigned
}

// Assignment returns the variable's current assignment. Reading an
// assignment that is not set is a programmer error and panics.
func (v *Variable) Assignment() pipe.Pipe {
	if !v.assigned {
		panic("csp: Assignment() called on an unassigned variable")
	}
	return v.value
}

// Assign sets the variable's assignment to p. Assigning a value outside
// the variable's full domain is a programmer error and panics. Assign
// does not touch the active domain: A need not contain the assignment
// during search.
func (v *Variable) Assign(p pipe.Pipe) {
	if !v.InDomain(p) {
		panic("csp: Assign() called with a value outside the variable's domain")
	}
	v.assigned = true
	v.value = p
}

// Unassign clears the variable's assignment.
func (v *Variable) Unassign() {
	v.assigned = false
	v.value = pipe.Pipe{}
}

// indexOfActive returns the index of p within the active domain, or -1.
func (v *Variable) indexOfActive(p pipe.Pipe) int {
	for i, a := range v.active {
		if a == p {
			return i
		}
	}
	return -1
}

// Prune removes p from the active domain if present, preserving the
// relative order of the remaining elements. Reports the index p was
// removed from (needed to restore it at the same position later) and
// whether anything was actually removed — pruning a value already absent
// is a no-op, consistent with the monotone-pruner contract.
func (v *Variable) Prune(p pipe.Pipe) (index int, removed bool) {
	i := v.indexOfActive(p)
	if i < 0 {
		return -1, false
	}
	v.active = append(v.active[:i], v.active[i+1:]...)
	return i, true
}

// Restore reinserts p into the active domain at index, undoing a prior
// Prune. Restores MUST be applied in the reverse order their matching
// Prunes were recorded (LIFO) so that each index is still valid relative
// to the domain's current length.
func (v *Variable) Restore(index int, p pipe.Pipe) {
	if index < 0 || index > len(v.active) {
		panic("csp: Restore() index out of range; undo log applied out of order")
	}
	v.active = append(v.active, pipe.Pipe{})
	copy(v.active[index+1:], v.active[index:])
	v.active[index] = p
}

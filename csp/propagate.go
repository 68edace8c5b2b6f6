package csp

// Propagate runs the AC-3 / GAC worklist loop seeded with seed (typically
// the constraints mentioning a just-assigned variable).
//
// Each popped constraint's Pruner runs to completion before Propagate ever
// looks at the result — the Pruner contract requires every mutation for
// that call to already be applied. Propagate appends the whole batch of
// removals to the aggregated log, then checks once per batch whether any
// touched variable's active domain is now empty. Checking per batch
// rather than per removal matters: a single Prune call can strip several
// values from the same variable, and the domain can already read empty
// partway through that batch even though later removals in the same
// slice still need to be logged for Undo. Checking mid-batch would return
// early and silently drop the remaining already-applied removals from the
// log, leaving Undo unable to restore the full domain.
//
// Whenever a removal shrinks some variable v's active domain without
// emptying it, every constraint mentioning v that is not already queued
// is appended to the worklist. Propagation terminates because pruning is
// monotone and every domain is finite.
func (c *CSP) Propagate(seed []*Constraint) (log []Removal, wiped bool) {
	queue := append([]*Constraint(nil), seed...)
	queued := make(map[*Constraint]bool, len(seed))
	for _, constraint := range seed {
		queued[constraint] = true
	}

	for len(queue) > 0 {
		constraint := queue[0]
		queue = queue[1:]
		queued[constraint] = false

		removals := constraint.Prune()
		log = append(log, removals...)

		batchWiped := false
		for _, r := range removals {
			if len(r.Variable.ActiveDomain()) == 0 {
				batchWiped = true
			}
		}
		if batchWiped {
			return log, true
		}

		for _, r := range removals {
			for _, dependent := range c.ConstraintsFor(r.Variable) {
				if !queued[dependent] {
					queue = append(queue, dependent)
					queued[dependent] = true
				}
			}
		}
	}

	return log, false
}

// Undo reverses a Removal log in last-in-first-out order, restoring every
// active domain to its exact prior state — same members, same relative
// ordering of survivors.
func Undo(log []Removal) {
	for i := len(log) - 1; i >= 0; i-- {
		r := log[i]
		r.Variable.Restore(r.Index, r.Value)
	}
}

package search

import (
	"github.com/pipegrid/engine/csp"
	"github.com/pipegrid/engine/pipe"
)

// frame is one level of the search stack: the variable currently being
// tried, the active-domain snapshot captured when the frame was opened,
// the cursor into that snapshot, and the AC-3 removal log produced by the
// cursor's current trial (nil once undone).
type frame struct {
	variable *csp.Variable
	domain   []pipe.Pipe
	cursor   int
	log      []csp.Removal
}

// walker holds all mutable search state: explicit fields instead of
// closures keep the algorithm testable in isolation and let the DFS be
// iterative.
type walker struct {
	model      *csp.CSP
	n          int
	byLocation []*csp.Variable // variable for cell index i, i.e. location i
	opts       Options

	stack     []*frame
	solutions []string
	seen      map[string]bool // canonical strings already recorded
}

// Generate runs the backtracking search over model and returns every
// distinct canonical solution string it finds, in discovery order. Returns ErrNoSolution if the stack empties without
// ever recording one, or ErrCanceled (with whatever partial results had
// already been recorded) if opts' context is done first.
func Generate(model *csp.CSP, opts ...Option) ([]string, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	n := gridSize(len(model.Variables))
	byLocation := make([]*csp.Variable, len(model.Variables))
	for _, v := range model.Variables {
		byLocation[v.Location()] = v
	}

	w := &walker{
		model:      model,
		n:          n,
		byLocation: byLocation,
		opts:       o,
		seen:       make(map[string]bool),
	}
	return w.run()
}

// gridSize returns the smallest n with n*n >= count, which is exactly
// sqrt(count) when count is a perfect square.
func gridSize(count int) int {
	n := 0
	for n*n < count {
		n++
	}
	return n
}

// run is the iterative DFS loop. The all-variables-assigned check lives
// in the tail of tryNext rather than as an independent branch at the top
// of this loop: checking it unconditionally every iteration would re-fire
// on every pass after a solution's cursor advance, since advancing a
// cursor does not by itself unassign anything. A full assignment can only
// newly arise immediately after tryNext's propagate succeeds with no
// unassigned variable remaining, so that is the one place it is checked.
func (w *walker) run() ([]string, error) {
	first := selectVariable(w.model, w.byLocation, w.n, w.opts.rng)
	if first == nil {
		return nil, ErrNoSolution
	}
	w.stack = []*frame{w.newFrame(first)}

	for len(w.stack) > 0 {
		if w.capReached() {
			w.teardown()
			return w.solutions, nil
		}

		select {
		case <-w.opts.Ctx.Done():
			w.teardown()
			return w.solutions, ErrCanceled
		default:
		}

		top := w.stack[len(w.stack)-1]
		if top.cursor >= len(top.domain) {
			w.popExhausted()
			continue
		}
		w.tryNext(top)
	}

	if len(w.solutions) == 0 {
		return nil, ErrNoSolution
	}
	return w.solutions, nil
}

// tryNext advances one trial: undo this frame's previous trial
// (if any), unassign and reassign its variable to the value at its
// cursor, propagate, and either backtrack immediately (wipeout), record a
// solution and backtrack (nothing left to assign), or descend into a new
// frame for the next unassigned variable.
func (w *walker) tryNext(top *frame) {
	releaseFrame(top) // undo this frame's previous trial, if any

	value := top.domain[top.cursor]
	top.variable.Assign(value)

	log, wiped := w.model.Propagate(w.model.ConstraintsFor(top.variable))
	top.log = log
	if wiped {
		csp.Undo(log)
		top.log = nil
		top.cursor++
		return
	}

	next := selectVariable(w.model, w.byLocation, w.n, w.opts.rng)
	if next == nil {
		if w.model.ValidateAll() {
			w.record()
		}
		top.cursor++ // backtrack: try this frame's next value
		return
	}

	w.stack = append(w.stack, w.newFrame(next))
}

// popExhausted discards the top frame once its cursor has run past its
// captured domain. The popped frame's own residual trial, if any, is
// undone too: a frame that recorded a solution on its very last cursor
// value and never pushed a child would otherwise leak that trial's
// pruning. The new top (the "parent") then has its current trial undone
// and its cursor advanced so the caller can try the parent's next value.
func (w *walker) popExhausted() {
	popped := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	releaseFrame(popped)

	if len(w.stack) == 0 {
		return
	}
	parent := w.stack[len(w.stack)-1]
	releaseFrame(parent)
	parent.cursor++
}

// releaseFrame undoes f's outstanding removal log (if any) and unassigns
// its variable, leaving it as if its current trial had never happened.
func releaseFrame(f *frame) {
	if f.log != nil {
		csp.Undo(f.log)
		f.log = nil
	}
	f.variable.Unassign()
}

// teardown discards every remaining frame on the stack, restoring the CSP
// to its pre-search state. Called whenever run returns before the stack
// empties naturally (solution cap reached, cancellation).
func (w *walker) teardown() {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		releaseFrame(top)
	}
}

// newFrame captures a fresh active-domain snapshot for v — optionally
// shuffled in randomized mode — as a new, unopened frame.
func (w *walker) newFrame(v *csp.Variable) *frame {
	domain := append([]pipe.Pipe(nil), v.ActiveDomain()...)
	if w.opts.rng != nil {
		shufflePipes(domain, w.opts.rng)
	}
	return &frame{variable: v, domain: domain}
}

// capReached reports whether the configured solution cap has been hit.
func (w *walker) capReached() bool {
	return w.opts.SolutionCap > 0 && len(w.solutions) >= w.opts.SolutionCap
}

// record encodes the current total assignment as a canonical solution
// string and appends it if not already seen.
func (w *walker) record() {
	s := pipe.Encode(w.currentAssignment())
	if w.seen[s] {
		return
	}
	w.seen[s] = true
	w.solutions = append(w.solutions, s)
}

// currentAssignment reads every variable's assignment in row-major (cell
// index) order, as the canonical encoding requires.
func (w *walker) currentAssignment() []pipe.Pipe {
	out := make([]pipe.Pipe, len(w.byLocation))
	for i, v := range w.byLocation {
		out[i] = v.Assignment()
	}
	return out
}

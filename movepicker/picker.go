package movepicker

import (
	"fmt"
	"sort"

	"github.com/pipegrid/engine/pipe"
)

// Pick encodes board, scores it via oracle, ranks candidates by
// descending score, skips whatever memo already recorded as tried for
// this exact board, and returns the first fresh index — updating memo
// before returning it. memo is keyed by the board's canonical
// fingerprint (pipe.Encode); a nil memo is treated as empty and is not
// populated (callers that want memoization must supply a real map).
//
// Panics if board contains any cell with zero or four openings: that is
// a programmer error, not a runtime condition to recover from.
func Pick(board []pipe.Pipe, oracle Oracle, memo map[string]map[int]bool, opts ...Option) (int, error) {
	validateBoard(board)
	o := resolveOptions(opts)

	if canceled(o) {
		return 0, ErrCanceled
	}

	vector := EncodeBoard(board)
	scores, err := oracle.Score(vector)
	if err != nil {
		return 0, err
	}
	if len(scores) != len(vector) {
		return 0, ErrOracleShape
	}

	if canceled(o) {
		return 0, ErrCanceled
	}

	fingerprint := pipe.Encode(board)
	tried := memo[fingerprint]

	for _, idx := range rankDescending(scores) {
		if tried[idx] {
			continue
		}
		if canceled(o) {
			return 0, ErrCanceled
		}
		if memo != nil {
			if memo[fingerprint] == nil {
				memo[fingerprint] = make(map[int]bool)
			}
			memo[fingerprint][idx] = true
		}
		return idx, nil
	}

	return 0, ErrNoCandidate
}

// validateBoard panics if any cell is "empty" (zero or four openings) —
// such a pipe never appears in a built domain, so its presence means the
// caller handed Pick a board that was never legally assigned.
func validateBoard(board []pipe.Pipe) {
	for i, p := range board {
		if p.Kind() == pipe.KindInvalid {
			panic(fmt.Sprintf("movepicker: Pick called with an empty cell at index %d", i))
		}
	}
}

func canceled(o Options) bool {
	select {
	case <-o.Ctx.Done():
		return true
	default:
		return false
	}
}

// rankDescending returns the indices of scores sorted by descending
// score, ties broken by ascending index for a deterministic, stable
// ranking.
func rankDescending(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})
	return idx
}

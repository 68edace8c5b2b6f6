package grid

// Openings is a 4-tuple of booleans indexed by Direction, true wherever a
// cell exposes an opening on that side. It is the primitive shape shared
// by package pipe's Pipe type; grid stays agnostic of what a Pipe actually
// is so that it has no dependency on the domain-specific packages built
// on top of it.
type Openings [NumDirections]bool

// Connects decides, for a cell with the given openings and its four
// neighbor indices (Up, Right, Down, Left order, Sentinel where a
// direction leaves the grid), which directions form a genuine two-sided
// connection to neighborOpenings.
//
// Connects[d] = center[d] && neighborIdx[d] != Sentinel &&
//
//	neighborOpenings[d][d.Opposite()]
//
// A one-sided opening — center[d] true but the facing neighbor closed on
// the side facing back, or no neighbor at all — is a half-connection and
// is never reported as a connection.
func Connects(center Openings, neighborIdx [NumDirections]int, neighborOpenings [NumDirections]Openings) Openings {
	var out Openings
	for _, d := range Directions {
		if !center[d] {
			continue
		}
		if neighborIdx[d] == Sentinel {
			continue
		}
		out[d] = neighborOpenings[d][d.Opposite()]
	}
	return out
}

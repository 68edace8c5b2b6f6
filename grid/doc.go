// Package grid provides the coordinate primitives shared by every pipes
// puzzle component: direction encoding, index↔(row,col) mapping, neighbor
// lookup with boundary sentinels, and the mutual-opening test used to
// decide whether two adjacent cells actually connect.
//
// What:
//
//   - Direction: the four cardinals Up, Right, Down, Left, fixed in that
//     order because the ordering is part of the external pipe encoding.
//   - Neighbors: maps a cell index and grid size to its four neighbor
//     indices, using Sentinel (-1) wherever a direction would leave the
//     n×n grid. No modular wrap-around is ever performed.
//   - Connects: decides, given a cell's openings and its four neighbors'
//     openings, which sides form a genuine two-sided connection.
//
// Why:
//
//   - Every validator and pruner in package constraints needs the same
//     boundary-aware adjacency test; centralizing it here keeps that logic
//     in exactly one place.
//
// Complexity:
//
//   - Neighbors: O(1). Connects: O(1) (fixed 4 directions).
package grid

// Package tracker follows a player through a maze one move at a time and
// keeps a distance map of the trail that is always a single simple path.
//
// What
//
//   - New(g, source, target) starts a session at source with distance 0.
//   - ApplyMove(delta) steps one cell along an axis. Moves into walls or off
//     the lattice are rejected without touching state. Stepping back onto a
//     recorded cell rolls the trail back to it, erasing the branch just
//     left, so the recorded cells never fork.
//   - Reaching target ends the session with the move count, the trail
//     length and the reconstructed path.
//
// Invariant
//
//	After every call the recorded cells hold 0, 1, …, NextDistance()-1 once
//	each, the highest one is Position(), and solver.Trace from Position()
//	walks back through all of them to source.
//
// A Tracker owns a private copy of the grid; it is not safe for concurrent
// use.
//
// Complexity
//
//   - ApplyMove: O(D) for a plain move, O(k·D) when rolling back k cells.
//   - Trail, Annotated: O(len·D) and O(C) respectively.
//
// Errors
//
//   - ErrNilGrid for a nil grid.
//   - grid.ErrInvalidEndpoint (wrapped) for unusable source or target.
//   - ErrInvalidDelta for anything but a unit step along one axis.
//   - ErrSessionFinished for moves after the target was reached.
package tracker

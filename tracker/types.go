// Package tracker provides the move outcome types and error definitions
// for interactive sessions.
package tracker

import (
	"errors"

	"github.com/au2001-efrei/Labyrinth/grid"
)

// Sentinel errors for tracker sessions.
var (
	// ErrNilGrid is returned when New receives a nil grid.
	ErrNilGrid = errors.New("tracker: grid is nil")

	// ErrInvalidDelta is returned for a move that is not a unit axis step.
	ErrInvalidDelta = errors.New("tracker: delta must be a unit step along one axis")

	// ErrSessionFinished is returned for moves after the target was reached.
	ErrSessionFinished = errors.New("tracker: session already finished")
)

// Status classifies the effect of a move.
type Status uint8

const (
	// Moved extended the trail by one cell.
	Moved Status = iota
	// Rejected hit a wall or the lattice edge; nothing changed.
	Rejected
	// Backtracked stepped onto the trail and erased the branch beyond it.
	Backtracked
	// Finished reached the target and closed the session.
	Finished
)

var statusNames = [...]string{"moved", "rejected", "backtracked", "finished"}

// String returns the lower-case status name.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Outcome reports one ApplyMove call.
//   - Position: where the player stands afterwards.
//   - Distance: the trail distance recorded at Position.
//   - Explored: accepted moves so far, rollbacks included.
//   - Erased: cells dropped from the trail by a rollback.
//   - Length, Path: the final trail, set only when Status is Finished.
type Outcome struct {
	Status   Status
	Position grid.Coord
	Distance int
	Explored int
	Erased   int
	Length   int
	Path     []grid.Coord
}

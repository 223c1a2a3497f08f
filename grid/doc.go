// Package grid holds the cell lattice every maze is built on: an
// N-dimensional (N ≥ 2) rectangular array whose odd coordinates are rooms
// and whose in-between cells are doors that generation may open.
//
// What:
//
//   - Grid wraps a flat []Cell with per-axis extents 2k+1 (k rooms per axis).
//   - Cell is a closed enum: Wall, Open, Entrance, Exit, Path.
//   - Neighbors enumerates passable adjacent cells in a fixed order
//     (axis order, negative before positive). Generation, reconstruction and
//     rollback all break ties with this order.
//   - PlaceEndpoints validates and marks the entrance/exit pair.
//   - ConnectedComponents groups passable cells into islands.
//
// Why:
//
//   - One value type shared by the generator, the solver and the tracker;
//     no process-wide state.
//   - Linear indices keep the hot loops allocation-free; Coord is only the
//     public face of an index.
//
// Layout:
//
//	Axis 0 varies fastest: idx = c[0] + c[1]·ext[0] + c[2]·ext[0]·ext[1] + …
//
//	2×2 rooms (extent 5×5), before generation:
//
//	    # # # # #
//	    # . # . #
//	    # # # # #
//	    # . # . #
//	    # # # # #
//
// Complexity:
//
//   - New:                 O(cells), Memory: O(cells).
//   - Neighbors:           O(dim).
//   - ConnectedComponents: O(cells·dim), Memory: O(cells).
//
// Errors:
//
//   - ErrInvalidDimensions: fewer than two axes, a non-positive room count,
//     or a cell count that overflows int.
//   - ErrOutOfBounds: a coordinate outside the lattice or of the wrong rank.
//   - ErrInvalidEndpoint: an entrance/exit that is not a boundary cell with
//     exactly one passable neighbor, or an invalid pair.
package grid

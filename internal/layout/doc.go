// Package layout implements a flexbox layout engine for character-cell
// grids.
//
// A tree of [Node] values carries layout intent in each node's [Plan].
// [Arrange] resolves the tree against an available size and records the
// result in each node's [Actual]: floating-point positions and sizes, plus
// [Rect] bounds snapped to whole cells.
//
// Nodes remember their measurements between passes. Changing a Plan marks
// the node and its ancestors dirty, and the next Arrange only revisits
// dirty subtrees or subtrees whose constraints changed.
package layout

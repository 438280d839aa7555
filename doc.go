// Package flex is a flexible-box layout engine for terminal user interfaces.
//
// Callers describe a tree of nodes, each with a Plan (direction, sizes,
// flex factors, padding and so on), and call Arrange with the space
// available in character cells. Every node's Actual then holds its size and
// its position relative to its parent, and Bounds returns that box snapped
// to whole cells.
//
//	root := flex.New(
//		flex.WithSize(80, 24),
//		flex.WithDirection(flex.Column),
//		flex.WithChildren(
//			flex.New(flex.WithHeight(1), flex.WithText("title")),
//			flex.New(flex.WithFlexGrow(1)),
//		),
//	)
//	flex.Arrange(root, 80, 24)
//
// Nodes remember their results. Changing a Plan marks the node and its
// ancestors dirty; the next Arrange revisits only what changed.
package flex

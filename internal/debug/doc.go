// Package debug prints layout trees for inspection.
//
// A dump shows each node's name, the parts of its Plan that differ from the
// defaults and, once arranged, its rounded bounds and overflow state.
package debug

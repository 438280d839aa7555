// Package document reads layout trees described in YAML, turns them into
// layout nodes and reports the arranged result.
//
//	width: 80
//	height: 26
//	root:
//	  direction: row
//	  padding: 1
//	  children:
//	    - {name: A, width: 15, height: 4}
//	    - {name: B, width: 4, height: 4, grow: 1}
//	    - {name: label, text: "hello world", max-width: 8}
//
// Sizes accept cells ("12"), percentages ("50%"), "auto" and "undefined".
// Enumerations use the kebab-case names printed by the layout package.
package document

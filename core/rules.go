// SPDX-License-Identifier: MIT
//
// File: rules.go — pure compatibility rule tables.
//
// Contract:
//   - All three functions are pure, total, and symmetric:
//     f(a, b) == f(b, a) for every pair. BlockKindsCanBind is populated
//     symmetrically at init from an unordered pair list, so callers never
//     need to check both argument orders.
//   - No default branch maps "no case matched" to a permissive answer;
//     kinds outside the closed enumerations simply fail every table lookup.

package core

// ConnectionKindsCompatible reports whether two connection-point kinds may
// be bound together: true if either is Bidirectional, else true iff one is
// Input and the other Output.
// Complexity: O(1).
func ConnectionKindsCompatible(a, b ConnectionKind) bool {
	if a == Bidirectional || b == Bidirectional {
		return true
	}

	return (a == Input && b == Output) || (a == Output && b == Input)
}

// AnchorsCompatible reports whether two spatial anchors may face each other:
// a point with no anchor or a Center anchor pairs with anything; otherwise
// only opposite faces pair (Top↔Bottom, Left↔Right).
// Complexity: O(1).
func AnchorsCompatible(a, b Anchor) bool {
	if a == AnchorNone || b == AnchorNone {
		return true
	}
	if a == AnchorCenter || b == AnchorCenter {
		return true
	}

	return (a == AnchorTop && b == AnchorBottom) ||
		(a == AnchorBottom && b == AnchorTop) ||
		(a == AnchorLeft && b == AnchorRight) ||
		(a == AnchorRight && b == AnchorLeft)
}

// bindablePairs lists the unordered block-kind pairs permitted to bind.
// The adjacency is defined once here; bindableKinds mirrors each pair in
// both directions so BlockKindsCanBind is symmetric by construction.
var bindablePairs = [][2]BlockKind{
	{KindPattern, KindPattern},
	{KindPattern, KindColor},
	{KindPattern, KindStructure},
	{KindPattern, KindLoop},
	{KindStructure, KindColumn},
	{KindLoop, KindLoop},
}

// bindableKinds is the symmetric adjacency table derived from bindablePairs.
var bindableKinds = func() map[BlockKind]map[BlockKind]bool {
	t := make(map[BlockKind]map[BlockKind]bool, len(blockKinds))
	for _, k := range blockKinds {
		t[k] = make(map[BlockKind]bool)
	}
	for _, pair := range bindablePairs {
		t[pair[0]][pair[1]] = true
		t[pair[1]][pair[0]] = true
	}

	return t
}()

// BlockKindsCanBind reports whether blocks of the two given kinds may be
// bound to each other, independent of connection-kind compatibility (both
// checks must hold for a bind to succeed). Symmetric by construction.
// Complexity: O(1).
func BlockKindsCanBind(a, b BlockKind) bool {
	return bindableKinds[a][b]
}

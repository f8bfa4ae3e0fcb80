// Package classify derives educational classifications from a
// core.PatternGraph: a complexity tier, a style label, a significance
// score, a structural-balance estimate, and the set of computing concepts
// the pattern exhibits.
//
// What:
//
//   - Tier: 1–5 step function of block count.
//   - Style: first-matching rule over kind composition ("traditional",
//     "repetition", "structured", "colorful", "basic"); rule order is part
//     of the contract.
//   - StructurallyBalanced: a coarse count heuristic (even totals per
//     kind), deliberately not a geometric symmetry proof.
//   - Significance: 0–100 saturating weighted sum over attributes, balance,
//     tier, and well-formedness.
//   - Concepts: kind-presence concept tags plus structural heuristics
//     (nested loops, recursion via cycles, fan-out, shared reuse). Each
//     heuristic is an independently testable predicate over graph shape,
//     not semantic analysis.
//
// Why:
//   - Adaptive-difficulty and story layers consume these labels; they
//     never mutate the graph. Callers should validate first — every
//     function here accepts any graph and classifies what it sees.
//
// All functions are pure reads apart from Significance and Concepts
// refreshing the graph's cached well-formedness cell on demand.
//
// Complexity: all O(V·P) except Concepts, which runs cycle enumeration
// (see traverse.FindCycles).
package classify

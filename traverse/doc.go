// Package traverse implements graph algorithms over a core.PatternGraph:
// undirected reachability and cycle enumeration.
//
// What:
//
//   - Neighbors: the undirected neighbor set of a block — blocks it points
//     at through bound connection points, plus blocks whose points name it
//     as peer. Edges are stored directionally; the traversed relation is
//     effectively undirected.
//   - ConnectedBlocks: depth-first reachable set from a start block, with
//     visited-id tracking so cyclic graphs terminate. Deterministic:
//     neighbors are explored in sorted id order, and the result is the
//     discovery (preorder) sequence.
//   - FindCycles: per-start depth-first walks tracking the current path; a
//     neighbor already on the path (not merely visited before) closes a
//     cycle, recorded as the sub-path from the repeated block onward. The
//     immediate parent is excluded so a single bind is never reported as a
//     two-block cycle. The same cycle may be reported once per start and
//     rotation — the engine does not deduplicate. Canonical rotates a
//     cycle to its lexicographically smallest id for callers that want to
//     deduplicate.
//
// Why:
//   - Reachability feeds the UI's selection and isolation displays; cycle
//     presence feeds concept inference ("recursion").
//
// Errors:
//
//   - ErrGraphNil       — nil graph passed to ConnectedBlocks
//   - ErrStartNotFound  — start block id not in the graph
//
// Complexity:
//
//   - Neighbors:       O(V·P) (inbound references require an arena scan)
//   - ConnectedBlocks: O(V²·P) worst case (neighbor computation per block)
//   - FindCycles:      exponential in the worst case (simple-path
//     enumeration), bounded in practice — patterns hold tens of blocks
package traverse

// Package validate provides stateless validation over a core.PatternGraph:
// a detailed issue report for feedback surfaces and the strict "valid
// pattern" domain check.
//
// What:
//
//   - Report: a full, non-short-circuiting sweep that collects every
//     structural and domain issue (reciprocity breaks, dangling peers,
//     kind mismatches, missing Pattern block, isolated blocks, ...) with
//     severity, category, and location.
//   - ValidPattern: the boolean domain check — well-formed, non-empty, at
//     least two blocks, at least one Pattern-kind block, and no isolated
//     block.
//
// Why:
//   - core.PatternGraph.IsWellFormed answers yes/no cheaply (cached,
//     short-circuiting). Educational feedback needs the opposite trade:
//     visit everything, explain everything. Both run the same rules.
//
// An invalid pattern is normal output, never an error value: every function
// here returns results, not errors.
//
// Complexity: Report and ValidPattern are O(V·P) over blocks and their
// connection points.
package validate

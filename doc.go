// Package patterngraph is an in-memory model for weaving patterns built
// from typed blocks — from core primitives to validation, traversal and
// classification heuristics.
//
// 🚀 What is patterngraph?
//
//	A small, pure-Go library that brings together:
//		• Core primitives: typed blocks, connection points, reciprocal binds
//		• Rule tables: connection-kind, anchor and block-kind compatibility
//		• Validation: cached well-formedness plus full diagnostic reports
//		• Traversal: connected components and cycle enumeration
//		• Classification: tier, style, balance, significance and concepts
//		• Persistence: JSON snapshots and a SQLite-backed pattern store
//
// ✨ Why choose patterngraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – reciprocal edges, sentinel errors, cached validity
//   - Pure Go – no cgo, the SQLite driver included
//   - Composable – packages layer cleanly on the core arena
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/     — blocks, connection points, the graph arena & rule tables
//	validate/ — structured diagnostic reports & pattern-level rules
//	traverse/ — neighbors, connected components, cycle enumeration
//	classify/ — tier, style, balance, significance & concept inference
//	snapshot/ — portable snapshot structs + JSON codec
//	catalog/  — block factories from untrusted records, chain & ring shapes
//	store/    — named snapshot persistence over SQLite
//
// Quick ASCII example:
//
//	    p0───p1
//	    │     │
//	    p3───p2
//
//	represents a ring of four pattern blocks bound out→in.
//
//	go get github.com/weftworks/patterngraph
package patterngraph

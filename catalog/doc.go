// Package catalog is the construction boundary of the pattern graph: it
// turns raw attribute records from external producers (AI content
// generation, a motif catalog, direct user action) into core.Block values,
// and provides deterministic stock topologies for tests and exercises.
//
// What:
//
//   - BlockRecord/PointRecord: the already-structured but untrusted records
//     producers hand over — every kind and anchor is a plain string here.
//   - NewBlock: record → *core.Block. Kind strings go through the core
//     closed-enum parsers (unknown input errors, no silent default); a
//     missing block id is minted as a UUID.
//   - Chain/Ring: stock topology constructors building bound graphs with
//     deterministic ids ("b0".."bN-1"), in the spirit of classic graph
//     generators.
//
// Why:
//   - Core never parses strings and never reaches into ambient state; this
//     package is the single, well-isolated "import from untrusted text"
//     boundary in front of it.
//
// Errors:
//
//   - ErrDuplicatePointID — a record repeats a connection-point id
//   - ErrEmptyPointID     — a record carries a point without an id
//   - ErrTooFewBlocks     — Chain needs ≥2 kinds, Ring needs ≥3
//   - core parse sentinels (ErrUnknownBlockKind, ...) wrapped with record
//     context
package catalog

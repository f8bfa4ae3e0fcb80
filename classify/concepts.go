// SPDX-License-Identifier: MIT
//
// File: concepts.go — educational-concept inference from graph shape.
//
// Contract:
//   - Kind presence maps to a base concept; structural heuristics add
//     refinement tags. Every heuristic is a named predicate so each can be
//     unit-tested with a minimal constructed graph.
//   - These are heuristics over shape, not semantic analysis: "functions"
//     means "a block is reused by several others", nothing more.

package classify

import (
	"sort"

	"github.com/weftworks/patterngraph/core"
	"github.com/weftworks/patterngraph/traverse"
)

// Concept tags.
const (
	ConceptLoops       = "loops"
	ConceptNestedLoops = "nested_loops"
	ConceptStructure   = "structure"
	ConceptVariables   = "variables"
	ConceptSequences   = "sequences"
	ConceptArrays      = "arrays"
	ConceptRecursion   = "recursion"
	ConceptConditional = "conditionals"
	ConceptFunctions   = "functions"
)

// fanOutThreshold is the bound-point count at which a block reads as a
// branching construct.
const fanOutThreshold = 3

// sharedReuseThreshold is the number of distinct referencing blocks at
// which a block reads as a reused component.
const sharedReuseThreshold = 2

// kindConcepts maps block-kind presence to its base concept tag.
var kindConcepts = map[core.BlockKind]string{
	core.KindLoop:      ConceptLoops,
	core.KindStructure: ConceptStructure,
	core.KindColor:     ConceptVariables,
	core.KindPattern:   ConceptSequences,
	core.KindColumn:    ConceptArrays,
}

// Concepts infers the set of computing concepts the pattern exhibits,
// returned sorted for determinism:
//
//   - kind presence: Loop→loops, Structure→structure, Color→variables,
//     Pattern→sequences, Column→arrays
//   - two Loop blocks bound to each other → nested_loops
//   - non-empty cycle set → recursion
//   - a block with ≥3 bound points → conditionals (fan-out)
//   - a block fed by the Output points of ≥2 distinct blocks → functions
func Concepts(g *core.PatternGraph) []string {
	if g == nil || g.BlockCount() == 0 {
		return nil
	}

	set := make(map[string]struct{})
	for _, b := range g.Blocks() {
		if c, ok := kindConcepts[b.Kind]; ok {
			set[c] = struct{}{}
		}
	}

	if HasNestedLoops(g) {
		set[ConceptNestedLoops] = struct{}{}
	}
	if len(traverse.FindCycles(g)) > 0 {
		set[ConceptRecursion] = struct{}{}
	}
	if HasFanOut(g) {
		set[ConceptConditional] = struct{}{}
	}
	if HasSharedReuse(g) {
		set[ConceptFunctions] = struct{}{}
	}

	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// HasNestedLoops reports whether two Loop-kind blocks are bound directly to
// each other.
func HasNestedLoops(g *core.PatternGraph) bool {
	if g == nil {
		return false
	}
	for _, b := range g.Blocks() {
		if b.Kind != core.KindLoop {
			continue
		}
		for _, p := range b.Points {
			if !p.Bound() {
				continue
			}
			if peer, err := g.Block(p.PeerBlockID); err == nil && peer.Kind == core.KindLoop {
				return true
			}
		}
	}

	return false
}

// HasFanOut reports whether some block holds at least fanOutThreshold bound
// connection points — a branching shape read as "conditionals".
func HasFanOut(g *core.PatternGraph) bool {
	if g == nil {
		return false
	}
	for _, b := range g.Blocks() {
		bound := 0
		for _, p := range b.Points {
			if p.Bound() {
				bound++
			}
		}
		if bound >= fanOutThreshold {
			return true
		}
	}

	return false
}

// HasSharedReuse reports whether some block is fed by at least
// sharedReuseThreshold distinct other blocks through their Output points —
// a reused component read as "functions". Counting only driving referrers
// matters: peers are stored reciprocally, so counting every reference would
// tag the middle of any plain chain.
func HasSharedReuse(g *core.PatternGraph) bool {
	if g == nil {
		return false
	}

	referrers := make(map[string]map[string]struct{})
	for _, b := range g.Blocks() {
		for _, p := range b.Points {
			if p.Kind != core.Output || p.PeerBlockID == "" || p.PeerBlockID == b.ID {
				continue
			}
			m, ok := referrers[p.PeerBlockID]
			if !ok {
				m = make(map[string]struct{})
				referrers[p.PeerBlockID] = m
			}
			m[b.ID] = struct{}{}
		}
	}
	for _, m := range referrers {
		if len(m) >= sharedReuseThreshold {
			return true
		}
	}

	return false
}

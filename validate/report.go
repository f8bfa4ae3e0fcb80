// SPDX-License-Identifier: MIT
//
// File: report.go — issue-collecting validation sweep and the strict
// pattern check.
//
// Contract:
//   - Report never short-circuits: every block and point is visited and
//     every issue is collected, so feedback layers can show all problems at
//     once.
//   - Severities: an Error makes the graph not well-formed (or, in the
//     "pattern" category, not a valid pattern); a Warning is advisory and
//     affects neither boolean.

package validate

import (
	"fmt"

	"github.com/weftworks/patterngraph/core"
)

// Issue severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue categories.
const (
	CategoryHalfSet        = "half-set"
	CategoryDangling       = "dangling"
	CategoryReciprocity    = "reciprocity"
	CategoryConnectionKind = "connection-kind"
	CategoryAnchor         = "anchor"
	CategoryBlockKind      = "block-kind"
	CategoryPattern        = "pattern"
	CategoryComposition    = "composition"
)

// Issue is one validation finding, located by block and (where applicable)
// connection point.
type Issue struct {
	Severity string `json:"severity"`
	Category string `json:"category"`
	Message  string `json:"message"`
	BlockID  string `json:"blockId,omitempty"`
	PointID  string `json:"pointId,omitempty"`
}

// Summary is a compact overview of the validated graph.
type Summary struct {
	Blocks   int `json:"blocks"`
	Points   int `json:"points"`
	Binds    int `json:"binds"` // reciprocal pairs, each counted once
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Result is the outcome of a full validation sweep.
type Result struct {
	WellFormed   bool    `json:"wellFormed"`
	ValidPattern bool    `json:"validPattern"`
	Issues       []Issue `json:"issues,omitempty"`
	Summary      Summary `json:"summary"`
}

// Report runs the full validation sweep and collects every issue.
//
// Structural rules (§ well-formedness): for every point with a peer set,
// the peer block and point must exist, the peer must name this point back,
// and the connection-kind, anchor, and block-kind rules must all hold.
// Domain rules (category "pattern"): non-empty, at least two blocks, at
// least one Pattern-kind block, no isolated blocks.
//
// Deterministic: blocks are visited in insertion order, points in their
// fixed list order, so issue order is stable for a given graph.
func Report(g *core.PatternGraph) *Result {
	res := &Result{}
	if g == nil {
		res.WellFormed = true // nothing stated, nothing broken

		return res
	}

	blocks := g.Blocks()
	res.Summary.Blocks = len(blocks)

	structuralErrs := 0
	for _, b := range blocks {
		if len(b.Points) == 0 {
			res.add(Issue{
				Severity: SeverityWarning,
				Category: CategoryComposition,
				Message:  "block has no connection points and can never participate in a bind",
				BlockID:  b.ID,
			})
		}
		for _, p := range b.Points {
			res.Summary.Points++
			structuralErrs += res.checkPoint(g, b, p)
		}
	}
	res.WellFormed = structuralErrs == 0

	patternErrs := res.checkPatternRules(g, blocks)
	res.ValidPattern = res.WellFormed && patternErrs == 0

	return res
}

// ValidPattern reports the strict domain check: well-formed plus the
// pattern rules. Equivalent to Report(g).ValidPattern but uses the cached
// well-formedness on the graph for the structural half.
func ValidPattern(g *core.PatternGraph) bool {
	if g == nil || !g.IsWellFormed() {
		return false
	}
	r := &Result{}

	return r.checkPatternRules(g, g.Blocks()) == 0
}

// checkPoint applies the structural rules to one connection point and
// returns the number of error-severity issues recorded.
func (r *Result) checkPoint(g *core.PatternGraph, b *core.Block, p *core.ConnectionPoint) int {
	if p.PeerBlockID == "" && p.PeerPointID == "" {
		return 0 // free point
	}

	if p.PeerBlockID == "" || p.PeerPointID == "" {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryHalfSet,
			Message:  "peer block id and peer point id must be set together",
			BlockID:  b.ID,
			PointID:  p.ID,
		})

		return 1
	}

	peer, err := g.Block(p.PeerBlockID)
	if err != nil {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryDangling,
			Message:  fmt.Sprintf("peer block %q does not exist", p.PeerBlockID),
			BlockID:  b.ID,
			PointID:  p.ID,
		})

		return 1
	}
	pp, ok := peer.Point(p.PeerPointID)
	if !ok {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryDangling,
			Message:  fmt.Sprintf("peer point %q does not exist on block %q", p.PeerPointID, peer.ID),
			BlockID:  b.ID,
			PointID:  p.ID,
		})

		return 1
	}

	errs := 0
	if pp.PeerBlockID != b.ID || pp.PeerPointID != p.ID {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryReciprocity,
			Message:  fmt.Sprintf("peer %s/%s does not point back", peer.ID, pp.ID),
			BlockID:  b.ID,
			PointID:  p.ID,
		})
		errs++
	} else if b.ID < peer.ID || (b.ID == peer.ID && p.ID < pp.ID) {
		// Count each reciprocal pair once, from its lower endpoint.
		r.Summary.Binds++
	}

	if !core.ConnectionKindsCompatible(p.Kind, pp.Kind) {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryConnectionKind,
			Message:  fmt.Sprintf("connection kinds %s and %s are incompatible", p.Kind, pp.Kind),
			BlockID:  b.ID,
			PointID:  p.ID,
		})
		errs++
	}
	if !core.AnchorsCompatible(p.Anchor, pp.Anchor) {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryAnchor,
			Message:  fmt.Sprintf("anchors %s and %s are incompatible", p.Anchor, pp.Anchor),
			BlockID:  b.ID,
			PointID:  p.ID,
		})
		errs++
	}
	if !core.BlockKindsCanBind(b.Kind, peer.Kind) {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryBlockKind,
			Message:  fmt.Sprintf("block kinds %s and %s cannot bind", b.Kind, peer.Kind),
			BlockID:  b.ID,
			PointID:  p.ID,
		})
		errs++
	}

	return errs
}

// checkPatternRules applies the domain rules and returns the number of
// error-severity issues recorded.
//
// The isolation rule is per-block, not "one connected component": a block
// passes if it has an outgoing peer or some other block's point names it.
func (r *Result) checkPatternRules(g *core.PatternGraph, blocks []*core.Block) int {
	errs := 0

	if len(blocks) == 0 {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryPattern,
			Message:  "pattern is empty",
		})

		return 1
	}
	if len(blocks) < 2 {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryPattern,
			Message:  "pattern needs at least two blocks",
		})
		errs++
	}

	hasPattern := false
	for _, b := range blocks {
		if b.Kind == core.KindPattern {
			hasPattern = true
			break
		}
	}
	if !hasPattern {
		r.add(Issue{
			Severity: SeverityError,
			Category: CategoryPattern,
			Message:  "pattern has no block of the pattern kind",
		})
		errs++
	}

	// A block is connected if it points at someone or someone points at it.
	inbound := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		for _, p := range b.Points {
			if p.PeerBlockID != "" {
				inbound[p.PeerBlockID] = true
			}
		}
	}
	for _, b := range blocks {
		if len(blocks) < 2 {
			break // a single block is already reported above
		}
		connected := inbound[b.ID]
		for _, p := range b.Points {
			if p.Bound() {
				connected = true
				break
			}
		}
		if !connected {
			r.add(Issue{
				Severity: SeverityError,
				Category: CategoryPattern,
				Message:  "block is isolated from the rest of the pattern",
				BlockID:  b.ID,
			})
			errs++
		}
	}

	return errs
}

// add appends an issue and maintains the summary counters.
func (r *Result) add(i Issue) {
	r.Issues = append(r.Issues, i)
	switch i.Severity {
	case SeverityError:
		r.Summary.Errors++
	case SeverityWarning:
		r.Summary.Warnings++
	}
}

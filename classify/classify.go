// SPDX-License-Identifier: MIT
//
// File: classify.go — complexity tier, style label, structural balance,
// and the significance score.
//
// Determinism:
//   - Style rules are evaluated in a fixed order; first match wins. The
//     order is load-bearing: reordering changes classifications.

package classify

import "github.com/weftworks/patterngraph/core"

// Attribute keys read by the scoring heuristics.
const (
	// AttrPattern names the motif an individual block contributes.
	AttrPattern = "pattern"

	// AttrColor names a block's color assignment.
	AttrColor = "color"
)

// Style labels, in rule-evaluation order.
const (
	StyleTraditional = "traditional" // majority of blocks are Pattern-kind
	StyleRepetition  = "repetition"  // contains a Loop-kind block
	StyleStructured  = "structured"  // contains a Column-kind block
	StyleColorful    = "colorful"    // more than one third Color-kind
	StyleBasic       = "basic"       // none of the above
)

// Tier boundaries for the complexity step function.
const (
	tierOneMax   = 3
	tierTwoMax   = 6
	tierThreeMax = 10
	tierFourMax  = 15
)

// Tier maps block count to a 1–5 complexity tier:
// ≤3→1, ≤6→2, ≤10→3, ≤15→4, else 5.
func Tier(g *core.PatternGraph) int {
	n := 0
	if g != nil {
		n = g.BlockCount()
	}
	switch {
	case n <= tierOneMax:
		return 1
	case n <= tierTwoMax:
		return 2
	case n <= tierThreeMax:
		return 3
	case n <= tierFourMax:
		return 4
	default:
		return 5
	}
}

// Style labels the pattern by kind composition. Rules are checked in order
// and the first match wins:
//  1. majority Pattern-kind         → "traditional"
//  2. any Loop-kind block           → "repetition"
//  3. any Column-kind block         → "structured"
//  4. Color-kind > one third        → "colorful"
//  5. otherwise                     → "basic"
func Style(g *core.PatternGraph) string {
	if g == nil || g.BlockCount() == 0 {
		return StyleBasic
	}

	st := g.Stats()
	total := st.BlockCount

	if st.KindCounts[core.KindPattern]*2 > total {
		return StyleTraditional
	}
	if st.KindCounts[core.KindLoop] > 0 {
		return StyleRepetition
	}
	if st.KindCounts[core.KindColumn] > 0 {
		return StyleStructured
	}
	if st.KindCounts[core.KindColor]*3 > total {
		return StyleColorful
	}

	return StyleBasic
}

// StructurallyBalanced reports the coarse balance heuristic: a non-empty,
// even total block count with an even count of blocks per kind. It does
// not inspect connection topology or spatial layout — it estimates, it
// does not prove symmetry.
func StructurallyBalanced(g *core.PatternGraph) bool {
	if g == nil || g.BlockCount() == 0 {
		return false
	}

	st := g.Stats()
	if st.BlockCount%2 != 0 {
		return false
	}
	for _, n := range st.KindCounts {
		if n%2 != 0 {
			return false
		}
	}

	return true
}

// Significance score weights.
const (
	weightPerMotif     = 10 // per distinct "pattern" attribute value
	weightColorPresent = 20 // any block carries a "color" attribute
	weightBalanced     = 15 // StructurallyBalanced holds
	weightPerTier      = 5  // multiplied by Tier
	weightWellFormed   = 20 // the graph is well-formed
	significanceCap    = 100
)

// Significance computes the cultural-significance score, 0–100 saturating:
// distinct motif values ×10, +20 for any color assignment, +15 when
// structurally balanced, +Tier×5, +20 when well-formed.
//
// The well-formedness term restates the general well-formedness check
// rather than adding an independent structural signal; see DESIGN.md for
// why the redundancy is kept.
func Significance(g *core.PatternGraph) int {
	if g == nil {
		return 0
	}

	motifs := make(map[string]struct{})
	colorPresent := false
	for _, b := range g.Blocks() {
		if v, ok := b.Attributes[AttrPattern]; ok && v != "" {
			motifs[v] = struct{}{}
		}
		if v, ok := b.Attributes[AttrColor]; ok && v != "" {
			colorPresent = true
		}
	}

	score := len(motifs) * weightPerMotif
	if colorPresent {
		score += weightColorPresent
	}
	if StructurallyBalanced(g) {
		score += weightBalanced
	}
	score += Tier(g) * weightPerTier
	if g.IsWellFormed() {
		score += weightWellFormed
	}

	if score > significanceCap {
		score = significanceCap
	}

	return score
}

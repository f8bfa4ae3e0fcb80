// SPDX-License-Identifier: MIT
//
// File: errors.go — sentinel errors for the core package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context with %w wrapping.
//   - An invalid *pattern* is never an error: validation queries report it
//     as a normal boolean/report result. Errors below are reserved for
//     mutation preconditions and untrusted-string parsing.

package core

import "errors"

// ErrNilBlock indicates AddBlock received a nil *Block.
var ErrNilBlock = errors.New("core: block is nil")

// ErrEmptyBlockID indicates AddBlock received a block with an empty ID.
var ErrEmptyBlockID = errors.New("core: block ID is empty")

// ErrIDCollision indicates AddBlock received a block whose ID is already
// present in the arena. Collisions are rejected rather than overwritten to
// avoid silent data loss.
var ErrIDCollision = errors.New("core: block ID already present")

// ErrBlockNotFound indicates an operation referenced a block id that is not
// in the arena.
var ErrBlockNotFound = errors.New("core: block not found")

// ErrPointNotFound indicates an operation referenced a connection-point id
// that does not exist on the named block.
var ErrPointNotFound = errors.New("core: connection point not found")

// ErrSelfBind indicates Bind was asked to bind a connection point to itself.
var ErrSelfBind = errors.New("core: cannot bind a point to itself")

// ErrPointBound indicates Bind targeted a point that already has a peer.
// Unbind first; points hold at most one peer.
var ErrPointBound = errors.New("core: connection point already bound")

// ErrConnectionKindMismatch indicates the two points' connection kinds are
// not compatible under ConnectionKindsCompatible.
var ErrConnectionKindMismatch = errors.New("core: incompatible connection kinds")

// ErrAnchorMismatch indicates the two points' anchors are not compatible
// under AnchorsCompatible.
var ErrAnchorMismatch = errors.New("core: incompatible anchors")

// ErrBlockKindMismatch indicates the two blocks' kinds are not bindable
// under BlockKindsCanBind.
var ErrBlockKindMismatch = errors.New("core: incompatible block kinds")

// ErrNotPeers indicates Unbind targeted two points that are not currently
// mutual peers of each other.
var ErrNotPeers = errors.New("core: points are not bound to each other")

// ErrUnknownBlockKind indicates ParseBlockKind received a string outside the
// closed BlockKind enumeration.
var ErrUnknownBlockKind = errors.New("core: unknown block kind")

// ErrUnknownConnectionKind indicates ParseConnectionKind received a string
// outside the closed ConnectionKind enumeration.
var ErrUnknownConnectionKind = errors.New("core: unknown connection kind")

// ErrUnknownAnchor indicates ParseAnchor received a string outside the
// closed Anchor enumeration.
var ErrUnknownAnchor = errors.New("core: unknown anchor")

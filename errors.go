// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dial

import "errors"

// The error taxonomy of the frame contract. Violations are
// caller-contract bugs surfaced immediately: the offending frame is
// rejected whole, with no partial output and no silent fallback.
// Sites wrap these sentinels with fmt.Errorf("%w: ...") so callers
// can match with errors.Is while still seeing the specifics.
var (
	// ErrConfiguration reports malformed host input: an instance
	// ordinal out of range, a non-finite matrix, an invalid size, or
	// overlay state without geometry.
	ErrConfiguration = errors.New("dial: configuration error")

	// ErrOrdering reports a frame-contract ordering violation: a pass
	// consumed shared state (camera block, tick table) before the host
	// populated it, or passes ran out of sequence.
	ErrOrdering = errors.New("dial: ordering error")

	// ErrResource reports a missing or unusable external resource,
	// such as an absent face texture or a failed GPU allocation.
	ErrResource = errors.New("dial: resource error")
)

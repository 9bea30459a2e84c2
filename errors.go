// SPDX-License-Identifier: MIT
package mazegrid

import (
	"errors"

	"github.com/katalvlaran/mazegrid/rankdescent"
)

var (
	// ErrInvalidDimension is returned when width or height is <= 0, rejected
	// before any allocation (spec §7).
	ErrInvalidDimension = errors.New("mazegrid: width and height must be positive")

	// ErrOutOfRange is returned when index >= count(width,height). It aliases
	// rankdescent.ErrOutOfRange so callers can match it with errors.Is
	// regardless of which layer surfaced it.
	ErrOutOfRange = rankdescent.ErrOutOfRange

	// ErrInvariant names the contract-violation kind (non-zero Bareiss
	// division remainder, band access outside the stored band, asymmetric
	// access). No code in this module returns or panics with it: an inexact
	// division panics with bigint.ErrInexactDivision, and an out-of-band
	// bandmatrix read resolves to the shared zero cell.
	ErrInvariant = errors.New("mazegrid: internal invariant violated")
)

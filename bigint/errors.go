// SPDX-License-Identifier: MIT
package bigint

import "errors"

// ErrInexactDivision marks a contract violation: DivExact was called with
// operands whose quotient has a non-zero remainder. The Bareiss algorithm
// guarantees this never happens for correctly-maintained matrix state, so
// this error is only ever seen wrapped in a panic — it is not a recoverable
// runtime condition (spec §7: "any nonzero remainder indicates a logic bug
// and is a fatal contract violation").
var ErrInexactDivision = errors.New("bigint: inexact division")

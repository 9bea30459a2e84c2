// SPDX-License-Identifier: MIT
package rankdescent

import "errors"

// ErrOutOfRange indicates the supplied rank was >= count(width,height):
// after descending through every cell, the residual index was non-zero
// (spec §6: "OUT_OF_RANGE is returned when index >= count(...), detected
// by residual index != 0 at end of descent").
var ErrOutOfRange = errors.New("rankdescent: index out of range")

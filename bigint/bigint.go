// SPDX-License-Identifier: MIT
package bigint

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// fftThreshold is the operand bit length above which Mul switches from
// math/big's schoolbook/Karatsuba multiply to bigfft's FFT convolution.
// Below this size FFT setup overhead outweighs the asymptotic win; above
// it, Bareiss pivots on large grids (W·H into the hundreds of thousands,
// spec §5) grow wide enough that the crossover pays off.
const fftThreshold = 1 << 12 // 4096 bits

// Int is a mutable arbitrary-precision signed integer cell. The zero value
// is 0 and ready to use; New returns a pointer to one. Every arithmetic method writes its
// result into the receiver and returns the receiver, so chains like
// z.Mul(a, b).DivExact(z, c) read left to right without intermediate
// allocation of the result holder itself.
type Int struct {
	v   big.Int
	tmp *big.Int // lazily allocated scratch for AddMul/SubMul; reused across calls
}

// New returns a new Int initialised to zero.
func New() *Int {
	return &Int{}
}

// scratch returns the lazily-allocated temporary used by AddMul/SubMul,
// allocating it on first use so Int values that never need it (most cells,
// most of the time) stay allocation-free.
func (z *Int) scratch() *big.Int {
	if z.tmp == nil {
		z.tmp = new(big.Int)
	}
	return z.tmp
}

// SetZero resets z to 0 and returns z.
func (z *Int) SetZero() *Int {
	z.v.SetInt64(0)
	return z
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	z.v.SetInt64(x)
	return z
}

// Set copies x into z and returns z.
func (z *Int) Set(x *Int) *Int {
	z.v.Set(&x.v)
	return z
}

// SetString sets z to the value of s, interpreted in base 10, and returns z
// and true on success; on failure it returns nil and false, and the value
// of z is undefined — the CLI's entry point for parsing a rank off the command
// line (spec §6's index argument).
func (z *Int) SetString(s string) (*Int, bool) {
	_, ok := z.v.SetString(s, 10)
	if !ok {
		return nil, false
	}
	return z, true
}

// IsZero reports whether z == 0.
func (z *Int) IsZero() bool {
	return z.v.Sign() == 0
}

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z *Int) Sign() int {
	return z.v.Sign()
}

// BitLen returns the length of the absolute value of z in bits.
func (z *Int) BitLen() int {
	return z.v.BitLen()
}

// String renders z in base 10.
func (z *Int) String() string {
	return z.v.String()
}

// Cmp compares z and x, returning -1, 0, or +1.
func (z *Int) Cmp(x *Int) int {
	return z.v.Cmp(&x.v)
}

// CmpInt64 compares z against the small integer x.
func (z *Int) CmpInt64(x int64) int {
	var other big.Int
	other.SetInt64(x)
	return z.v.Cmp(&other)
}

// Add sets z = x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	z.v.Add(&x.v, &y.v)
	return z
}

// Sub sets z = x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	z.v.Sub(&x.v, &y.v)
	return z
}

// AddSmall sets z = x + y for a small non-negative y (spec §3's
// "add/sub-small-unsigned").
func (z *Int) AddSmall(x *Int, y uint64) *Int {
	var delta big.Int
	delta.SetUint64(y)
	z.v.Add(&x.v, &delta)
	return z
}

// SubSmall sets z = x - y for a small non-negative y.
func (z *Int) SubSmall(x *Int, y uint64) *Int {
	var delta big.Int
	delta.SetUint64(y)
	z.v.Sub(&x.v, &delta)
	return z
}

// Mul sets z = x * y and returns z, routing through bigfft's FFT multiply
// once both operands are large enough for that to pay off.
func (z *Int) Mul(x, y *Int) *Int {
	mulBig(&z.v, &x.v, &y.v)
	return z
}

// AddMul sets z += x*y (fastcount's dense matrix multiply accumulates each
// cell with this fused form, reusing z's scratch for the product).
func (z *Int) AddMul(x, y *Int) *Int {
	t := z.scratch()
	mulBig(t, &x.v, &y.v)
	z.v.Add(&z.v, t)
	return z
}

// SubMul sets z -= x*y (spec §4.3's "mij -= mik*mjk").
func (z *Int) SubMul(x, y *Int) *Int {
	t := z.scratch()
	mulBig(t, &x.v, &y.v)
	z.v.Sub(&z.v, t)
	return z
}

// DivExact sets z = x / y, where y is guaranteed to divide x with zero
// remainder (the Bareiss identity). It panics if the remainder is
// non-zero: per spec §7, that is a fatal contract violation, never a
// recoverable error.
func (z *Int) DivExact(x, y *Int) *Int {
	var q, r big.Int
	q.QuoRem(&x.v, &y.v, &r)
	if r.Sign() != 0 {
		panic(ErrInexactDivision)
	}
	z.v.Set(&q)
	return z
}

// mulBig multiplies x and y into z, using bigfft's FFT convolution for
// operands above fftThreshold bits and math/big's own multiply otherwise.
func mulBig(z, x, y *big.Int) {
	if x.BitLen() > fftThreshold && y.BitLen() > fftThreshold {
		z.Set(bigfft.Mul(x, y))
		return
	}
	z.Mul(x, y)
}

package svnum_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svlang/svnum"
)

func TestPowBasics(t *testing.T) {
	r := mustParse(t, "32'd10").Pow(mustParse(t, "32'd3"))
	assert.Equal(t, svnum.Logic1, r.Eq(mustParse(t, "32'd1000")))

	assert.Equal(t, svnum.Logic1, svnum.FromUint64(8, 3, false).Pow(svnum.FromUint64(8, 5, false)).Eq(svnum.FromUint64(8, 243, false)))

	// wraps modulo 2^width
	assert.True(t, svnum.FromUint64(8, 2, false).Pow(svnum.FromUint64(8, 9, false)).IsZero())
}

func TestPowSpecialCases(t *testing.T) {
	zero := svnum.Zero(8, true)
	one := svnum.FromUint64(8, 1, true)

	assert.Equal(t, svnum.Logic1, zero.Pow(svnum.Zero(8, true)).Eq(one))
	assert.True(t, zero.Pow(svnum.FromUint64(8, 3, true)).IsZero())
	assert.True(t, zero.Pow(svnum.FromInt64(8, -3, true)).HasUnknown())

	assert.Equal(t, svnum.Logic1, one.Pow(svnum.FromUint64(8, 200, true)).Eq(one))
	assert.Equal(t, svnum.Logic1, svnum.FromUint64(8, 77, true).Pow(svnum.Zero(8, true)).Eq(one))
}

func TestPowSignedNegative(t *testing.T) {
	minusOne := svnum.FromInt64(8, -1, true)
	assert.Equal(t, svnum.Logic1, minusOne.Pow(svnum.FromUint64(8, 5, true)).Eq(minusOne))
	assert.Equal(t, svnum.Logic1, minusOne.Pow(svnum.FromUint64(8, 4, true)).Eq(svnum.FromInt64(8, 1, true)))

	// negative exponent with |base| > 1 is zero
	assert.True(t, svnum.FromInt64(8, 3, true).Pow(svnum.FromInt64(8, -2, true)).IsZero())

	// negative base follows the exponent's parity
	assert.Equal(t, svnum.Logic1, svnum.FromInt64(8, -2, true).Pow(svnum.FromInt64(8, 3, true)).Eq(svnum.FromInt64(8, -8, true)))
	assert.Equal(t, svnum.Logic1, svnum.FromInt64(8, -2, true).Pow(svnum.FromInt64(8, 4, true)).Eq(svnum.FromInt64(8, 16, true)))
}

func TestPowUnknown(t *testing.T) {
	r := mustParse(t, "8'b1x").Pow(svnum.FromUint64(8, 2, false))
	assert.True(t, r.HasUnknown())
	assert.Equal(t, svnum.LogicX, r.Bit(7))
}

func TestPowWide(t *testing.T) {
	two := svnum.FromUint64(128, 2, false)
	r := two.Pow(svnum.FromUint64(32, 100, false))
	assert.Equal(t, "128'h1"+strings.Repeat("0", 25), r.Text(svnum.Hex))

	// 3^80 is 127 bits: it fills two words of a three-word value
	r = svnum.FromUint64(192, 3, false).Pow(svnum.FromUint64(32, 80, false))
	assert.Equal(t, "192'h6f32f1ef8b18a2bc3cea59789c79d441", r.Text(svnum.Hex))
}

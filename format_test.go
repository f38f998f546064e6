package svnum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svlang/svnum"
)

func TestStringDefaultBase(t *testing.T) {
	// narrow and unknown values render binary, signed values decimal,
	// the rest hex
	assert.Equal(t, "4'b101", mustParse(t, "4'b101").String())
	assert.Equal(t, "8'b1x01", mustParse(t, "8'b1x01").String())
	assert.Equal(t, "32'hdeadbeef", mustParse(t, "32'hdeadbeef").String())
	assert.Equal(t, "16'habc", mustParse(t, "16'habc").String())
	assert.Equal(t, "42", mustParse(t, "42").String())
	assert.Equal(t, "16'sd300", mustParse(t, "16'sd300").String())
}

func TestTextBases(t *testing.T) {
	v := mustParse(t, "32'hdeadbeef")
	assert.Equal(t, "32'hdeadbeef", v.Text(svnum.Hex))
	assert.Equal(t, "32'o33653337357", v.Text(svnum.Octal))
	assert.Equal(t, "32'd3735928559", v.Text(svnum.Decimal))
	assert.Equal(t, "32'b11011110101011011011111011101111", v.Text(svnum.Binary))
}

func TestTextNegative(t *testing.T) {
	assert.Equal(t, "-8'sd128", svnum.FromInt64(8, -128, true).Text(svnum.Decimal))
	assert.Equal(t, "-16'sd300", svnum.FromInt64(16, -300, true).Text(svnum.Decimal))
	assert.Equal(t, "-42", svnum.FromInt64(32, -42, true).Text(svnum.Decimal))

	// hex renders the absolute value after the sign
	assert.Equal(t, "-8'sh1", svnum.FromInt64(8, -1, true).Text(svnum.Hex))
}

func TestTextZero(t *testing.T) {
	assert.Equal(t, "8'h0", svnum.Zero(8, false).Text(svnum.Hex))
	assert.Equal(t, "8'd0", svnum.Zero(8, false).Text(svnum.Decimal))
	assert.Equal(t, "0", svnum.Zero(32, true).Text(svnum.Decimal))
}

func TestTextUnknownDigits(t *testing.T) {
	assert.Equal(t, "4'b10xz", mustParse(t, "4'b10xz").Text(svnum.Binary))
	assert.Equal(t, "16'hxxxx", mustParse(t, "16'hx").Text(svnum.Hex))
	assert.Equal(t, "8'dx", mustParse(t, "8'dx").Text(svnum.Decimal))
	assert.Equal(t, "8'dz", mustParse(t, "8'dz").Text(svnum.Decimal))

	// a digit group mixing known and unknown bits renders x or z by its
	// value bits
	assert.Equal(t, "8'hxf", mustParse(t, "8'bxxxx1111").Text(svnum.Hex))
	assert.Equal(t, "8'hzf", mustParse(t, "8'bzzzz1111").Text(svnum.Hex))
	assert.Equal(t, "8'hzf", mustParse(t, "8'bz0z01111").Text(svnum.Hex))
}

func TestAppendText(t *testing.T) {
	buf := []byte("value=")
	buf = mustParse(t, "8'hff").AppendText(buf, svnum.Hex)
	assert.Equal(t, "value=8'hff", string(buf))
}

func TestRoundTrips(t *testing.T) {
	for _, lit := range []string{
		"32'hdeadbeef",
		"8'b10xz",
		"16'shff",
		"-16'sd300",
		"72'd100000000000000000000",
		"128'hfeedfacecafebeef0123456789abcdef",
		"7'b1010101",
		"12'o4567",
	} {
		v := mustParse(t, lit)
		for _, base := range []svnum.LiteralBase{svnum.Binary, svnum.Octal, svnum.Hex} {
			if v.HasUnknown() && base != svnum.Binary {
				continue
			}
			back := mustParse(t, v.Text(base))
			assert.True(t, svnum.ExactlyEqual(v, back), "%s via base %d", lit, base)
			assert.Equal(t, v.Width(), back.Width(), lit)
			assert.Equal(t, v.IsSigned(), back.IsSigned(), lit)
		}
		if !v.HasUnknown() {
			assert.True(t, svnum.ExactlyEqual(v, mustParse(t, v.Text(svnum.Decimal))), lit)
		}
	}
}

func TestUnknownRoundTripAlignedBases(t *testing.T) {
	// x/z digits survive a round trip in the base they are aligned to
	for lit, base := range map[string]svnum.LiteralBase{
		"12'ox7z":  svnum.Octal,
		"16'hxz0f": svnum.Hex,
	} {
		v := mustParse(t, lit)
		assert.True(t, svnum.ExactlyEqual(v, mustParse(t, v.Text(base))), lit)
		assert.True(t, svnum.ExactlyEqual(v, mustParse(t, v.Text(svnum.Binary))), lit)
	}
}

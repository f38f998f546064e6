package svnum_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svlang/svnum"
)

func TestParseFourState(t *testing.T) {
	v := mustParse(t, "4'b10xz")
	assert.Equal(t, uint32(4), v.Width())
	assert.False(t, v.IsSigned())
	assert.True(t, v.HasUnknown())
	assert.Equal(t, svnum.LogicZ, v.Bit(0))
	assert.Equal(t, svnum.LogicX, v.Bit(1))
	assert.Equal(t, svnum.Logic0, v.Bit(2))
	assert.Equal(t, svnum.Logic1, v.Bit(3))
	assert.Equal(t, "4'b10xz", v.Text(svnum.Binary))
}

func TestParseDefaultsTo32BitSignedDecimal(t *testing.T) {
	v := mustParse(t, "123")
	assert.Equal(t, uint32(32), v.Width())
	assert.True(t, v.IsSigned())
	i, ok := v.AsInt32()
	require.True(t, ok)
	assert.Equal(t, int32(123), i)

	n := mustParse(t, "-5")
	i, ok = n.AsInt32()
	require.True(t, ok)
	assert.Equal(t, int32(-5), i)
	assert.Equal(t, "-5", n.String())
}

func TestParseSizedLiterals(t *testing.T) {
	v := mustParse(t, "16'shff")
	assert.Equal(t, uint32(16), v.Width())
	assert.True(t, v.IsSigned())
	i, ok := v.AsInt32()
	require.True(t, ok)
	assert.Equal(t, int32(255), i)

	v = mustParse(t, "12'o777")
	u, ok := v.AsUint32()
	require.True(t, ok)
	assert.Equal(t, uint32(0o777), u)

	v = mustParse(t, "8'B1010_1010")
	u, ok = v.AsUint32()
	require.True(t, ok)
	assert.Equal(t, uint32(0xaa), u)

	// ? is a synonym for z outside base ten
	v = mustParse(t, "4'b1?")
	assert.Equal(t, svnum.LogicZ, v.Bit(0))
}

func TestParseUnderscoreInSizeField(t *testing.T) {
	v := mustParse(t, "1_6'hff")
	assert.Equal(t, uint32(16), v.Width())
	u, ok := v.AsUint32()
	require.True(t, ok)
	assert.Equal(t, uint32(0xff), u)
}

func TestParseNegativeSized(t *testing.T) {
	v := mustParse(t, "-8'sd5")
	i, ok := v.AsInt32()
	require.True(t, ok)
	assert.Equal(t, int32(-5), i)

	// negation happens after assembly, even for unsigned literals
	v = mustParse(t, "-8'd1")
	u, ok := v.AsUint32()
	require.True(t, ok)
	assert.Equal(t, uint32(0xff), u)
}

func TestParseMSBExtension(t *testing.T) {
	v := mustParse(t, "16'hx")
	assert.True(t, v.HasUnknown())
	for i := int32(0); i < 16; i++ {
		assert.Equal(t, svnum.LogicX, v.Bit(i))
	}

	v = mustParse(t, "16'bz1")
	assert.Equal(t, svnum.Logic1, v.Bit(0))
	for i := int32(1); i < 16; i++ {
		assert.Equal(t, svnum.LogicZ, v.Bit(i))
	}

	// a known top digit leaves the high bits zero
	v = mustParse(t, "16'b1x")
	assert.Equal(t, svnum.LogicX, v.Bit(0))
	assert.Equal(t, svnum.Logic1, v.Bit(1))
	assert.Equal(t, svnum.Logic0, v.Bit(15))
}

func TestParseWideUnknowns(t *testing.T) {
	v := mustParse(t, "128'hx")
	assert.Equal(t, svnum.LogicX, v.Bit(127))

	v = mustParse(t, "100'dz")
	for i := int32(0); i < 100; i++ {
		assert.Equal(t, svnum.LogicZ, v.Bit(i))
	}
}

func TestParseTruncatesFromLeft(t *testing.T) {
	v := mustParse(t, "4'h123")
	u, ok := v.AsUint32()
	require.True(t, ok)
	assert.Equal(t, uint32(3), u)

	v = mustParse(t, "8'b111100001111")
	u, ok = v.AsUint32()
	require.True(t, ok)
	assert.Equal(t, uint32(0x0f), u)
}

func TestParseWideDecimal(t *testing.T) {
	v := mustParse(t, "72'd100000000000000000000")
	assert.Equal(t, "72'd100000000000000000000", v.Text(svnum.Decimal))
	assert.Equal(t, "72'h56bc75e2d63100000", v.Text(svnum.Hex))
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		input string
		kind  error
	}{
		{"", svnum.ErrEmptyLiteral},
		{"-", svnum.ErrMissingDigits},
		{"+", svnum.ErrMissingDigits},
		{"8'", svnum.ErrMissingDigits},
		{"8's", svnum.ErrMissingDigits},
		{"8'd", svnum.ErrMissingDigits},
		{"8'q3", svnum.ErrBadBase},
		{"8'b2", svnum.ErrBadDigit},
		{"8'o8", svnum.ErrBadDigit},
		{"8'd1x", svnum.ErrDecimalUnknown},
		{"8'hg", svnum.ErrBadDigit},
		{"abc", svnum.ErrBadSize},
		{"0'd1", svnum.ErrBadSize},
		{"99999999999999999'd1", svnum.ErrBadSize},
		{"8g'd1", svnum.ErrBadSize},
	} {
		_, err := svnum.Parse(tc.input)
		require.Error(t, err, "input %q", tc.input)
		assert.True(t, errors.Is(err, tc.kind), "input %q: got %v", tc.input, err)
	}
}

func TestFromDigits(t *testing.T) {
	v, err := svnum.FromDigits(8, svnum.Hex, false, false, []svnum.Logic{svnum.LogicDigit(0xa), svnum.LogicDigit(0x5)})
	require.NoError(t, err)
	u, ok := v.AsUint32()
	require.True(t, ok)
	assert.Equal(t, uint32(0xa5), u)

	_, err = svnum.FromDigits(8, svnum.Binary, false, false, nil)
	assert.True(t, errors.Is(err, svnum.ErrMissingDigits))

	_, err = svnum.FromDigits(0, svnum.Binary, false, false, []svnum.Logic{svnum.Logic1})
	assert.True(t, errors.Is(err, svnum.ErrBadSize))
}

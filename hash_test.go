package svnum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svlang/svnum"
)

func TestHashCaseEqualValuesMatch(t *testing.T) {
	a := mustParse(t, "8'b10xz1010")
	b := mustParse(t, "8'b10xz1010")
	assert.True(t, svnum.ExactlyEqual(a, b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := svnum.FromUint64(128, 12345, false)
	d := mustParse(t, "128'd12345")
	assert.True(t, svnum.ExactlyEqual(c, d))
	assert.Equal(t, c.Hash(), d.Hash())
}

func TestHashDistinguishesPlanes(t *testing.T) {
	// x and z differ only in the value plane under a set shadow bit
	a := mustParse(t, "8'b10xx1010")
	b := mustParse(t, "8'b10xz1010")
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestHashSensitivity(t *testing.T) {
	v := svnum.FromUint64(16, 42, false)
	assert.NotEqual(t, v.Hash(), svnum.FromUint64(16, 43, false).Hash())
	assert.NotEqual(t, v.Hash(), svnum.FromUint64(17, 42, false).Hash())
	assert.NotEqual(t, v.Hash(), svnum.FromUint64(16, 42, true).Hash())
}

func TestHashIgnoresStorageClass(t *testing.T) {
	// a canonicalized two-state result hashes like a born-two-state one
	known := svnum.FillX(8, false).And(svnum.Zero(8, false))
	assert.Equal(t, svnum.Zero(8, false).Hash(), known.Hash())
}

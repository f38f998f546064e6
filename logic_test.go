package svnum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svlang/svnum"
)

func TestLogicRunes(t *testing.T) {
	assert.Equal(t, "0", svnum.Logic0.String())
	assert.Equal(t, "1", svnum.Logic1.String())
	assert.Equal(t, "x", svnum.LogicX.String())
	assert.Equal(t, "z", svnum.LogicZ.String())
}

func TestLogicUnknown(t *testing.T) {
	assert.False(t, svnum.Logic0.IsUnknown())
	assert.False(t, svnum.Logic1.IsUnknown())
	assert.True(t, svnum.LogicX.IsUnknown())
	assert.True(t, svnum.LogicZ.IsUnknown())

	assert.True(t, svnum.Logic1.IsTrue())
	assert.False(t, svnum.Logic0.IsTrue())
	assert.False(t, svnum.LogicX.IsTrue())
	assert.False(t, svnum.LogicZ.IsTrue())
}

func TestLogicNot(t *testing.T) {
	assert.Equal(t, svnum.Logic1, svnum.Logic0.Not())
	assert.Equal(t, svnum.Logic0, svnum.Logic1.Not())
	assert.Equal(t, svnum.LogicX, svnum.LogicX.Not())
	assert.Equal(t, svnum.LogicX, svnum.LogicZ.Not())
}

func TestLogicAndOrXor(t *testing.T) {
	// a known zero dominates and, a known one dominates or
	assert.Equal(t, svnum.Logic0, svnum.Logic0.And(svnum.LogicX))
	assert.Equal(t, svnum.Logic0, svnum.LogicZ.And(svnum.Logic0))
	assert.Equal(t, svnum.Logic1, svnum.Logic1.And(svnum.Logic1))
	assert.Equal(t, svnum.LogicX, svnum.Logic1.And(svnum.LogicX))

	assert.Equal(t, svnum.Logic1, svnum.Logic1.Or(svnum.LogicX))
	assert.Equal(t, svnum.Logic1, svnum.LogicZ.Or(svnum.Logic1))
	assert.Equal(t, svnum.Logic0, svnum.Logic0.Or(svnum.Logic0))
	assert.Equal(t, svnum.LogicX, svnum.Logic0.Or(svnum.LogicZ))

	assert.Equal(t, svnum.Logic1, svnum.Logic1.Xor(svnum.Logic0))
	assert.Equal(t, svnum.Logic0, svnum.Logic1.Xor(svnum.Logic1))
	assert.Equal(t, svnum.LogicX, svnum.Logic1.Xor(svnum.LogicZ))
}

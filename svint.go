package svnum

import "math/bits"

// MaxBits is the largest width an SVInt can have.
const MaxBits = 1<<24 - 1

// SVInt is a fixed-width four-state integer. Every bit is 0, 1, x or z;
// the width is arbitrary up to MaxBits and the value may be interpreted
// as two's complement via the signed flag.
//
// Values up to 64 bits with no unknown bits live inline in a single
// word. Wider or unknown values use a heap buffer of ceil(width/64)
// words holding the value plane; when unknown bits are present the
// buffer doubles and the second half is the shadow plane (a set shadow
// bit marks the position unknown: value 0 means x, value 1 means z).
//
// Operations never mutate their receiver; each returns a fresh value,
// so sharing and self-application (x = x.Mul(x)) are safe.
type SVInt struct {
	val         uint64
	pVal        []uint64
	width       uint32
	signFlag    bool
	unknownFlag bool
}

// FromUint64 builds a width-bit value from the low bits of value. When
// signed and value has its sign bit set, widths above 64 sign extend.
func FromUint64(width uint32, value uint64, signed bool) SVInt {
	if width <= bitsPerWord {
		r := SVInt{width: width, signFlag: signed, val: value}
		r.clearUnusedBits()
		return r
	}
	r := allocZeroed(width, signed, false)
	r.pVal[0] = value
	if signed && int64(value) < 0 {
		for i := 1; i < len(r.pVal); i++ {
			r.pVal[i] = ^uint64(0)
		}
	}
	r.clearUnusedBits()
	return r
}

// FromInt64 builds a width-bit value from value, two's complement
// encoding negatives regardless of the signed flag.
func FromInt64(width uint32, value int64, signed bool) SVInt {
	if width <= bitsPerWord {
		r := SVInt{width: width, signFlag: signed, val: uint64(value)}
		r.clearUnusedBits()
		return r
	}
	r := allocZeroed(width, signed, false)
	r.pVal[0] = uint64(value)
	if value < 0 {
		for i := 1; i < len(r.pVal); i++ {
			r.pVal[i] = ^uint64(0)
		}
	}
	r.clearUnusedBits()
	return r
}

// FromLogic builds a width-1 value from a single four-state bit.
func FromLogic(bit Logic) SVInt {
	if !bit.IsUnknown() {
		return SVInt{width: 1, val: uint64(bit & 1)}
	}
	r := SVInt{width: 1, unknownFlag: true, pVal: make([]uint64, 2)}
	r.pVal[1] = 1
	if bit&LogicZ != 0 {
		r.pVal[0] = 1
	}
	return r
}

func Zero(width uint32, signed bool) SVInt {
	return FromUint64(width, 0, signed)
}

func AllOnes(width uint32, signed bool) SVInt {
	if width <= bitsPerWord {
		r := SVInt{width: width, signFlag: signed, val: ^uint64(0)}
		r.clearUnusedBits()
		return r
	}
	r := allocZeroed(width, signed, false)
	for i := range r.pVal {
		r.pVal[i] = ^uint64(0)
	}
	r.clearUnusedBits()
	return r
}

// FillX builds an all-x value.
func FillX(width uint32, signed bool) SVInt {
	r := allocZeroed(width, signed, true)
	vw := numWords(width, false)
	for i := vw; i < 2*vw; i++ {
		r.pVal[i] = ^uint64(0)
	}
	r.clearUnusedBits()
	return r
}

// FillZ builds an all-z value.
func FillZ(width uint32, signed bool) SVInt {
	r := allocZeroed(width, signed, true)
	for i := range r.pVal {
		r.pVal[i] = ^uint64(0)
	}
	r.clearUnusedBits()
	return r
}

func allocZeroed(width uint32, signed, unknown bool) SVInt {
	return SVInt{
		width:       width,
		signFlag:    signed,
		unknownFlag: unknown,
		pVal:        make([]uint64, numWords(width, unknown)),
	}
}

func (v SVInt) Width() uint32    { return v.width }
func (v SVInt) IsSigned() bool   { return v.signFlag }
func (v SVInt) HasUnknown() bool { return v.unknownFlag }

// AsSigned returns the value reinterpreted with the given signedness;
// the bits are unchanged.
func (v SVInt) AsSigned(signed bool) SVInt {
	v.signFlag = signed
	return v
}

// Clone deep-copies the value, giving the copy its own buffer.
func (v SVInt) Clone() SVInt {
	if v.pVal != nil {
		v.pVal = append([]uint64(nil), v.pVal...)
	}
	return v
}

func (v SVInt) isSingleWord() bool {
	return v.width <= bitsPerWord && !v.unknownFlag
}

// rawData returns a read-only view of the storage words.
func (v SVInt) rawData() []uint64 {
	if v.isSingleWord() {
		return []uint64{v.val}
	}
	return v.pVal
}

func (v SVInt) word0() uint64 {
	if v.isSingleWord() {
		return v.val
	}
	return v.pVal[0]
}

// planes returns the value plane and, if present, the shadow plane.
func (v SVInt) planes() (value, shadow []uint64) {
	if v.isSingleWord() {
		return []uint64{v.val}, nil
	}
	vw := numWords(v.width, false)
	if v.unknownFlag {
		return v.pVal[:vw], v.pVal[vw:]
	}
	return v.pVal, nil
}

func wordOf(s []uint64, i int) uint64 {
	if s == nil {
		return 0
	}
	return s[i]
}

func (v *SVInt) clearUnusedBits() {
	wordBits := v.width % bitsPerWord
	if wordBits == 0 {
		return
	}
	mask := ^uint64(0) >> (bitsPerWord - wordBits)
	if v.isSingleWord() {
		v.val &= mask
		return
	}
	vw := numWords(v.width, false)
	v.pVal[vw-1] &= mask
	if v.unknownFlag {
		v.pVal[len(v.pVal)-1] &= mask
	}
}

// checkUnknown downgrades to two-state storage when the shadow plane
// has gone all zero.
func (v *SVInt) checkUnknown() {
	if !v.unknownFlag {
		return
	}
	vw := numWords(v.width, false)
	if !allWordsZero(v.pVal[vw:]) {
		return
	}
	v.unknownFlag = false
	if v.width <= bitsPerWord {
		v.val = v.pVal[0]
		v.pVal = nil
	} else {
		v.pVal = v.pVal[:vw:vw]
	}
}

// IsZero reports whether the value is fully known and zero.
func (v SVInt) IsZero() bool {
	return !v.unknownFlag && v.isZero()
}

func (v SVInt) isZero() bool {
	if v.isSingleWord() {
		return v.val == 0
	}
	return allWordsZero(v.pVal[:numWords(v.width, false)])
}

// IsNegative reports whether the sign bit is a known 1.
func (v SVInt) IsNegative() bool {
	return v.Bit(int32(v.width) - 1).IsTrue()
}

func (v SVInt) isOdd() bool {
	return v.word0()&1 != 0
}

func (v SVInt) countLeadingZeros() uint32 {
	bitsInMsw := v.width % bitsPerWord
	if bitsInMsw == 0 {
		bitsInMsw = bitsPerWord
	}
	if v.isSingleWord() {
		if v.val == 0 {
			return v.width
		}
		return uint32(bits.LeadingZeros64(v.val)) - (bitsPerWord - bitsInMsw)
	}
	vw := numWords(v.width, false)
	if v.pVal[vw-1] != 0 {
		return uint32(bits.LeadingZeros64(v.pVal[vw-1])) - (bitsPerWord - bitsInMsw)
	}
	count := bitsInMsw
	for i := vw - 2; i >= 0; i-- {
		if v.pVal[i] == 0 {
			count += bitsPerWord
		} else {
			count += uint32(bits.LeadingZeros64(v.pVal[i]))
			break
		}
	}
	return count
}

func (v SVInt) countLeadingOnes() uint32 {
	bitsInMsw := v.width % bitsPerWord
	var shift uint32
	if bitsInMsw == 0 {
		bitsInMsw = bitsPerWord
	} else {
		shift = bitsPerWord - bitsInMsw
	}
	if v.isSingleWord() {
		return uint32(bits.LeadingZeros64(^(v.val << shift)))
	}
	vw := numWords(v.width, false)
	i := vw - 1
	count := uint32(bits.LeadingZeros64(^(v.pVal[i] << shift)))
	if count == bitsInMsw {
		for i--; i >= 0; i-- {
			if v.pVal[i] == ^uint64(0) {
				count += bitsPerWord
			} else {
				count += uint32(bits.LeadingZeros64(^v.pVal[i]))
				break
			}
		}
	}
	return count
}

func (v SVInt) countPopulation() uint32 {
	if v.isSingleWord() {
		return uint32(bits.OnesCount64(v.val))
	}
	var count uint32
	for _, w := range v.pVal[:numWords(v.width, false)] {
		count += uint32(bits.OnesCount64(w))
	}
	return count
}

// activeBits is the number of significant value bits; unknown-free
// values only.
func (v SVInt) activeBits() uint32 {
	return v.width - v.countLeadingZeros()
}

func wordsForBits(b uint32) int {
	if b == 0 {
		return 0
	}
	return whichWord(b-1) + 1
}

// SignExtend widens the value to the given width replicating the top
// bit (both planes when unknown bits are present). No-op when width is
// not larger.
func SignExtend(v SVInt, width uint32) SVInt {
	if width <= v.width {
		return v
	}
	if width <= bitsPerWord && !v.unknownFlag {
		newVal := v.val << (bitsPerWord - v.width)
		newVal = uint64(int64(newVal) >> (width - v.width))
		return SVInt{width: width, signFlag: v.signFlag, val: newVal >> (bitsPerWord - width)}
	}
	result := allocZeroed(width, v.signFlag, v.unknownFlag)
	oldWords := numWords(v.width, false)
	newWords := numWords(width, false)
	signExtendCopy(result.pVal, v.rawData(), v.width, oldWords, newWords)
	if v.unknownFlag {
		signExtendCopy(result.pVal[newWords:], v.pVal[oldWords:], v.width, oldWords, newWords)
	}
	result.clearUnusedBits()
	return result
}

// ZeroExtend widens the value to the given width with zero fill.
func ZeroExtend(v SVInt, width uint32) SVInt {
	if width <= v.width {
		return v
	}
	if width <= bitsPerWord && !v.unknownFlag {
		return SVInt{width: width, signFlag: v.signFlag, val: v.val}
	}
	result := allocZeroed(width, v.signFlag, v.unknownFlag)
	oldWords := numWords(v.width, false)
	copy(result.pVal, v.rawData()[:oldWords])
	if v.unknownFlag {
		newWords := numWords(width, false)
		copy(result.pVal[newWords:], v.pVal[oldWords:])
	}
	return result
}

func Extend(v SVInt, width uint32, signed bool) SVInt {
	if signed {
		return SignExtend(v, width)
	}
	return ZeroExtend(v, width)
}

// harmonize widens the narrower operand per the language rules: sign
// extension only when both operands are signed. The result signedness
// of the surrounding operation is the AND of the operand flags.
func harmonize(a, b SVInt) (SVInt, SVInt, bool) {
	bothSigned := a.signFlag && b.signFlag
	if a.width < b.width {
		a = Extend(a, b.width, bothSigned)
	} else if b.width < a.width {
		b = Extend(b, a.width, bothSigned)
	}
	return a, b, bothSigned
}

func (v SVInt) Add(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if v.unknownFlag || rhs.unknownFlag {
		return FillX(v.width, bothSigned)
	}
	if v.isSingleWord() {
		r := SVInt{width: v.width, signFlag: bothSigned, val: v.val + rhs.val}
		r.clearUnusedBits()
		return r
	}
	result := allocZeroed(v.width, bothSigned, false)
	addGeneral(result.pVal, v.pVal, rhs.pVal, len(result.pVal))
	result.clearUnusedBits()
	return result
}

func (v SVInt) Sub(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if v.unknownFlag || rhs.unknownFlag {
		return FillX(v.width, bothSigned)
	}
	if v.isSingleWord() {
		r := SVInt{width: v.width, signFlag: bothSigned, val: v.val - rhs.val}
		r.clearUnusedBits()
		return r
	}
	result := allocZeroed(v.width, bothSigned, false)
	subGeneral(result.pVal, v.pVal, rhs.pVal, len(result.pVal))
	result.clearUnusedBits()
	return result
}

func (v SVInt) Mul(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if v.unknownFlag || rhs.unknownFlag {
		return FillX(v.width, bothSigned)
	}
	if v.isSingleWord() {
		r := SVInt{width: v.width, signFlag: bothSigned, val: v.val * rhs.val}
		r.clearUnusedBits()
		return r
	}
	result := allocZeroed(v.width, bothSigned, false)
	lhsWords := wordsForBits(v.activeBits())
	rhsWords := wordsForBits(rhs.activeBits())
	if lhsWords == 0 || rhsWords == 0 {
		return result
	}
	scratch := make([]uint64, lhsWords+rhsWords)
	mulWords(scratch, v.pVal, lhsWords, rhs.pVal, rhsWords)
	copy(result.pVal, scratch)
	result.clearUnusedBits()
	return result
}

// Neg is unary minus.
func (v SVInt) Neg() SVInt {
	if v.unknownFlag {
		return FillX(v.width, v.signFlag)
	}
	return Zero(v.width, v.signFlag).Sub(v)
}

// Inc adds one; any unknown bit collapses the result to all x.
func (v SVInt) Inc() SVInt {
	if v.unknownFlag {
		return FillX(v.width, v.signFlag)
	}
	if v.isSingleWord() {
		r := SVInt{width: v.width, signFlag: v.signFlag, val: v.val + 1}
		r.clearUnusedBits()
		return r
	}
	result := allocZeroed(v.width, v.signFlag, false)
	addOne(result.pVal, v.pVal, len(result.pVal), 1)
	result.clearUnusedBits()
	return result
}

// Dec subtracts one; any unknown bit collapses the result to all x.
func (v SVInt) Dec() SVInt {
	if v.unknownFlag {
		return FillX(v.width, v.signFlag)
	}
	if v.isSingleWord() {
		r := SVInt{width: v.width, signFlag: v.signFlag, val: v.val - 1}
		r.clearUnusedBits()
		return r
	}
	result := allocZeroed(v.width, v.signFlag, false)
	subOne(result.pVal, v.pVal, len(result.pVal), 1)
	result.clearUnusedBits()
	return result
}

// Not is bitwise negation; z bits come out as x.
func (v SVInt) Not() SVInt {
	if v.isSingleWord() {
		r := SVInt{width: v.width, signFlag: v.signFlag, val: ^v.val}
		r.clearUnusedBits()
		return r
	}
	result := allocZeroed(v.width, v.signFlag, v.unknownFlag)
	vw := numWords(v.width, false)
	for i := 0; i < vw; i++ {
		result.pVal[i] = ^v.pVal[i]
	}
	if v.unknownFlag {
		copy(result.pVal[vw:], v.pVal[vw:])
		for i := 0; i < vw; i++ {
			result.pVal[i] &^= result.pVal[i+vw]
		}
	}
	result.clearUnusedBits()
	return result
}

func (v SVInt) And(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if !v.unknownFlag && !rhs.unknownFlag {
		if v.isSingleWord() {
			return SVInt{width: v.width, signFlag: bothSigned, val: v.val & rhs.val}
		}
		result := allocZeroed(v.width, bothSigned, false)
		for i := range result.pVal {
			result.pVal[i] = v.pVal[i] & rhs.pVal[i]
		}
		return result
	}
	vw := numWords(v.width, false)
	result := allocZeroed(v.width, bothSigned, true)
	av, au := v.planes()
	bv, bu := rhs.planes()
	for i := 0; i < vw; i++ {
		ua, ub := wordOf(au, i), wordOf(bu, i)
		va, vb := av[i], bv[i]
		shadow := (ua | ub) & (ua | va) & (ub | vb)
		result.pVal[i+vw] = shadow
		result.pVal[i] = ^shadow & va & vb
	}
	result.clearUnusedBits()
	result.checkUnknown()
	return result
}

func (v SVInt) Or(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if !v.unknownFlag && !rhs.unknownFlag {
		if v.isSingleWord() {
			return SVInt{width: v.width, signFlag: bothSigned, val: v.val | rhs.val}
		}
		result := allocZeroed(v.width, bothSigned, false)
		for i := range result.pVal {
			result.pVal[i] = v.pVal[i] | rhs.pVal[i]
		}
		return result
	}
	vw := numWords(v.width, false)
	result := allocZeroed(v.width, bothSigned, true)
	av, au := v.planes()
	bv, bu := rhs.planes()
	for i := 0; i < vw; i++ {
		ua, ub := wordOf(au, i), wordOf(bu, i)
		va, vb := av[i], bv[i]
		shadow := (ua & (ub | ^vb)) | (^va & ub)
		result.pVal[i+vw] = shadow
		result.pVal[i] = ^shadow & (va | vb)
	}
	result.clearUnusedBits()
	result.checkUnknown()
	return result
}

func (v SVInt) Xor(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if !v.unknownFlag && !rhs.unknownFlag {
		if v.isSingleWord() {
			return SVInt{width: v.width, signFlag: bothSigned, val: v.val ^ rhs.val}
		}
		result := allocZeroed(v.width, bothSigned, false)
		for i := range result.pVal {
			result.pVal[i] = v.pVal[i] ^ rhs.pVal[i]
		}
		return result
	}
	vw := numWords(v.width, false)
	result := allocZeroed(v.width, bothSigned, true)
	av, au := v.planes()
	bv, bu := rhs.planes()
	for i := 0; i < vw; i++ {
		ua, ub := wordOf(au, i), wordOf(bu, i)
		shadow := ua | ub
		result.pVal[i+vw] = shadow
		result.pVal[i] = ^shadow & (av[i] ^ bv[i])
	}
	result.clearUnusedBits()
	result.checkUnknown()
	return result
}

// Xnor is bitwise equivalence (~^).
func (v SVInt) Xnor(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if !v.unknownFlag && !rhs.unknownFlag {
		if v.isSingleWord() {
			r := SVInt{width: v.width, signFlag: bothSigned, val: ^(v.val ^ rhs.val)}
			r.clearUnusedBits()
			return r
		}
		result := allocZeroed(v.width, bothSigned, false)
		for i := range result.pVal {
			result.pVal[i] = ^(v.pVal[i] ^ rhs.pVal[i])
		}
		result.clearUnusedBits()
		return result
	}
	vw := numWords(v.width, false)
	result := allocZeroed(v.width, bothSigned, true)
	av, au := v.planes()
	bv, bu := rhs.planes()
	for i := 0; i < vw; i++ {
		ua, ub := wordOf(au, i), wordOf(bu, i)
		shadow := ua | ub
		result.pVal[i+vw] = shadow
		result.pVal[i] = ^shadow & ^(av[i] ^ bv[i])
	}
	result.clearUnusedBits()
	result.checkUnknown()
	return result
}

func (v SVInt) ReductionAnd() Logic {
	if v.unknownFlag {
		return LogicX
	}
	bitsInMsw := v.width % bitsPerWord
	mask := ^uint64(0)
	if bitsInMsw != 0 {
		mask = uint64(1)<<bitsInMsw - 1
	}
	if v.isSingleWord() {
		return LogicFrom(v.val == mask)
	}
	vw := numWords(v.width, false)
	for i := 0; i < vw-1; i++ {
		if v.pVal[i] != ^uint64(0) {
			return Logic0
		}
	}
	return LogicFrom(v.pVal[vw-1] == mask)
}

func (v SVInt) ReductionOr() Logic {
	if v.unknownFlag {
		return LogicX
	}
	return LogicFrom(!v.isZero())
}

func (v SVInt) ReductionXor() Logic {
	if v.unknownFlag {
		return LogicX
	}
	return LogicFrom(v.countPopulation()%2 == 1)
}

// shiftAmount converts a shift operand; ok is false when the amount is
// unknown, negative or at least width.
func (v SVInt) shiftAmount(width uint32) (uint32, bool) {
	amt, ok := v.AsUint32()
	if !ok || amt >= width {
		return 0, false
	}
	return amt, true
}

// Shl is the logical left shift by a four-state amount.
func (v SVInt) Shl(rhs SVInt) SVInt {
	if rhs.unknownFlag {
		return FillX(v.width, v.signFlag)
	}
	amt, ok := rhs.shiftAmount(v.width)
	if !ok {
		return Zero(v.width, v.signFlag)
	}
	return v.ShlBy(amt)
}

func (v SVInt) ShlBy(amount uint32) SVInt {
	if amount == 0 {
		return v
	}
	if amount >= v.width {
		return Zero(v.width, v.signFlag)
	}
	if v.isSingleWord() {
		r := SVInt{width: v.width, signFlag: v.signFlag, val: v.val << amount}
		r.clearUnusedBits()
		return r
	}
	result := allocZeroed(v.width, v.signFlag, v.unknownFlag)
	vw := uint32(numWords(v.width, false))
	wordShift := amount % bitsPerWord
	offset := amount / bitsPerWord
	shlFar(result.pVal, v.pVal, wordShift, offset, 0, vw)
	if v.unknownFlag {
		shlFar(result.pVal, v.pVal, wordShift, offset, vw, vw)
	}
	result.clearUnusedBits()
	result.checkUnknown()
	return result
}

// Lshr is the logical right shift by a four-state amount.
func (v SVInt) Lshr(rhs SVInt) SVInt {
	if rhs.unknownFlag {
		return FillX(v.width, v.signFlag)
	}
	amt, ok := rhs.shiftAmount(v.width)
	if !ok {
		return Zero(v.width, v.signFlag)
	}
	return v.LshrBy(amt)
}

func (v SVInt) LshrBy(amount uint32) SVInt {
	if amount == 0 {
		return v
	}
	if amount >= v.width {
		return Zero(v.width, v.signFlag)
	}
	if v.isSingleWord() {
		return SVInt{width: v.width, signFlag: v.signFlag, val: v.val >> amount}
	}
	result := allocZeroed(v.width, v.signFlag, v.unknownFlag)
	vw := uint32(numWords(v.width, false))
	if amount < bitsPerWord && !v.unknownFlag {
		lshrNear(result.pVal, v.pVal, int(vw), amount)
	} else {
		wordShift := amount % bitsPerWord
		offset := amount / bitsPerWord
		lshrFar(result.pVal, v.pVal, wordShift, offset, 0, vw)
		if v.unknownFlag {
			lshrFar(result.pVal, v.pVal, wordShift, offset, vw, vw)
		}
	}
	result.checkUnknown()
	return result
}

// Ashr is the arithmetic right shift; for unsigned receivers it is the
// same as Lshr.
func (v SVInt) Ashr(rhs SVInt) SVInt {
	if !v.signFlag {
		return v.Lshr(rhs)
	}
	if rhs.unknownFlag {
		return FillX(v.width, v.signFlag)
	}
	amt, ok := rhs.shiftAmount(v.width)
	if !ok {
		return v.ashrSaturated()
	}
	return v.AshrBy(amt)
}

func (v SVInt) AshrBy(amount uint32) SVInt {
	if !v.signFlag {
		return v.LshrBy(amount)
	}
	if amount == 0 {
		return v
	}
	if amount >= v.width {
		return v.ashrSaturated()
	}
	contracted := v.width - amount
	tmp := v.LshrBy(amount).shrinkTo(contracted)
	return SignExtend(tmp, v.width)
}

// ashrSaturated is the result of shifting every value bit out: zero for
// known non-negative values, all ones otherwise.
func (v SVInt) ashrSaturated() SVInt {
	if v.Ge(Zero(v.width, true)).IsTrue() {
		return Zero(v.width, v.signFlag)
	}
	return AllOnes(v.width, v.signFlag)
}

// shrinkTo reinterprets the value at a smaller width. Bits at and above
// the new width must already be zero in both planes.
func (v SVInt) shrinkTo(width uint32) SVInt {
	if width == v.width {
		return v
	}
	r := SVInt{width: width, signFlag: v.signFlag, unknownFlag: v.unknownFlag}
	if v.isSingleWord() {
		r.val = v.val
		return r
	}
	if width <= bitsPerWord && !v.unknownFlag {
		r.val = v.pVal[0]
		return r
	}
	vw := numWords(v.width, false)
	nw := numWords(width, false)
	r.pVal = make([]uint64, numWords(width, v.unknownFlag))
	copy(r.pVal[:nw], v.pVal[:nw])
	if v.unknownFlag {
		copy(r.pVal[nw:], v.pVal[vw:vw+nw])
	}
	return r
}

// unsignedLt compares equal-width unknown-free values as unsigned.
func (v SVInt) unsignedLt(rhs SVInt) bool {
	if v.isSingleWord() && rhs.isSingleWord() {
		return v.val < rhs.val
	}
	a1, a2 := v.activeBits(), rhs.activeBits()
	if a1 != a2 {
		return a1 < a2
	}
	if a1 == 0 {
		return false
	}
	av, bv := v.rawData(), rhs.rawData()
	for i := whichWord(a1 - 1); i >= 0; i-- {
		if av[i] != bv[i] {
			return av[i] < bv[i]
		}
	}
	return false
}

// Lt returns x when either operand has unknown bits. Signed order is
// used only when both operands are signed; equal-width negatives are
// compared directly on their unsigned representation, which matches
// two's-complement order and avoids negating the most negative value.
func (v SVInt) Lt(rhs SVInt) Logic {
	if v.unknownFlag || rhs.unknownFlag {
		return LogicX
	}
	v, rhs, bothSigned := harmonize(v, rhs)
	if bothSigned {
		ln, rn := v.IsNegative(), rhs.IsNegative()
		if ln != rn {
			return LogicFrom(ln)
		}
	}
	return LogicFrom(v.unsignedLt(rhs))
}

func (v SVInt) Gt(rhs SVInt) Logic {
	return rhs.Lt(v)
}

func (v SVInt) Le(rhs SVInt) Logic {
	return v.Gt(rhs).Not()
}

func (v SVInt) Ge(rhs SVInt) Logic {
	return v.Lt(rhs).Not()
}

// Eq is the language equality operator: x when either side has any
// unknown bit.
func (v SVInt) Eq(rhs SVInt) Logic {
	if v.unknownFlag || rhs.unknownFlag {
		return LogicX
	}
	v, rhs, _ = harmonize(v, rhs)
	if v.isSingleWord() {
		return LogicFrom(v.val == rhs.val)
	}
	a1, a2 := v.activeBits(), rhs.activeBits()
	if a1 != a2 {
		return Logic0
	}
	if a1 == 0 {
		return Logic1
	}
	for i := 0; i <= whichWord(a1-1); i++ {
		if v.pVal[i] != rhs.pVal[i] {
			return Logic0
		}
	}
	return Logic1
}

func (v SVInt) Ne(rhs SVInt) Logic {
	return v.Eq(rhs).Not()
}

// ExactlyEqual is the case equality operator (===): bit identical
// including x and z positions.
func ExactlyEqual(lhs, rhs SVInt) bool {
	if !lhs.unknownFlag && !rhs.unknownFlag {
		return lhs.Eq(rhs).IsTrue()
	}
	if !lhs.unknownFlag || !rhs.unknownFlag {
		return false
	}
	lhs, rhs, _ = harmonize(lhs, rhs)
	for i, w := range lhs.pVal {
		if w != rhs.pVal[i] {
			return false
		}
	}
	return true
}

// WildcardEqual is the ==? operator: x/z bits of rhs are don't-cares,
// while any unknown bit on the lhs makes the result x.
func WildcardEqual(lhs, rhs SVInt) Logic {
	if !lhs.unknownFlag && !rhs.unknownFlag {
		return lhs.Eq(rhs)
	}
	if lhs.unknownFlag {
		return LogicX
	}
	lhs, rhs, _ = harmonize(lhs, rhs)
	lv, _ := lhs.planes()
	rv, ru := rhs.planes()
	for i := range lv {
		mask := ^wordOf(ru, i)
		if lv[i]&mask != rv[i]&mask {
			return Logic0
		}
	}
	return Logic1
}

// Bit returns the four-state bit at the given position, or x when the
// index is out of range.
func (v SVInt) Bit(index int32) Logic {
	if index < 0 || uint32(index) >= v.width {
		return LogicX
	}
	bi := uint32(index)
	var word uint64
	if v.isSingleWord() {
		word = v.val
	} else {
		word = v.pVal[whichWord(bi)]
	}
	bit := word&maskBit(bi) != 0
	if !v.unknownFlag {
		return LogicFrom(bit)
	}
	if v.pVal[whichWord(bi)+numWords(v.width, false)]&maskBit(bi) == 0 {
		return LogicFrom(bit)
	}
	if bit {
		return LogicZ
	}
	return LogicX
}

// BitSel indexes by a four-state value; an unknown or unrepresentable
// index yields x.
func (v SVInt) BitSel(index SVInt) Logic {
	i, ok := index.AsInt32()
	if !ok {
		return LogicX
	}
	return v.Bit(i)
}

// PartSelect extracts bits [msb:lsb]. Positions outside the value read
// as x; msb must not be less than lsb.
func (v SVInt) PartSelect(msb, lsb int32) SVInt {
	if msb < lsb {
		panic("svnum: part select with msb < lsb")
	}
	selectWidth := uint32(msb - lsb + 1)
	if msb < 0 || lsb >= int32(v.width) {
		return FillX(selectWidth, v.signFlag)
	}

	var frontOOB, backOOB uint32
	if lsb < 0 {
		frontOOB = uint32(-lsb)
	}
	if uint32(msb) >= v.width {
		backOOB = uint32(msb) - v.width + 1
	}
	anyOOB := frontOOB != 0 || backOOB != 0

	if v.isSingleWord() && !anyOOB {
		mask := ^uint64(0)
		if selectWidth < bitsPerWord {
			mask = uint64(1)<<selectWidth - 1
		}
		return SVInt{width: selectWidth, signFlag: v.signFlag, val: v.val >> uint32(lsb) & mask}
	}

	validSelectWidth := selectWidth - frontOOB - backOOB
	srcLsb := uint32(0)
	if frontOOB == 0 {
		srcLsb = uint32(lsb)
	}

	resultUnknown := v.unknownFlag || anyOOB
	vw := numWords(v.width, false)
	rw := numWords(selectWidth, false)
	if selectWidth <= bitsPerWord && !resultUnknown {
		var tmp [1]uint64
		bitcpy(tmp[:], 0, v.rawData(), validSelectWidth, srcLsb)
		return SVInt{width: selectWidth, signFlag: v.signFlag, val: tmp[0]}
	}

	result := allocZeroed(selectWidth, v.signFlag, resultUnknown)
	bitcpy(result.pVal[:rw], frontOOB, v.rawData(), validSelectWidth, srcLsb)
	if v.unknownFlag {
		bitcpy(result.pVal[rw:], frontOOB, v.pVal[vw:], validSelectWidth, srcLsb)
	}
	if anyOOB {
		shadow := result.pVal[rw:]
		setBits(shadow, 0, frontOOB)
		setBits(shadow, validSelectWidth+frontOOB, backOOB)
	}
	result.clearUnusedBits()
	result.checkUnknown()
	return result
}

// Concat joins the operands with the first occupying the most
// significant bits. The result is unsigned.
func Concat(operands ...SVInt) SVInt {
	if len(operands) == 0 {
		return SVInt{width: 0}
	}

	var totalWidth uint32
	unknown := false
	for i := range operands {
		totalWidth += operands[i].width
		unknown = unknown || operands[i].unknownFlag
	}
	if totalWidth == 0 {
		return SVInt{width: 0}
	}

	if numWords(totalWidth, unknown) == 1 {
		var tmp [1]uint64
		var offset uint32
		for i := len(operands) - 1; i >= 0; i-- {
			op := &operands[i]
			if op.width == 0 {
				continue
			}
			src := [1]uint64{op.val}
			bitcpy(tmp[:], offset, src[:], op.width, 0)
			offset += op.width
		}
		return SVInt{width: totalWidth, val: tmp[0]}
	}

	result := allocZeroed(totalWidth, false, unknown)
	vw := numWords(totalWidth, false)
	var offset uint32
	for i := len(operands) - 1; i >= 0; i-- {
		op := &operands[i]
		if op.width == 0 {
			continue
		}
		bitcpy(result.pVal[:vw], offset, op.rawData(), op.width, 0)
		if op.unknownFlag {
			opvw := numWords(op.width, false)
			bitcpy(result.pVal[vw:], offset, op.pVal[opvw:], op.width, 0)
		}
		offset += op.width
	}
	return result
}

// Replicate concatenates count copies of the value.
func Replicate(v SVInt, count uint32) SVInt {
	ops := make([]SVInt, count)
	for i := range ops {
		ops[i] = v
	}
	return Concat(ops...)
}

// Conditional is the ?: merge. A defined condition picks one operand;
// an unknown condition keeps the agreeing bits and makes every
// disagreeing or unknown bit x.
func Conditional(cond, lhs, rhs SVInt) SVInt {
	lhs, rhs, bothSigned := harmonize(lhs, rhs)

	c := cond.ReductionOr()
	if !c.IsUnknown() {
		if c.IsTrue() {
			return lhs.AsSigned(bothSigned)
		}
		return rhs.AsSigned(bothSigned)
	}

	if ExactlyEqual(lhs, rhs) {
		return rhs.AsSigned(bothSigned)
	}

	vw := numWords(lhs.width, false)
	result := allocZeroed(lhs.width, bothSigned, true)
	lv, lu := lhs.planes()
	rv, ru := rhs.planes()
	for i := 0; i < vw; i++ {
		shadow := wordOf(lu, i) | wordOf(ru, i) | (lv[i] ^ rv[i])
		result.pVal[i+vw] = shadow
		result.pVal[i] = ^shadow & lv[i] & rv[i]
	}
	result.clearUnusedBits()
	return result
}

// AsUint64 converts to a host unsigned word; ok is false for unknown,
// negative, or too-wide values.
func (v SVInt) AsUint64() (uint64, bool) {
	if v.unknownFlag {
		return 0, false
	}
	if v.signFlag && v.IsNegative() {
		return 0, false
	}
	if v.activeBits() > bitsPerWord {
		return 0, false
	}
	return v.word0(), true
}

// AsInt64 converts to a host signed word; ok is false for unknown or
// out-of-range values.
func (v SVInt) AsInt64() (int64, bool) {
	if v.unknownFlag {
		return 0, false
	}
	if v.signFlag && v.IsNegative() {
		// all words above the first must be pure sign fill
		if v.width > bitsPerWord {
			if v.countLeadingOnes() < v.width-(bitsPerWord-1) {
				return 0, false
			}
			return int64(v.pVal[0]), true
		}
		shift := bitsPerWord - v.width
		return int64(v.val<<shift) >> shift, true
	}
	if v.activeBits() > bitsPerWord-1 {
		return 0, false
	}
	return int64(v.word0()), true
}

func (v SVInt) AsUint32() (uint32, bool) {
	u, ok := v.AsUint64()
	if !ok || u > uint64(^uint32(0)) {
		return 0, false
	}
	return uint32(u), true
}

func (v SVInt) AsInt32() (int32, bool) {
	i, ok := v.AsInt64()
	if !ok || i > int64(^uint32(0)>>1) || i < -int64(1)<<31 {
		return 0, false
	}
	return int32(i), true
}

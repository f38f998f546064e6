package svnum

// Div implements four-state division: any unknown bit or a zero
// divisor yields all x. Signed division runs on magnitudes and flips
// the quotient sign.
func (v SVInt) Div(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if v.unknownFlag || rhs.unknownFlag || rhs.isZero() {
		return FillX(v.width, bothSigned)
	}
	if bothSigned {
		if v.IsNegative() {
			if rhs.IsNegative() {
				return udiv(v.Neg(), rhs.Neg(), true)
			}
			return udiv(v.Neg(), rhs, true).Neg()
		}
		if rhs.IsNegative() {
			return udiv(v, rhs.Neg(), true).Neg()
		}
	}
	return udiv(v, rhs, bothSigned)
}

// Rem implements four-state modulo; the remainder takes the sign of
// the dividend.
func (v SVInt) Rem(rhs SVInt) SVInt {
	v, rhs, bothSigned := harmonize(v, rhs)
	if v.unknownFlag || rhs.unknownFlag || rhs.isZero() {
		return FillX(v.width, bothSigned)
	}
	if bothSigned {
		if v.IsNegative() {
			if rhs.IsNegative() {
				return urem(v.Neg(), rhs.Neg(), true).Neg()
			}
			return urem(v.Neg(), rhs, true).Neg()
		}
		if rhs.IsNegative() {
			return urem(v, rhs.Neg(), true)
		}
	}
	return urem(v, rhs, bothSigned)
}

// fromWordUnsigned builds a result word without sign extension; the
// divide paths produce magnitudes whose top word may have bit 63 set.
func fromWordUnsigned(width uint32, value uint64, signed bool) SVInt {
	r := FromUint64(width, value, false)
	r.signFlag = signed
	return r
}

// udiv divides equal-width, unknown-free, non-negative values; rhs is
// known nonzero.
func udiv(lhs, rhs SVInt, bothSigned bool) SVInt {
	if lhs.isSingleWord() {
		return fromWordUnsigned(lhs.width, lhs.val/rhs.val, bothSigned)
	}

	lhsWords := wordsForBits(lhs.activeBits())
	rhsWords := wordsForBits(rhs.activeBits())
	if lhsWords == 0 {
		return fromWordUnsigned(lhs.width, 0, bothSigned)
	}
	if lhsWords < rhsWords || lhs.unsignedLt(rhs) {
		return fromWordUnsigned(lhs.width, 0, bothSigned)
	}
	if lhsWords == 1 && rhsWords == 1 {
		return fromWordUnsigned(lhs.width, lhs.pVal[0]/rhs.pVal[0], bothSigned)
	}

	q, _ := divideWords(lhs, lhsWords, rhs, rhsWords, true, false)
	return q
}

// urem is the companion remainder of udiv under the same preconditions.
func urem(lhs, rhs SVInt, bothSigned bool) SVInt {
	if lhs.isSingleWord() {
		return fromWordUnsigned(lhs.width, lhs.val%rhs.val, bothSigned)
	}

	lhsWords := wordsForBits(lhs.activeBits())
	rhsWords := wordsForBits(rhs.activeBits())
	if lhsWords == 0 {
		return fromWordUnsigned(lhs.width, 0, bothSigned)
	}
	if lhsWords < rhsWords || lhs.unsignedLt(rhs) {
		lhs.signFlag = bothSigned
		return lhs
	}
	if lhsWords == 1 && rhsWords == 1 {
		return fromWordUnsigned(lhs.width, lhs.pVal[0]%rhs.pVal[0], bothSigned)
	}

	_, r := divideWords(lhs, lhsWords, rhs, rhsWords, false, true)
	return r
}

// splitWords unpacks n 64-bit storage words into 32-bit half words.
func splitWords(v SVInt, dest []uint32, n int) {
	raw := v.rawData()
	for i := 0; i < n; i++ {
		dest[i*2] = uint32(raw[i])
		dest[i*2+1] = uint32(raw[i] >> 32)
	}
}

func buildDivideResult(value []uint32, width uint32, signed bool, n int) SVInt {
	if n == 1 {
		return fromWordUnsigned(width, uint64(value[0])|uint64(value[1])<<32, signed)
	}
	result := SVInt{width: width, signFlag: signed, pVal: make([]uint64, numWords(width, false))}
	for i := 0; i < n; i++ {
		result.pVal[i] = uint64(value[i*2]) | uint64(value[i*2+1])<<32
	}
	return result
}

// divideWords runs the long division on 32-bit half words, using a
// short division loop when the divisor fits one half word and Knuth's
// Algorithm D otherwise. Quotient and remainder are built on demand.
func divideWords(lhs SVInt, lhsWords int, rhs SVInt, rhsWords int, wantQ, wantR bool) (q, r SVInt) {
	divisorWords := rhsWords * 2
	extraWords := lhsWords*2 - divisorWords
	dividendWords := divisorWords + extraWords

	u := make([]uint32, dividendWords+1)
	vv := make([]uint32, divisorWords)
	qbuf := make([]uint32, dividendWords)
	var rbuf []uint32
	if wantR {
		rbuf = make([]uint32, divisorWords)
	}

	splitWords(lhs, u, lhsWords)
	splitWords(rhs, vv, rhsWords)

	// The Knuth loop needs exact operand lengths with nonzero top words.
	for i := divisorWords; i > 0 && vv[i-1] == 0; i-- {
		divisorWords--
		extraWords++
	}
	for i := dividendWords; i > 0 && u[i-1] == 0; i-- {
		extraWords--
	}
	dividendWords = divisorWords + extraWords

	if divisorWords == 1 {
		divisor := uint64(vv[0])
		var rem uint32
		for i := dividendWords - 1; i >= 0; i-- {
			partial := uint64(rem)<<32 | uint64(u[i])
			switch {
			case partial == 0:
				qbuf[i] = 0
				rem = 0
			case partial < divisor:
				qbuf[i] = 0
				rem = uint32(partial)
			case partial == divisor:
				qbuf[i] = 1
				rem = 0
			default:
				qbuf[i] = uint32(partial / divisor)
				rem = uint32(partial - uint64(qbuf[i])*divisor)
			}
		}
		if rbuf != nil {
			rbuf[0] = rem
		}
	} else {
		knuthDiv(u, vv, qbuf, rbuf, extraWords, divisorWords)
	}

	bothSigned := lhs.signFlag && rhs.signFlag
	if wantQ {
		q = buildDivideResult(qbuf, lhs.width, bothSigned, lhsWords)
	}
	if wantR {
		r = buildDivideResult(rbuf, rhs.width, bothSigned, rhsWords)
	}
	return q, r
}

// Pow implements ** with the language's special cases; the result has
// the width of the receiver.
func (v SVInt) Pow(rhs SVInt) SVInt {
	bothSigned := v.signFlag && rhs.signFlag
	if v.unknownFlag || rhs.unknownFlag {
		return FillX(v.width, bothSigned)
	}

	lhsBits := v.activeBits()
	rhsBits := rhs.activeBits()
	if lhsBits == 0 {
		if rhsBits == 0 {
			return FromUint64(v.width, 1, bothSigned)
		}
		if rhs.signFlag && rhs.IsNegative() {
			return FillX(v.width, bothSigned)
		}
		return FromUint64(v.width, 0, bothSigned)
	}

	if rhsBits == 0 || lhsBits == 1 {
		return FromUint64(v.width, 1, bothSigned)
	}

	if bothSigned && v.IsNegative() {
		minusOne := FromUint64(v.width, ^uint64(0), true)
		if v.Eq(minusOne).IsTrue() {
			if rhs.isOdd() {
				return minusOne.AsSigned(bothSigned)
			}
			return FromUint64(v.width, 1, bothSigned)
		}
	}

	if bothSigned && rhs.IsNegative() {
		return FromUint64(v.width, 0, bothSigned)
	}

	if bothSigned && v.IsNegative() {
		result := modPow(v.Neg(), rhs, bothSigned)
		if rhs.isOdd() {
			return result.Neg()
		}
		return result
	}
	return modPow(v, rhs, bothSigned)
}

func activeWords(words []uint64) int {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// modPow is square-and-multiply modulo 2^width of the base. The
// scratch buffer is double width so every intermediate product fits.
func modPow(base, exponent SVInt, bothSigned bool) SVInt {
	width := base.width
	vw := numWords(width, false)
	scratch := make([]uint64, 2*vw+1)

	baseWords := make([]uint64, vw)
	copy(baseWords, base.rawData())
	resultWords := make([]uint64, vw)
	resultWords[0] = 1

	topMask := ^uint64(0)
	if width%bitsPerWord != 0 {
		topMask = uint64(1)<<(width%bitsPerWord) - 1
	}

	mulReduce := func(left, right, dst []uint64) {
		lw := activeWords(left)
		rw := activeWords(right)
		for i := range scratch {
			scratch[i] = 0
		}
		if lw != 0 && rw != 0 {
			mulWords(scratch, left, lw, right, rw)
		}
		copy(dst, scratch[:vw])
		dst[vw-1] &= topMask
	}

	expWords := exponent.rawData()
	for i := 0; i < len(expWords)-1; i++ {
		word := expWords[i]
		for j := 0; j < bitsPerWord; j++ {
			if word&1 != 0 {
				mulReduce(resultWords, baseWords, resultWords)
			}
			mulReduce(baseWords, baseWords, baseWords)
			word >>= 1
		}
	}

	// Stop squaring once the remaining exponent bits are zero.
	word := expWords[len(expWords)-1]
	for word != 0 {
		if word&1 != 0 {
			mulReduce(resultWords, baseWords, resultWords)
		}
		if word != 1 {
			mulReduce(baseWords, baseWords, baseWords)
		}
		word >>= 1
	}

	result := SVInt{width: width, signFlag: bothSigned}
	if width <= bitsPerWord {
		result.val = resultWords[0]
	} else {
		result.pVal = resultWords
	}
	return result
}

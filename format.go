package svnum

import "strconv"

const formatDigits = "0123456789abcdef"

// String renders with a guessed base: binary for narrow or unknown
// values, decimal for signed values, hex otherwise (so an unsigned
// 32-bit value renders in hex).
func (v SVInt) String() string {
	var base LiteralBase
	switch {
	case v.width < 8 || v.unknownFlag:
		base = Binary
	case v.signFlag:
		base = Decimal
	default:
		base = Hex
	}
	return v.Text(base)
}

// Text renders in the given base with the width'sbase prefix.
func (v SVInt) Text(base LiteralBase) string {
	return string(v.AppendText(make([]byte, 0, 32), base))
}

// AppendText appends the rendering of v to buf and returns the
// extended buffer.
func (v SVInt) AppendText(buf []byte, base LiteralBase) []byte {
	tmp := v
	if v.signFlag && !v.unknownFlag && v.IsNegative() {
		tmp = v.Neg()
		buf = append(buf, '-')
	}

	// Plain 32-bit signed decimals print bare; everything else carries
	// the size prefix.
	if base != Decimal || v.width != 32 || !v.signFlag || v.unknownFlag {
		buf = strconv.AppendUint(buf, uint64(v.width), 10)
		buf = append(buf, '\'')
		if v.signFlag {
			buf = append(buf, 's')
		}
		buf = append(buf, base.letter())
	}

	start := len(buf)
	if base == Decimal {
		if v.unknownFlag {
			// Unknown decimals collapse to a single letter.
			if v.word0() != 0 {
				buf = append(buf, 'z')
			} else {
				buf = append(buf, 'x')
			}
		} else {
			divisor := FromUint64(4, 10, false)
			for !tmp.isZero() {
				q, r := divideWords(tmp, numWords(tmp.width, false), divisor, 1, true, true)
				buf = append(buf, formatDigits[r.word0()])
				tmp = q
			}
		}
	} else {
		_, shift := base.radixShift()
		mask := uint64(1)<<shift - 1

		// An unknown comparison keeps the loop going so the x/z digits
		// come out.
		for x := tmp.neZero(); x.IsTrue() || x.IsUnknown(); x = tmp.neZero() {
			digit := tmp.word0() & mask
			if !tmp.unknownFlag {
				buf = append(buf, formatDigits[digit])
			} else {
				u := tmp.pVal[numWords(tmp.width, false)] & mask
				switch {
				case u == 0:
					buf = append(buf, formatDigits[digit])
				case digit != 0:
					buf = append(buf, 'z')
				default:
					buf = append(buf, 'x')
				}
			}
			tmp = tmp.LshrBy(shift)
		}
	}

	if len(buf) == start {
		return append(buf, '0')
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func (v SVInt) neZero() Logic {
	if v.unknownFlag {
		return LogicX
	}
	return LogicFrom(!v.isZero())
}

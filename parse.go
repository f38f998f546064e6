package svnum

import "github.com/pkg/errors"

// Parse error kinds; most are returned wrapped with context, so match
// with errors.Is.
var (
	ErrEmptyLiteral   = errors.New("literal is empty")
	ErrBadSize        = errors.New("invalid size")
	ErrMissingDigits  = errors.New("expected digits")
	ErrBadBase        = errors.New("unknown base specifier")
	ErrBadDigit       = errors.New("digit too large for radix")
	ErrDecimalUnknown = errors.New("unknown decimal must have exactly one digit")
)

// LiteralBase selects the digit radix of a literal.
type LiteralBase uint8

const (
	Binary LiteralBase = iota
	Octal
	Decimal
	Hex
)

// BaseFromChar maps a base letter (b, o, d, h, either case) to its
// LiteralBase.
func BaseFromChar(c byte) (LiteralBase, bool) {
	switch c {
	case 'b', 'B':
		return Binary, true
	case 'o', 'O':
		return Octal, true
	case 'd', 'D':
		return Decimal, true
	case 'h', 'H':
		return Hex, true
	default:
		return 0, false
	}
}

func (b LiteralBase) radixShift() (radix, shift uint32) {
	switch b {
	case Binary:
		return 2, 1
	case Octal:
		return 8, 3
	case Hex:
		return 16, 4
	default:
		return 10, 0
	}
}

func (b LiteralBase) letter() byte {
	switch b {
	case Binary:
		return 'b'
	case Octal:
		return 'o'
	case Hex:
		return 'h'
	default:
		return 'd'
	}
}

func hexDigitValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Parse reads a SystemVerilog-style literal:
//
//	[+-]? (size ' s? [bodhBODH])? digits
//
// with underscores allowed between digits, and tolerated inside the
// size field as well. Without a size/base prefix the value is 32-bit
// signed decimal. The digit letters x, z and ? (z) introduce unknown
// bits.
func Parse(s string) (SVInt, error) {
	if len(s) == 0 {
		return SVInt{}, ErrEmptyLiteral
	}

	i := 0
	negative := s[0] == '-'
	if s[0] == '-' || s[0] == '+' {
		i++
		if i == len(s) {
			return SVInt{}, errors.Wrap(ErrMissingDigits, "literal has only a sign")
		}
	}

	// Scan ahead for a base specifier, accumulating the prefix as a
	// decimal size in case we find one.
	sizeBad := false
	sizeOverflow := false
	possibleSize := uint32(0)
	apostrophe := -1
	for j := i; j < len(s); j++ {
		c := s[j]
		if c == '\'' {
			apostrophe = j
			break
		}
		switch {
		case c >= '0' && c <= '9':
			possibleSize = possibleSize*10 + uint32(c-'0')
			if possibleSize > MaxBits {
				sizeOverflow = true
			}
		case c != '_':
			sizeBad = true
		}
	}

	isSigned := true
	width := uint32(32)
	base := Decimal

	if apostrophe >= 0 {
		if sizeBad || sizeOverflow || possibleSize == 0 {
			return SVInt{}, errors.Wrapf(ErrBadSize, "%q", s[:apostrophe])
		}
		width = possibleSize

		i = apostrophe + 1
		if i == len(s) {
			return SVInt{}, errors.Wrap(ErrMissingDigits, "nothing after size specifier")
		}
		if s[i] == 's' || s[i] == 'S' {
			i++
			if i == len(s) {
				return SVInt{}, errors.Wrap(ErrMissingDigits, "nothing after sign specifier")
			}
		} else {
			isSigned = false
		}

		b, ok := BaseFromChar(s[i])
		if !ok {
			return SVInt{}, errors.Wrapf(ErrBadBase, "%q", s[i])
		}
		base = b
		i++
		if i == len(s) {
			return SVInt{}, errors.Wrap(ErrMissingDigits, "nothing after base specifier")
		}
	} else if sizeBad {
		return SVInt{}, errors.Wrapf(ErrBadSize, "%q is not an integer or sized literal", s)
	}

	digits := make([]Logic, 0, 16)
	anyUnknown := false
	for ; i < len(s); i++ {
		switch c := s[i]; c {
		case '_':
			continue
		case 'x', 'X':
			digits = append(digits, LogicX)
			anyUnknown = true
		case 'z', 'Z', '?':
			digits = append(digits, LogicZ)
			anyUnknown = true
		default:
			d, ok := hexDigitValue(c)
			if !ok {
				return SVInt{}, errors.Wrapf(ErrBadDigit, "%q", c)
			}
			digits = append(digits, LogicDigit(d))
		}
	}

	result, err := FromDigits(width, base, isSigned, anyUnknown, digits)
	if err != nil {
		return SVInt{}, err
	}
	if negative {
		result = result.Neg()
	}
	return result, nil
}

// FromDigits assembles a value from a most-significant-first digit
// stream. More digits than fit truncate from the left; fewer leave the
// high bits zero unless the top given digit is x or z, which extends
// through the full width.
func FromDigits(width uint32, base LiteralBase, signed, anyUnknown bool, digits []Logic) (SVInt, error) {
	if width == 0 || width > MaxBits {
		return SVInt{}, errors.Wrapf(ErrBadSize, "%d bits", width)
	}
	if len(digits) == 0 {
		return SVInt{}, errors.Wrap(ErrMissingDigits, "no digits provided")
	}

	radix, shift := base.radixShift()

	if width <= bitsPerWord && !anyUnknown {
		// Fast path entirely in one machine word.
		var val uint64
		for _, d := range digits {
			dv := uint64(d.DigitValue())
			if dv >= uint64(radix) {
				return SVInt{}, errors.Wrapf(ErrBadDigit, "%d in base %d", dv, radix)
			}
			if shift != 0 {
				val <<= shift
			} else {
				val *= uint64(radix)
			}
			val += dv
		}
		return FromUint64(width, val, signed), nil
	}

	if radix == 10 {
		// Base ten can't mark individual bits: an unknown decimal is
		// all x or all z.
		if anyUnknown {
			if len(digits) != 1 {
				return SVInt{}, ErrDecimalUnknown
			}
			if digits[0]&LogicZ != 0 {
				return FillZ(width, signed), nil
			}
			return FillX(width, signed), nil
		}
		acc := Zero(width, false)
		ten := FromUint64(width, 10, false)
		for _, d := range digits {
			dv := uint32(d.DigitValue())
			if dv >= radix {
				return SVInt{}, errors.Wrapf(ErrBadDigit, "%d in base %d", dv, radix)
			}
			acc = acc.Mul(ten).Add(FromUint64(width, uint64(dv), false))
		}
		acc.signFlag = signed
		return acc, nil
	}

	result := allocZeroed(width, signed, anyUnknown)
	vw := uint32(numWords(width, false))
	ones := uint32(1)<<shift - 1
	for _, d := range digits {
		var value, unknown uint32
		switch {
		case d&LogicX != 0:
			unknown = ones
		case d&LogicZ != 0:
			value, unknown = ones, ones
		default:
			value = uint32(d.DigitValue())
			if value >= radix {
				return SVInt{}, errors.Wrapf(ErrBadDigit, "%d in base %d", value, radix)
			}
		}

		if shift >= width {
			// Fewer bits than one digit group; each digit replaces the
			// previous one outright.
			result.pVal[0] = 0
			if anyUnknown {
				result.pVal[vw] = 0
			}
		} else {
			shlFar(result.pVal, result.pVal, shift, 0, 0, vw)
			if anyUnknown {
				shlFar(result.pVal, result.pVal, shift, 0, vw, vw)
			}
		}

		// The freshly shifted-in bits are zero, so plain adds suffice.
		result.pVal[0] += uint64(value)
		if anyUnknown {
			result.pVal[vw] += uint64(unknown)
		}
	}

	result.clearUnusedBits()
	result.checkUnknown()

	if result.unknownFlag {
		// If the most significant given digit is x or z, extend it
		// through the high bits.
		givenBits := uint32(len(digits)) * shift
		if givenBits > 0 && givenBits < width {
			topBit := givenBits - 1
			topWord := uint32(whichWord(topBit))
			if result.pVal[topWord+vw]&maskBit(topBit) != 0 {
				setBits(result.pVal[vw:], givenBits, width-givenBits)
				if result.pVal[topWord]&maskBit(topBit) != 0 {
					setBits(result.pVal[:vw], givenBits, width-givenBits)
				}
				result.clearUnusedBits()
			}
		}
	}

	return result, nil
}

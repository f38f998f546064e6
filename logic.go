package svnum

// Logic is a single four-state bit: 0, 1, x (unknown) or z (high
// impedance). The low bits can also carry a digit payload in [0, 15]
// while a literal is being assembled.
type Logic uint8

const (
	Logic0 Logic = 0
	Logic1 Logic = 1

	// LogicZ and LogicX are marker bits so that a digit payload and the
	// unknown states never collide.
	LogicZ Logic = 1 << 6
	LogicX Logic = 1 << 7
)

func LogicFrom(b bool) Logic {
	if b {
		return Logic1
	}
	return Logic0
}

// LogicDigit wraps a parsed digit value so it can travel through the
// same stream as x/z markers.
func LogicDigit(value uint8) Logic {
	return Logic(value)
}

func (l Logic) IsUnknown() bool {
	return l&(LogicX|LogicZ) != 0
}

// IsTrue reports whether the bit is known and nonzero.
func (l Logic) IsTrue() bool {
	return !l.IsUnknown() && l != 0
}

// DigitValue returns the digit payload carried by a known bit.
func (l Logic) DigitValue() uint8 {
	return uint8(l)
}

func (l Logic) Not() Logic {
	if l.IsUnknown() {
		return LogicX
	}
	if l == 0 {
		return Logic1
	}
	return Logic0
}

func (l Logic) And(rhs Logic) Logic {
	if (!l.IsUnknown() && l == 0) || (!rhs.IsUnknown() && rhs == 0) {
		return Logic0
	}
	if l.IsUnknown() || rhs.IsUnknown() {
		return LogicX
	}
	return Logic1
}

func (l Logic) Or(rhs Logic) Logic {
	if l.IsTrue() || rhs.IsTrue() {
		return Logic1
	}
	if l.IsUnknown() || rhs.IsUnknown() {
		return LogicX
	}
	return Logic0
}

func (l Logic) Xor(rhs Logic) Logic {
	if l.IsUnknown() || rhs.IsUnknown() {
		return LogicX
	}
	return LogicFrom(l != rhs)
}

func (l Logic) Rune() rune {
	switch {
	case l&LogicX != 0:
		return 'x'
	case l&LogicZ != 0:
		return 'z'
	case l == 0:
		return '0'
	default:
		return '1'
	}
}

func (l Logic) String() string {
	return string(l.Rune())
}

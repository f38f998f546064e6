package svnum

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a stable structural hash over the width, flags and both
// storage planes. Case-equal values of the same width and signedness
// hash identically; unused high bits never contribute because storage
// is kept canonical.
func (v SVInt) Hash() uint64 {
	h := xxhash.New()

	var hdr [6]byte
	binary.LittleEndian.PutUint32(hdr[:4], v.width)
	if v.signFlag {
		hdr[4] = 1
	}
	if v.unknownFlag {
		hdr[5] = 1
	}
	_, _ = h.Write(hdr[:])

	var word [wordBytes]byte
	for _, w := range v.rawData() {
		binary.LittleEndian.PutUint64(word[:], w)
		_, _ = h.Write(word[:])
	}
	return h.Sum64()
}

package voxel

// Channel stores one run-length-encoded channel of a cube's voxel data.
//
// The stream is a sequence of runs. Each run packs (count<<1 | kind) into
// one to four little-endian 7-bit groups; bit 7 of each byte flags that
// another group follows, so bit 0 of the first byte is the kind flag. A
// homogeneous run (kind 0) carries a single payload byte repeated count
// times; a heterogeneous run (kind 1) carries count literal bytes.
// Homogeneous runs are only worth emitting for at least three consecutive
// identical bytes.
type Channel struct {
	buf []byte
}

const (
	rlePrecision    = 7
	rleFlagMore     = 0x80
	rleFlagHetero   = 0x01
	rleMaxRunGroups = 4
)

// CompressedSize is the byte size of the stored stream.
func (c *Channel) CompressedSize() int { return len(c.buf) }

// Bytes exposes the raw compressed stream.
func (c *Channel) Bytes() []byte { return c.buf }

// SetBytes replaces the compressed stream, taking ownership of b.
func (c *Channel) SetBytes(b []byte) { c.buf = b }

func appendRunHeader(dst []byte, count int, hetero bool) []byte {
	v := uint32(count) << 1
	if hetero {
		v |= rleFlagHetero
	}
	for g := 0; g < rleMaxRunGroups; g++ {
		b := byte(v) & ^byte(rleFlagMore)
		v >>= rlePrecision
		if v != 0 {
			b |= rleFlagMore
		}
		dst = append(dst, b)
		if v == 0 {
			break
		}
	}
	return dst
}

// Compress stores a compressed image of src, replacing previous contents.
func (c *Channel) Compress(src []byte) {
	out := c.buf[:0]
	litStart := 0

	flushLiterals := func(end int) {
		if end > litStart {
			out = appendRunHeader(out, end-litStart, true)
			out = append(out, src[litStart:end]...)
		}
	}

	i := 0
	for i < len(src) {
		j := i + 1
		for j < len(src) && src[j] == src[i] {
			j++
		}
		if j-i >= 3 {
			flushLiterals(i)
			out = appendRunHeader(out, j-i, false)
			out = append(out, src[i])
			litStart = j
		}
		i = j
	}
	flushLiterals(len(src))

	c.buf = out
}

// Decompress fills dst, which must be exactly the decompressed size. The
// stream is bounds-checked: a run that would overrun dst, or a truncated
// stream, yields ErrBufferOverflow.
func (c *Channel) Decompress(dst []byte) error {
	src := c.buf
	s, d := 0, 0

	for d < len(dst) {
		if s >= len(src) {
			return ErrBufferOverflow
		}
		b := src[s]
		s++
		hetero := b&rleFlagHetero != 0
		v := uint32(b &^ rleFlagMore)
		shift := uint(rlePrecision)
		for b&rleFlagMore != 0 {
			if s >= len(src) {
				return ErrBufferOverflow
			}
			b = src[s]
			s++
			v |= uint32(b&^rleFlagMore) << shift
			shift += rlePrecision
		}
		count := int(v >> 1)

		if d+count > len(dst) {
			return ErrBufferOverflow
		}
		if hetero {
			if s+count > len(src) {
				return ErrBufferOverflow
			}
			copy(dst[d:], src[s:s+count])
			s += count
		} else {
			if s >= len(src) {
				return ErrBufferOverflow
			}
			fill := src[s]
			s++
			for k := d; k < d+count; k++ {
				dst[k] = fill
			}
		}
		d += count
	}
	return nil
}

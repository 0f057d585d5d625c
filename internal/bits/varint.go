package bits

import "fmt"

// AppendUvarint appends the ULEB128 encoding of u to dst and returns the
// extended slice. The encoding is minimal: 1 to 10 bytes, each carrying 7
// bits of the value with the high bit set on every byte but the last.
func AppendUvarint(dst []byte, u uint64) []byte {
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// Uvarint decodes a ULEB128-encoded unsigned integer from the head of buf,
// returning the value and the number of bytes consumed. It returns n == 0 if
// buf does not hold a complete, valid varint (too short, or more than 10
// bytes / 64 bits of payload).
func Uvarint(buf []byte) (uint64, int) {
	var u uint64
	var shift uint
	for i, b := range buf {
		if i == 10 {
			return 0, 0 // overflow: more than 64 bits of payload
		}
		if shift == 63 && b > 1 {
			return 0, 0 // overflow on the final byte
		}
		u |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return u, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// AppendZigZagVarint appends the zig-zag varint encoding of the signed value s.
func AppendZigZagVarint(dst []byte, s int64) []byte {
	u := uint64(s<<1) ^ uint64(s>>63)
	return AppendUvarint(dst, u)
}

// ZigZagVarint decodes a zig-zag ULEB128-encoded signed integer.
func ZigZagVarint(buf []byte) (int64, int) {
	u, n := Uvarint(buf)
	if n == 0 {
		return 0, 0
	}
	s := int64(u>>1) ^ -int64(u&1)
	return s, n
}

// ZigZagEncode32 maps a signed 32 bit integer to an unsigned 32 bit integer
// so that values of small magnitude map to small unsigned values.
func ZigZagEncode32(v int32) uint32 { return (uint32(v) << 1) ^ uint32(v>>31) }

// ZigZagDecode32 is the inverse of ZigZagEncode32.
func ZigZagDecode32(v uint32) int32 { return int32(v>>1) ^ -int32(v&1) }

// ZigZagEncode64 maps a signed 64 bit integer to an unsigned 64 bit integer.
func ZigZagEncode64(v int64) uint64 { return (uint64(v) << 1) ^ uint64(v>>63) }

// ZigZagDecode64 is the inverse of ZigZagEncode64.
func ZigZagDecode64(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

// ErrVarintOverflow describes a varint that exceeds the 64 bit range
// representable by the format. Uvarint and ZigZagVarint report that case by
// returning n == 0 rather than this error.
var ErrVarintOverflow = fmt.Errorf("uleb128 varint overflows 64 bits")

// Package bits implements the low level bit and byte manipulation primitives
// used throughout the module: byte/bit counting, LSB-first bit-packing,
// ULEB128 and zig-zag varints, and the min/max reductions used to aggregate
// page and column chunk statistics.
//
// Parquet's bit-packing order is the opposite of some other columnar
// formats: the least significant bit of the first value is the low bit of
// the first byte.
// https://github.com/apache/parquet-format/blob/master/Encodings.md
package bits

import (
	"bytes"
	"encoding/binary"
	stdbits "math/bits"
)

// BitCount returns the number of bits held by count bytes.
func BitCount(count int) uint {
	return 8 * uint(count)
}

// ByteCount returns the number of bytes required to hold count bits,
// rounding up.
func ByteCount(count uint) int {
	return int((count + 7) / 8)
}

// IndexShift8 splits a bit index into a byte index and the bit offset within
// that byte.
func IndexShift8(bitIndex uint) (index, shift uint) {
	return bitIndex / 8, bitIndex % 8
}

// BitWidth returns the number of bits needed to represent maxValue, i.e. the
// smallest w such that maxValue < 1<<w.
func BitWidth(maxValue uint64) uint {
	w := uint(0)
	for maxValue != 0 {
		w++
		maxValue >>= 1
	}
	return w
}

// Len8 returns the number of bits required to represent max, the bit width
// used for RLE/bit-packing hybrid encoded repetition and definition levels.
func Len8(max int8) int {
	return stdbits.Len8(uint8(max))
}

// load reads an n-bit (n <= 8) value starting at bit offset bitIndex in src.
func load(src []byte, bitIndex, n uint) byte {
	i, shift := IndexShift8(bitIndex)
	v := uint16(src[i])
	if shift+n > 8 && i+1 < uint(len(src)) {
		v |= uint16(src[i+1]) << 8
	}
	mask := uint16(1<<n) - 1
	return byte((v >> shift) & mask)
}

// store writes the low n bits (n <= 8) of v at bit offset bitIndex in dst,
// OR-ing into whatever is already there (dst must start zeroed for a fresh
// pack).
func store(dst []byte, bitIndex, n uint, v byte) {
	i, shift := IndexShift8(bitIndex)
	value := uint16(v&byte(1<<n-1)) << shift
	dst[i] |= byte(value)
	if shift+n > 8 && i+1 < uint(len(dst)) {
		dst[i+1] |= byte(value >> 8)
	}
}

func MinMaxInt32(data []int32) (min, max int32) {
	if len(data) > 0 {
		min, max = data[0], data[0]
		for _, v := range data[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func MinMaxInt64(data []int64) (min, max int64) {
	if len(data) > 0 {
		min, max = data[0], data[0]
		for _, v := range data[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func MinMaxUint32(data []uint32) (min, max uint32) {
	if len(data) > 0 {
		min, max = data[0], data[0]
		for _, v := range data[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func MinMaxUint64(data []uint64) (min, max uint64) {
	if len(data) > 0 {
		min, max = data[0], data[0]
		for _, v := range data[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func MinMaxFloat32(data []float32) (min, max float32) {
	if len(data) > 0 {
		min, max = data[0], data[0]
		for _, v := range data[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func MinMaxFloat64(data []float64) (min, max float64) {
	if len(data) > 0 {
		min, max = data[0], data[0]
		for _, v := range data[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

func MinMaxByteArray(data [][]byte) (min, max []byte) {
	if len(data) > 0 {
		min, max = data[0], data[0]
		for _, v := range data[1:] {
			if bytes.Compare(v, min) < 0 {
				min = v
			}
			if bytes.Compare(v, max) > 0 {
				max = v
			}
		}
	}
	return min, max
}

func MinMaxFixedLenByteArray(size int, data []byte) (min, max []byte) {
	if len(data) > 0 {
		min, max = data[:size], data[:size]
		for i, j := size, 2*size; j <= len(data); i, j = i+size, j+size {
			item := data[i:j]
			if bytes.Compare(item, min) < 0 {
				min = item
			}
			if bytes.Compare(item, max) > 0 {
				max = item
			}
		}
	}
	return min, max
}

// CompareInt96 implements the signed ordering of the deprecated INT96
// physical type: the high 32-bit word carries the sign.
func CompareInt96(v1, v2 [12]byte) int {
	hi1 := int32(binary.LittleEndian.Uint32(v1[8:]))
	hi2 := int32(binary.LittleEndian.Uint32(v2[8:]))
	switch {
	case hi1 < hi2:
		return -1
	case hi1 > hi2:
		return +1
	}
	lo1 := binary.LittleEndian.Uint64(v1[:8])
	lo2 := binary.LittleEndian.Uint64(v2[:8])
	switch {
	case lo1 < lo2:
		return -1
	case lo1 > lo2:
		return +1
	default:
		return 0
	}
}

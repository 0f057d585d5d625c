// Package thrift implements just enough of the Thrift compact protocol
// (https://github.com/apache/thrift/blob/master/doc/specs/thrift-compact-protocol.md)
// to marshal and unmarshal the parquet metadata structures declared in the
// format package. It intentionally does not implement the full generic
// Thrift data model (no maps, no sets, no unions beyond what parquet.thrift
// actually uses); the struct-level Read/Write methods generated against it
// follow the same Unmarshalable-style shape as hand-written Thrift bindings.
package thrift

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/parquetcore/parquet/internal/bits"
)

// Compact protocol type identifiers.
const (
	typeStop   = 0x0
	typeTrue   = 0x1
	typeFalse  = 0x2
	typeByte   = 0x3
	typeI16    = 0x4
	typeI32    = 0x5
	typeI64    = 0x6
	typeDouble = 0x7
	typeBinary = 0x8
	typeList   = 0x9
	typeSet    = 0xA
	typeMap    = 0xB
	typeStruct = 0xC
)

// Writer encodes values using the Thrift compact protocol.
type Writer struct {
	w     io.Writer
	stack []int16
	last  int16
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteStructBegin() {
	w.stack = append(w.stack, w.last)
	w.last = 0
}

func (w *Writer) WriteStructEnd() error {
	if err := w.writeByte(typeStop); err != nil {
		return err
	}
	w.last = w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return nil
}

func (w *Writer) writeByte(b byte) error {
	_, err := w.w.Write([]byte{b})
	return err
}

// FieldHeader writes a raw field header for a field whose value isn't one of
// the typed helpers below (used for nested-struct and list-of-struct
// fields, where the caller writes the value itself immediately after).
func (w *Writer) FieldHeader(id int16, typ byte) error {
	return w.fieldHeader(id, typ)
}

func (w *Writer) fieldHeader(id int16, typ byte) error {
	delta := id - w.last
	if delta > 0 && delta <= 15 {
		if err := w.writeByte(byte(delta)<<4 | typ); err != nil {
			return err
		}
	} else {
		if err := w.writeByte(typ); err != nil {
			return err
		}
		if err := w.writeVarint(bits.ZigZagEncode32(int32(id))); err != nil {
			return err
		}
	}
	w.last = id
	return nil
}

func (w *Writer) writeVarint(u uint32) error {
	_, err := w.w.Write(bits.AppendUvarint(nil, uint64(u)))
	return err
}

func (w *Writer) writeVarint64(u uint64) error {
	_, err := w.w.Write(bits.AppendUvarint(nil, u))
	return err
}

// WriteBool writes a boolean-valued field; compact protocol folds the value
// into the field type nibble, so there's no separate value byte.
func (w *Writer) WriteBool(id int16, v bool) error {
	typ := byte(typeFalse)
	if v {
		typ = typeTrue
	}
	return w.fieldHeader(id, typ)
}

func (w *Writer) WriteByteField(id int16, v int8) error {
	if err := w.fieldHeader(id, typeByte); err != nil {
		return err
	}
	return w.writeByte(byte(v))
}

func (w *Writer) WriteI16(id int16, v int16) error {
	if err := w.fieldHeader(id, typeI16); err != nil {
		return err
	}
	return w.writeVarint(bits.ZigZagEncode32(int32(v)))
}

func (w *Writer) WriteI32(id int16, v int32) error {
	if err := w.fieldHeader(id, typeI32); err != nil {
		return err
	}
	return w.writeVarint(bits.ZigZagEncode32(v))
}

func (w *Writer) WriteI64(id int16, v int64) error {
	if err := w.fieldHeader(id, typeI64); err != nil {
		return err
	}
	return w.writeVarint64(bits.ZigZagEncode64(v))
}

func (w *Writer) WriteDouble(id int16, v float64) error {
	if err := w.fieldHeader(id, typeDouble); err != nil {
		return err
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.w.Write(buf[:])
	return err
}

func (w *Writer) WriteBinary(id int16, v []byte) error {
	if err := w.fieldHeader(id, typeBinary); err != nil {
		return err
	}
	if err := w.writeVarint(uint32(len(v))); err != nil {
		return err
	}
	_, err := w.w.Write(v)
	return err
}

func (w *Writer) WriteString(id int16, v string) error {
	return w.WriteBinary(id, []byte(v))
}

// WriteListHeader begins a field holding a list of elemType, with the given
// size. Callers then write size elements with no field headers, and need not
// call anything to end the list.
func (w *Writer) WriteListHeader(id int16, elemType byte, size int) error {
	if err := w.fieldHeader(id, typeList); err != nil {
		return err
	}
	if size < 15 {
		return w.writeByte(byte(size)<<4 | elemType)
	}
	if err := w.writeByte(0xF0 | elemType); err != nil {
		return err
	}
	return w.writeVarint(uint32(size))
}

func (w *Writer) WriteListElemStructBegin() { w.WriteStructBegin() }
func (w *Writer) WriteListElemStructEnd() error {
	return w.WriteStructEnd()
}

func (w *Writer) WriteListElemI32(v int32) error {
	return w.writeVarint(bits.ZigZagEncode32(v))
}

func (w *Writer) WriteListElemBinary(v []byte) error {
	if err := w.writeVarint(uint32(len(v))); err != nil {
		return err
	}
	_, err := w.w.Write(v)
	return err
}

func (w *Writer) WriteListElemBool(v bool) error {
	if v {
		return w.writeByte(1)
	}
	return w.writeByte(0)
}

func (w *Writer) WriteListElemI64(v int64) error {
	return w.writeVarint64(bits.ZigZagEncode64(v))
}

// field-type constants re-exported for callers composing list headers.
const (
	TypeBool   = typeTrue
	TypeByte   = typeByte
	TypeI32    = typeI32
	TypeI64    = typeI64
	TypeDouble = typeDouble
	TypeBinary = typeBinary
	TypeStruct = typeStruct
	TypeList   = typeList
)

// Reader decodes values encoded with the Thrift compact protocol.
type Reader struct {
	r     io.Reader
	stack []int16
	last  int16
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) ReadStructBegin() {
	r.stack = append(r.stack, r.last)
	r.last = 0
}

func (r *Reader) ReadStructEnd() {
	r.last = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Reader) readByte() (byte, error) {
	var buf [1]byte
	_, err := io.ReadFull(r.r, buf[:])
	return buf[0], err
}

func (r *Reader) readVarint() (uint64, error) {
	var u uint64
	var shift uint
	for i := 0; i < 10; i++ {
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		u |= uint64(b&0x7F) << shift
		if b < 0x80 {
			return u, nil
		}
		shift += 7
	}
	return 0, fmt.Errorf("thrift: varint overflows 64 bits")
}

// ReadFieldBegin reports the id and type of the next field, or typeStop when the
// enclosing struct has ended. The returned id is the absolute field id.
func (r *Reader) ReadFieldBegin() (id int16, typ byte, err error) {
	b, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	if b == typeStop {
		return 0, typeStop, nil
	}
	typ = b & 0x0F
	delta := int16(b >> 4)
	if delta == 0 {
		u, err := r.readVarint()
		if err != nil {
			return 0, 0, err
		}
		id = int16(bits.ZigZagDecode32(uint32(u)))
	} else {
		id = r.last + delta
	}
	r.last = id
	return id, typ, nil
}

func (r *Reader) ReadBool(typ byte) bool { return typ == typeTrue }

func (r *Reader) ReadByte() (int8, error) {
	b, err := r.readByte()
	return int8(b), err
}

func (r *Reader) ReadI16() (int16, error) {
	u, err := r.readVarint()
	if err != nil {
		return 0, err
	}
	return int16(bits.ZigZagDecode32(uint32(u))), nil
}

func (r *Reader) ReadI32() (int32, error) {
	u, err := r.readVarint()
	if err != nil {
		return 0, err
	}
	return bits.ZigZagDecode32(uint32(u)), nil
}

func (r *Reader) ReadI64() (int64, error) {
	u, err := r.readVarint()
	if err != nil {
		return 0, err
	}
	return bits.ZigZagDecode64(u), nil
}

func (r *Reader) ReadDouble() (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}

// ReadBinary reads a length-prefixed byte string, capped by maxLen to bound
// allocation from a corrupt or adversarial length prefix.
func (r *Reader) ReadBinary(maxLen int) ([]byte, error) {
	n, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	if maxLen > 0 && int(n) > maxLen {
		return nil, fmt.Errorf("thrift: binary field length %d exceeds limit %d", n, maxLen)
	}
	buf := make([]byte, n)
	_, err = io.ReadFull(r.r, buf)
	return buf, err
}

func (r *Reader) ReadString(maxLen int) (string, error) {
	b, err := r.ReadBinary(maxLen)
	return string(b), err
}

// ReadListHeader returns the element type and size of a list.
func (r *Reader) ReadListHeader() (elemType byte, size int, err error) {
	b, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	elemType = b & 0x0F
	sz := int(b >> 4)
	if sz == 15 {
		n, err := r.readVarint()
		if err != nil {
			return 0, 0, err
		}
		sz = int(n)
	}
	return elemType, sz, nil
}

// Skip discards the value of the given type, recursing into structs and
// lists. Used to tolerate unknown fields written by newer writers.
func (r *Reader) Skip(typ byte) error {
	switch typ {
	case typeTrue, typeFalse:
		return nil
	case typeByte:
		_, err := r.readByte()
		return err
	case typeI16, typeI32, typeI64:
		_, err := r.readVarint()
		return err
	case typeDouble:
		_, err := r.ReadDouble()
		return err
	case typeBinary:
		_, err := r.ReadBinary(0)
		return err
	case typeStruct:
		r.ReadStructBegin()
		for {
			_, ftyp, err := r.ReadFieldBegin()
			if err != nil {
				return err
			}
			if ftyp == typeStop {
				break
			}
			if err := r.Skip(ftyp); err != nil {
				return err
			}
		}
		r.ReadStructEnd()
		return nil
	case typeList, typeSet:
		elemType, size, err := r.ReadListHeader()
		if err != nil {
			return err
		}
		for i := 0; i < size; i++ {
			if elemType == typeTrue || elemType == typeFalse {
				// bool list elements take one byte each
				if _, err := r.readByte(); err != nil {
					return err
				}
				continue
			}
			if err := r.Skip(elemType); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("thrift: cannot skip unsupported type %d", typ)
	}
}

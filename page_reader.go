package parquet

import (
	"io"

	"github.com/parquetcore/parquet/deprecated"
	"github.com/parquetcore/parquet/encoding"
	"github.com/parquetcore/parquet/encoding/plain"
	"github.com/parquetcore/parquet/internal/bits"
	"github.com/parquetcore/parquet/internal/errkind"
)

// DataPageValueReader is an interface implemented by types that support reading values
// from pages of parquet files.
//
// The values read from the page do not have repetition or definition levels
// set, use a DataPageReader to decode values with levels.
type DataPageValueReader interface {
	ValueReader
	ValueBatchReader

	// Returns the type of values read from the underlying page.
	Type() Type

	// Resets the decoder used to read values from the parquet page. This method
	// is useful to allow reusing readers. Calling this method drops all values
	// previously buffered by the reader.
	Reset(encoding.Decoder)
}

// DataPageReader reads values from a data page.
//
// DataPageReader implements the ValueReader interface; when they exist,
// the reader decodes repetition and definition levels in order to assign
// levels to values returned to the application, which includes producing
// null values when needed.
type DataPageReader struct {
	page               DataPageValueReader
	remain             int
	maxRepetitionLevel int8
	maxDefinitionLevel int8
	columnIndex        int8
	repetition         dataPageLevelReader
	definition         dataPageLevelReader
}

func NewDataPageReader(repetition, definition encoding.Decoder, numValues int, page DataPageValueReader, maxRepetitionLevel, maxDefinitionLevel, columnIndex int8, bufferSize int) *DataPageReader {
	repetitionBufferSize := 0
	definitionBufferSize := 0

	switch {
	case maxRepetitionLevel > 0 && maxDefinitionLevel > 0:
		repetitionBufferSize = bufferSize / 2
		definitionBufferSize = bufferSize / 2

	case maxRepetitionLevel > 0:
		repetitionBufferSize = bufferSize

	case maxDefinitionLevel > 0:
		definitionBufferSize = bufferSize
	}

	if repetition != nil {
		repetition.SetBitWidth(bits.Len8(maxRepetitionLevel))
	}
	if definition != nil {
		definition.SetBitWidth(bits.Len8(maxDefinitionLevel))
	}

	return &DataPageReader{
		page:               page,
		remain:             numValues,
		maxRepetitionLevel: maxRepetitionLevel,
		maxDefinitionLevel: maxDefinitionLevel,
		columnIndex:        ^columnIndex,
		repetition:         makeDataPageLevelReader(repetition, repetitionBufferSize),
		definition:         makeDataPageLevelReader(definition, definitionBufferSize),
	}
}

func (r *DataPageReader) ReadValue() (Value, error) {
	if r.remain == 0 {
		return Value{}, io.EOF
	}

	var val Value
	var err error
	var repetitionLevel int8
	var definitionLevel int8

	if r.maxRepetitionLevel > 0 {
		repetitionLevel, err = r.repetition.readLevel()
		if err != nil {
			return val, errkind.Wrap(errkind.IO, err)
		}
	}

	if r.maxDefinitionLevel > 0 {
		definitionLevel, err = r.definition.readLevel()
		if err != nil {
			return val, errkind.Wrap(errkind.IO, err)
		}
	}

	if definitionLevel == r.maxDefinitionLevel {
		val, err = r.page.ReadValue()
	}

	val.repetitionLevel = repetitionLevel
	val.definitionLevel = definitionLevel
	val.columnIndex = r.columnIndex
	r.remain--
	return val, err
}

func (r *DataPageReader) ReadValueBatch(values []Value) (int, error) {
	read := 0

	for r.remain > 0 && len(values) > 0 {
		var err error
		var repetitionLevels []int8
		var definitionLevels []int8
		var numNulls int
		var numValues = r.remain

		if len(values) < numValues {
			numValues = len(values)
		}

		if r.maxRepetitionLevel > 0 {
			repetitionLevels, err = r.repetition.peekLevels()
			if err != nil {
				return read, errkind.Wrapf(errkind.IO, err, "reading parquet repetition level from data page")
			}
			if len(repetitionLevels) < numValues {
				numValues = len(repetitionLevels)
			}
		}

		if r.maxDefinitionLevel > 0 {
			definitionLevels, err = r.definition.peekLevels()
			if err != nil {
				return read, errkind.Wrapf(errkind.IO, err, "reading parquet definition level from data page")
			}
			if len(definitionLevels) < numValues {
				numValues = len(definitionLevels)
			}
		}

		if len(repetitionLevels) > 0 {
			repetitionLevels = repetitionLevels[:numValues]
		}

		if len(definitionLevels) > 0 {
			definitionLevels = definitionLevels[:numValues]
		}

		for _, d := range definitionLevels {
			if d != r.maxDefinitionLevel {
				numNulls++
			}
		}

		n, err := r.page.ReadValueBatch(values[:numValues-numNulls])
		if err != nil {
			if err == io.EOF {
				// EOF should not happen at this stage since we successfully
				// decoded levels.
				err = io.ErrUnexpectedEOF
			}
			return read, errkind.Wrapf(errkind.IO, err, "reading parquet values from data page")
		}

		for i, j := n-1, len(definitionLevels)-1; j >= 0; j-- {
			if definitionLevels[j] != r.maxDefinitionLevel {
				values[j] = Value{}
			} else {
				values[j] = values[i]
				i--
			}
		}

		for i, lvl := range repetitionLevels {
			values[i].repetitionLevel = lvl
		}

		for i, lvl := range definitionLevels {
			values[i].definitionLevel = lvl
		}

		for i := range values[:numValues] {
			values[i].columnIndex = r.columnIndex
		}

		values = values[numValues:]
		r.repetition.discardLevels(numValues)
		r.definition.discardLevels(numValues)
		r.remain -= numValues
		read += numValues
	}

	if r.remain == 0 && read == 0 {
		return 0, io.EOF
	}

	return read, nil
}

func (r *DataPageReader) Reset(repetition, definition encoding.Decoder, numValues int, page DataPageValueReader) {
	repetition.SetBitWidth(bits.Len8(r.maxRepetitionLevel))
	definition.SetBitWidth(bits.Len8(r.maxDefinitionLevel))
	r.page = page
	r.remain = numValues
	r.repetition.reset(repetition)
	r.definition.reset(definition)
}

type dataPageLevelReader struct {
	decoder encoding.Decoder
	levels  []int8
	offset  uint
}

func makeDataPageLevelReader(decoder encoding.Decoder, bufferSize int) dataPageLevelReader {
	return dataPageLevelReader{
		decoder: decoder,
		levels:  make([]int8, 0, bufferSize),
	}
}

func (r *dataPageLevelReader) readLevel() (int8, error) {
	for {
		if r.offset < uint(len(r.levels)) {
			lvl := r.levels[r.offset]
			r.offset++
			return lvl, nil
		}
		if err := r.decodeLevels(); err != nil {
			return -1, err
		}
	}
}

func (r *dataPageLevelReader) peekLevels() ([]int8, error) {
	if r.offset == uint(len(r.levels)) {
		if err := r.decodeLevels(); err != nil {
			return nil, err
		}
	}
	return r.levels[r.offset:], nil
}

func (r *dataPageLevelReader) discardLevels(n int) int {
	remain := uint(len(r.levels)) - r.offset
	discard := uint(n)
	if discard > remain {
		r.levels = r.levels[:0]
		r.offset = 0
	} else {
		r.offset += discard
	}
	return int(discard)
}

func (r *dataPageLevelReader) decodeLevels() error {
	n, err := r.decoder.DecodeInt8(r.levels[:cap(r.levels)])
	if n == 0 {
		return err
	}
	r.levels = r.levels[:n]
	r.offset = 0
	return nil
}

func (r *dataPageLevelReader) reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.levels = r.levels[:0]
	r.offset = 0
}

type dataPageBooleanReader struct {
	typ     Type
	decoder encoding.Decoder
	values  []bool
	offset  uint
}

func newDataPageBooleanReader(typ Type, decoder encoding.Decoder, bufferSize int) *dataPageBooleanReader {
	return &dataPageBooleanReader{
		typ:     typ,
		decoder: decoder,
		values:  make([]bool, 0, atLeastOne(bufferSize)),
	}
}

func (r *dataPageBooleanReader) ReadValue() (Value, error) {
	values := [1]Value{}
	_, err := r.ReadValueBatch(values[:])
	return values[0], err
}

func (r *dataPageBooleanReader) ReadValueBatch(values []Value) (int, error) {
	i := 0
	for {
		for r.offset < uint(len(r.values)) && i < len(values) {
			values[i] = makeValueBoolean(r.values[r.offset])
			r.offset++
			i++
		}

		if i == len(values) {
			return i, nil
		}

		n, err := r.decoder.DecodeBoolean(r.values[:cap(r.values)])
		if n == 0 {
			return i, err
		}

		r.values = r.values[:n]
		r.offset = 0
	}
}

func (r *dataPageBooleanReader) Reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.values = r.values[:0]
	r.offset = 0
}

func (r *dataPageBooleanReader) Type() Type { return r.typ }

type dataPageInt32Reader struct {
	typ     Type
	decoder encoding.Decoder
	values  []int32
	offset  uint
}

func newDataPageInt32Reader(typ Type, decoder encoding.Decoder, bufferSize int) *dataPageInt32Reader {
	return &dataPageInt32Reader{
		typ:     typ,
		decoder: decoder,
		values:  make([]int32, 0, atLeastOne(bufferSize/4)),
	}
}

func (r *dataPageInt32Reader) ReadValue() (Value, error) {
	values := [1]Value{}
	_, err := r.ReadValueBatch(values[:])
	return values[0], err
}

func (r *dataPageInt32Reader) ReadValueBatch(values []Value) (int, error) {
	i := 0
	for {
		for r.offset < uint(len(r.values)) && i < len(values) {
			values[i] = makeValueInt32(r.values[r.offset])
			r.offset++
			i++
		}

		if i == len(values) {
			return i, nil
		}

		n, err := r.decoder.DecodeInt32(r.values[:cap(r.values)])
		if n == 0 {
			return i, err
		}

		r.values = r.values[:n]
		r.offset = 0
	}
}

func (r *dataPageInt32Reader) Reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.values = r.values[:0]
	r.offset = 0
}

func (r *dataPageInt32Reader) Type() Type { return r.typ }

type dataPageInt64Reader struct {
	typ     Type
	decoder encoding.Decoder
	values  []int64
	offset  uint
}

func newDataPageInt64Reader(typ Type, decoder encoding.Decoder, bufferSize int) *dataPageInt64Reader {
	return &dataPageInt64Reader{
		typ:     typ,
		decoder: decoder,
		values:  make([]int64, 0, atLeastOne(bufferSize/8)),
	}
}

func (r *dataPageInt64Reader) ReadValue() (Value, error) {
	values := [1]Value{}
	_, err := r.ReadValueBatch(values[:])
	return values[0], err
}

func (r *dataPageInt64Reader) ReadValueBatch(values []Value) (int, error) {
	i := 0
	for {
		for r.offset < uint(len(r.values)) && i < len(values) {
			values[i] = makeValueInt64(r.values[r.offset])
			r.offset++
			i++
		}

		if i == len(values) {
			return i, nil
		}

		n, err := r.decoder.DecodeInt64(r.values[:cap(r.values)])
		if n == 0 {
			return i, err
		}

		r.values = r.values[:n]
		r.offset = 0
	}
}

func (r *dataPageInt64Reader) Reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.values = r.values[:0]
	r.offset = 0
}

func (r *dataPageInt64Reader) Type() Type { return r.typ }

type dataPageInt96Reader struct {
	typ     Type
	decoder encoding.Decoder
	values  []deprecated.Int96
	offset  uint
}

func newDataPageInt96Reader(typ Type, decoder encoding.Decoder, bufferSize int) *dataPageInt96Reader {
	return &dataPageInt96Reader{
		typ:     typ,
		decoder: decoder,
		values:  make([]deprecated.Int96, 0, atLeastOne(bufferSize/12)),
	}
}

func (r *dataPageInt96Reader) ReadValue() (Value, error) {
	values := [1]Value{}
	_, err := r.ReadValueBatch(values[:])
	return values[0], err
}

func (r *dataPageInt96Reader) ReadValueBatch(values []Value) (int, error) {
	i := 0
	for {
		for r.offset < uint(len(r.values)) && i < len(values) {
			values[i] = makeValueInt96(r.values[r.offset])
			r.offset++
			i++
		}

		if i == len(values) {
			return i, nil
		}

		n, err := r.decoder.DecodeInt96(r.values[:cap(r.values)])
		if n == 0 {
			return i, err
		}

		r.values = r.values[:n]
		r.offset = 0
	}
}

func (r *dataPageInt96Reader) Reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.values = r.values[:0]
	r.offset = 0
}

func (r *dataPageInt96Reader) Type() Type { return r.typ }

type dataPageFloatReader struct {
	typ     Type
	decoder encoding.Decoder
	values  []float32
	offset  uint
}

func newDataPageFloatReader(typ Type, decoder encoding.Decoder, bufferSize int) *dataPageFloatReader {
	return &dataPageFloatReader{
		typ:     typ,
		decoder: decoder,
		values:  make([]float32, 0, atLeastOne(bufferSize/4)),
	}
}

func (r *dataPageFloatReader) ReadValue() (Value, error) {
	values := [1]Value{}
	_, err := r.ReadValueBatch(values[:])
	return values[0], err
}

func (r *dataPageFloatReader) ReadValueBatch(values []Value) (int, error) {
	i := 0
	for {
		for r.offset < uint(len(r.values)) && i < len(values) {
			values[i] = makeValueFloat(r.values[r.offset])
			r.offset++
			i++
		}

		if i == len(values) {
			return i, nil
		}

		n, err := r.decoder.DecodeFloat(r.values[:cap(r.values)])
		if n == 0 {
			return i, err
		}

		r.values = r.values[:n]
		r.offset = 0
	}
}

func (r *dataPageFloatReader) Reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.values = r.values[:0]
	r.offset = 0
}

func (r *dataPageFloatReader) Type() Type { return r.typ }

type dataPageDoubleReader struct {
	typ     Type
	decoder encoding.Decoder
	values  []float64
	offset  uint
}

func newDataPageDoubleReader(typ Type, decoder encoding.Decoder, bufferSize int) *dataPageDoubleReader {
	return &dataPageDoubleReader{
		typ:     typ,
		decoder: decoder,
		values:  make([]float64, 0, atLeastOne(bufferSize/8)),
	}
}

func (r *dataPageDoubleReader) ReadValue() (Value, error) {
	values := [1]Value{}
	_, err := r.ReadValueBatch(values[:])
	return values[0], err
}

func (r *dataPageDoubleReader) ReadValueBatch(values []Value) (int, error) {
	i := 0
	for {
		for r.offset < uint(len(r.values)) && i < len(values) {
			values[i] = makeValueDouble(r.values[r.offset])
			r.offset++
			i++
		}

		if i == len(values) {
			return i, nil
		}

		n, err := r.decoder.DecodeDouble(r.values[:cap(r.values)])
		if n == 0 {
			return i, err
		}

		r.values = r.values[:n]
		r.offset = 0
	}
}

func (r *dataPageDoubleReader) Reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.values = r.values[:0]
	r.offset = 0
}

func (r *dataPageDoubleReader) Type() Type { return r.typ }

type dataPageByteArrayReader struct {
	typ     Type
	decoder encoding.Decoder
	values  []byte
	offset  uint
	remain  uint
}

func newDataPageByteArrayReader(typ Type, decoder encoding.Decoder, bufferSize int) *dataPageByteArrayReader {
	return &dataPageByteArrayReader{
		typ:     typ,
		decoder: decoder,
		values:  make([]byte, atLeast(bufferSize, 4)),
	}
}

func (r *dataPageByteArrayReader) ReadValue() (Value, error) {
	values := [1]Value{}
	_, err := r.ReadValueBatch(values[:])
	return values[0], err
}

func (r *dataPageByteArrayReader) ReadValueBatch(values []Value) (int, error) {
	i := 0
	for {
		for r.remain > 0 && i < len(values) {
			n := plain.NextByteArrayLength(r.values[r.offset:])
			v := r.values[4+r.offset : 4+r.offset+uint(n)]
			r.offset += 4 + uint(n)
			r.remain--
			values[i] = makeValueBytes(ByteArray, copyBytes(v))
			i++
		}

		if i == len(values) {
			return i, nil
		}

		n, err := r.decoder.DecodeByteArray(r.values)
		if n == 0 {
			if err == encoding.ErrValueTooLarge {
				size := 4 + uint32(plain.NextByteArrayLength(r.values))
				r.values = make([]byte, bits.NearestPowerOfTwo32(size))
				r.offset = 0
				r.remain = 0
				continue
			}
			return i, err
		}

		r.offset = 0
		r.remain = uint(n)
	}
}

func (r *dataPageByteArrayReader) Reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.offset = 0
	r.remain = 0
}

func (r *dataPageByteArrayReader) Type() Type { return r.typ }

type dataPageFixedLenByteArrayReader struct {
	typ     Type
	decoder encoding.Decoder
	values  []byte
	offset  uint
	size    uint
}

func newDataPageFixedLenByteArrayReader(typ Type, decoder encoding.Decoder, bufferSize int) *dataPageFixedLenByteArrayReader {
	size := typ.Length()
	return &dataPageFixedLenByteArrayReader{
		typ:     typ,
		decoder: decoder,
		size:    uint(size),
		values:  make([]byte, 0, atLeast((bufferSize/size)*size, size)),
	}
}

func (r *dataPageFixedLenByteArrayReader) ReadValue() (Value, error) {
	values := [1]Value{}
	_, err := r.ReadValueBatch(values[:])
	return values[0], err
}

func (r *dataPageFixedLenByteArrayReader) ReadValueBatch(values []Value) (int, error) {
	i := 0
	for {
		for (r.offset+r.size) <= uint(len(r.values)) && i < len(values) {
			values[i] = makeValueBytes(FixedLenByteArray, copyBytes(r.values[r.offset:r.offset+r.size]))
			r.offset += r.size
			i++
		}

		if i == len(values) {
			return i, nil
		}

		n, err := r.decoder.DecodeFixedLenByteArray(int(r.size), r.values[:cap(r.values)])
		if n == 0 {
			return i, err
		}

		r.values = r.values[:uint(n)*r.size]
		r.offset = 0
	}
}

func (r *dataPageFixedLenByteArrayReader) Reset(decoder encoding.Decoder) {
	r.decoder = decoder
	r.values = r.values[:0]
	r.offset = 0
}

func (r *dataPageFixedLenByteArrayReader) Type() Type { return r.typ }

var (
	_ ValueReader = (*DataPageReader)(nil)
	_ DataPageValueReader  = (*dataPageInt32Reader)(nil)
	_ DataPageValueReader  = (*dataPageInt64Reader)(nil)
	_ DataPageValueReader  = (*dataPageInt96Reader)(nil)
	_ DataPageValueReader  = (*dataPageFloatReader)(nil)
	_ DataPageValueReader  = (*dataPageDoubleReader)(nil)
	_ DataPageValueReader  = (*dataPageByteArrayReader)(nil)
	_ DataPageValueReader  = (*dataPageFixedLenByteArrayReader)(nil)
)

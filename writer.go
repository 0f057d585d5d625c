package parquet

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/parquetcore/parquet/compress"
	"github.com/parquetcore/parquet/encoding/plain"
	"github.com/parquetcore/parquet/encoding/rle"
	"github.com/parquetcore/parquet/format"
	"github.com/parquetcore/parquet/internal/bits"
	"github.com/parquetcore/parquet/internal/errkind"
)

const magic = "PAR1"

// FileWriter assembles a parquet file from a sequence of rows, writing the
// magic header, one or more row groups, and the thrift-encoded footer in the
// layout described by the Apache Parquet file format:
//
//	PAR1
//	<row group 0>
//	<row group 1>
//	...
//	<file metadata>
//	<metadata length: 4 bytes little-endian>
//	PAR1
//
// A FileWriter is not safe for concurrent use.
type FileWriter struct {
	writer  io.Writer
	offset  int64
	schema  *Schema
	config  *WriterConfig
	columns []*fileWriterColumn

	numRows         int64
	rowsInRowGroup  int64
	bytesInRowGroup int64
	rowGroups       []format.RowGroup
	closed          bool
}

// NewFileWriter constructs a FileWriter which writes a parquet file shaped
// after schema to w, immediately emitting the magic header.
func NewFileWriter(w io.Writer, schema *Schema, options ...WriterOption) (*FileWriter, error) {
	config := DefaultWriterConfig()
	config.Apply(options...)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	fw := &FileWriter{writer: w, schema: schema, config: config}
	if err := fw.writeString(magic); err != nil {
		return nil, err
	}
	fw.resetColumns()
	return fw, nil
}

func (fw *FileWriter) write(b []byte) error {
	n, err := fw.writer.Write(b)
	fw.offset += int64(n)
	if err != nil {
		return errkind.Wrapf(errkind.IO, err, "writing parquet file")
	}
	return nil
}

func (fw *FileWriter) writeString(s string) error { return fw.write([]byte(s)) }

func (fw *FileWriter) resetColumns() {
	fw.columns = fw.columns[:0]
	bufferSize := fw.config.PageBufferSize
	forEachLeafColumnOf(fw.schema, func(leaf leafColumn) {
		fw.columns = append(fw.columns, newFileWriterColumn(leaf, bufferSize))
	})
}

// WriteRow appends a single row to the row group currently being
// accumulated, flushing it to the underlying writer once its configured
// target size is reached.
func (fw *FileWriter) WriteRow(row Row) error {
	if len(fw.columns) == 0 {
		return errkind.New(errkind.OutOfSpec, "cannot write rows to a parquet file with an empty schema")
	}

	for _, v := range row {
		i := v.Column()
		if i < 0 || i >= len(fw.columns) {
			return errkind.Newf(errkind.InvalidParameter, "row value references column %d of %d", i, len(fw.columns))
		}
		if err := fw.columns[i].append(v); err != nil {
			return err
		}
		if v.RepetitionLevel() == 0 {
			fw.bytesInRowGroup += int64(len(v.Bytes()))
		}
	}

	fw.rowsInRowGroup++
	if fw.bytesInRowGroup >= fw.config.RowGroupTargetSize {
		return fw.Flush()
	}
	return nil
}

// WriteRowGroup writes the rows exposed by an already built RowGroup,
// flushing any row group currently being accumulated beforehand.
func (fw *FileWriter) WriteRowGroup(rowGroup RowGroup) error {
	if fw.rowsInRowGroup > 0 {
		if err := fw.Flush(); err != nil {
			return err
		}
	}

	rows := rowGroup.Rows()
	buffer := make([]Row, 64)
	for {
		n, err := rows.ReadRows(buffer)
		for _, row := range buffer[:n] {
			if werr := fw.WriteRow(row); werr != nil {
				return werr
			}
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return errkind.Wrapf(errkind.IO, err, "reading row group to write to parquet file")
		}
	}
	return fw.Flush()
}

// Flush ends the row group currently being accumulated, writing its column
// chunks to the underlying writer. Flush is a no-op if no rows have been
// written since the writer was created or since the last Flush/End.
func (fw *FileWriter) Flush() error {
	if fw.rowsInRowGroup == 0 {
		return nil
	}

	columns := make([]format.ColumnChunk, len(fw.columns))
	totalByteSize := int64(0)

	for i, col := range fw.columns {
		chunk, err := col.flush(fw)
		if err != nil {
			return err
		}
		columns[i] = chunk
		totalByteSize += chunk.MetaData.TotalCompressedSize
	}

	fw.rowGroups = append(fw.rowGroups, format.RowGroup{
		Columns:       columns,
		TotalByteSize: totalByteSize,
		NumRows:       fw.rowsInRowGroup,
		Ordinal:       int16(len(fw.rowGroups)),
		HasOrdinal:    true,
	})

	fw.numRows += fw.rowsInRowGroup
	fw.rowsInRowGroup = 0
	fw.bytesInRowGroup = 0
	fw.resetColumns()
	return nil
}

// End finalizes the file, writing the footer and trailing magic bytes, and
// returns the total number of bytes written. keyValueMetadata, if given,
// augments (and overrides by key) the metadata configured on the writer.
func (fw *FileWriter) End(keyValueMetadata map[string]string) (int64, error) {
	if fw.closed {
		return fw.offset, errkind.New(errkind.InvalidParameter, "parquet file writer has already been closed")
	}
	if err := fw.Flush(); err != nil {
		return fw.offset, err
	}

	metadata := format.FileMetaData{
		Version:   1,
		Schema:    schemaElementsOf(fw.schema),
		NumRows:   fw.numRows,
		RowGroups: fw.rowGroups,
	}
	if fw.config.CreatedBy != "" {
		metadata.CreatedBy, metadata.HasCreatedBy = fw.config.CreatedBy, true
	}
	metadata.KeyValueMetadata = mergeKeyValueMetadata(fw.config.KeyValueMetadata, keyValueMetadata)

	footer := new(bytes.Buffer)
	if err := format.WriteFileMetaData(footer, &metadata); err != nil {
		return fw.offset, errkind.Wrapf(errkind.OutOfSpec, err, "encoding parquet file metadata")
	}
	if err := fw.write(footer.Bytes()); err != nil {
		return fw.offset, err
	}

	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(footer.Len()))
	if err := fw.write(length[:]); err != nil {
		return fw.offset, err
	}
	if err := fw.writeString(magic); err != nil {
		return fw.offset, err
	}

	fw.closed = true
	return fw.offset, nil
}

// Close is equivalent to calling End(nil); it is provided so a FileWriter
// satisfies io.Closer.
func (fw *FileWriter) Close() error {
	_, err := fw.End(nil)
	return err
}

func mergeKeyValueMetadata(configured, extra map[string]string) []format.KeyValue {
	if len(configured) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(map[string]string, len(configured)+len(extra))
	for k, v := range configured {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	keyValues := make([]format.KeyValue, 0, len(merged))
	for k, v := range merged {
		keyValues = append(keyValues, format.KeyValue{Key: k, Value: v})
	}
	return keyValues
}

// fileWriterColumn accumulates the values, repetition levels, and
// definition levels of a single leaf column across one row group.
type fileWriterColumn struct {
	path               columnPath
	columnIndex        int
	typ                Type
	maxRepetitionLevel int8
	maxDefinitionLevel int8

	repetitionLevels []int8
	definitionLevels []int8
	buffer           PageBuffer

	numValues int64
	numNulls  int64
	numRows   int64

	dataPageOffset int64
}

func newFileWriterColumn(leaf leafColumn, bufferSize int) *fileWriterColumn {
	return &fileWriterColumn{
		path:               leaf.path,
		columnIndex:        leaf.columnIndex,
		typ:                leaf.node.Type(),
		maxRepetitionLevel: leaf.maxRepetitionLevel,
		maxDefinitionLevel: leaf.maxDefinitionLevel,
		buffer:             newPageBuffer(leaf.node.Type(), bufferSize),
	}
}

func (col *fileWriterColumn) append(v Value) error {
	col.repetitionLevels = append(col.repetitionLevels, v.RepetitionLevel())
	col.definitionLevels = append(col.definitionLevels, v.DefinitionLevel())

	if v.RepetitionLevel() == 0 {
		col.numRows++
	}

	if v.DefinitionLevel() < col.maxDefinitionLevel {
		col.numNulls++
		return nil
	}

	if err := col.buffer.WriteValue(v); err != nil {
		return errkind.Wrapf(errkind.IO, err, "writing value to parquet column %d", col.columnIndex)
	}
	col.numValues++
	return nil
}

// flush encodes the buffered rows of the column into a single data page and
// writes it (and, implicitly, opens the column chunk) to fw's writer,
// returning the column chunk metadata to be recorded in the row group.
func (col *fileWriterColumn) flush(fw *FileWriter) (format.ColumnChunk, error) {
	codec := lookupCompressionCodec(fw.config.Compression)
	version := fw.config.DataPageVersion

	col.dataPageOffset = fw.offset

	var page []byte
	var header format.PageHeader
	var err error

	if version == 2 {
		page, header, err = col.encodePageV2(codec)
	} else {
		page, header, err = col.encodePageV1(codec)
	}
	if err != nil {
		return format.ColumnChunk{}, err
	}

	if err := header.WriteTo(fw.writer); err != nil {
		return format.ColumnChunk{}, errkind.Wrapf(errkind.OutOfSpec, err, "encoding parquet page header")
	}
	fw.offset += int64(headerSize(&header))
	if err := fw.write(page); err != nil {
		return format.ColumnChunk{}, err
	}

	meta := format.ColumnMetaData{
		Type:                  *col.typ.PhyiscalType(),
		Encodings:             []format.Encoding{format.Plain, format.RLE},
		PathInSchema:          []string(col.path),
		Codec:                 codec.CompressionCodec(),
		NumValues:             col.numValues + col.numNulls,
		TotalUncompressedSize: int64(header.UncompressedPageSize),
		TotalCompressedSize:   int64(header.CompressedPageSize),
		DataPageOffset:        col.dataPageOffset,
	}

	return format.ColumnChunk{
		MetaData:    meta,
		HasMetaData: true,
	}, nil
}

// headerSize re-serializes the header to determine how many bytes it
// occupied in the stream, since PageHeader.WriteTo does not report it.
func headerSize(header *format.PageHeader) int {
	buf := new(bytes.Buffer)
	header.WriteTo(buf)
	return buf.Len()
}

func (col *fileWriterColumn) encodePageV1(codec compress.Codec) ([]byte, format.PageHeader, error) {
	body := new(bytes.Buffer)

	if repBytes, err := encodeLevelsV1(col.repetitionLevels, col.maxRepetitionLevel); err != nil {
		return nil, format.PageHeader{}, err
	} else {
		body.Write(repBytes)
	}
	if defBytes, err := encodeLevelsV1(col.definitionLevels, col.maxDefinitionLevel); err != nil {
		return nil, format.PageHeader{}, err
	} else {
		body.Write(defBytes)
	}

	values := new(bytes.Buffer)
	enc := plain.NewEncoder(values)
	numValues, _, err := col.buffer.WriteTo(enc)
	if err != nil {
		return nil, format.PageHeader{}, errkind.Wrapf(errkind.OutOfSpec, err, "encoding parquet page values")
	}
	body.Write(values.Bytes())

	uncompressed := body.Bytes()
	compressed, err := codec.Encode(nil, uncompressed)
	if err != nil {
		return nil, format.PageHeader{}, errkind.Wrapf(errkind.OutOfSpec, err, "compressing parquet page")
	}

	header := format.PageHeader{
		Type:                 format.DataPage,
		UncompressedPageSize: int32(len(uncompressed)),
		CompressedPageSize:   int32(len(compressed)),
		DataPageHeader: &format.DataPageHeader{
			NumValues:               int32(numValues + int(col.numNulls)),
			Encoding:                format.Plain,
			DefinitionLevelEncoding: format.RLE,
			RepetitionLevelEncoding: format.RLE,
		},
	}

	col.reset()
	return compressed, header, nil
}

func (col *fileWriterColumn) encodePageV2(codec compress.Codec) ([]byte, format.PageHeader, error) {
	repBytes, err := encodeLevelsV2(col.repetitionLevels, col.maxRepetitionLevel)
	if err != nil {
		return nil, format.PageHeader{}, err
	}
	defBytes, err := encodeLevelsV2(col.definitionLevels, col.maxDefinitionLevel)
	if err != nil {
		return nil, format.PageHeader{}, err
	}

	values := new(bytes.Buffer)
	enc := plain.NewEncoder(values)
	numValues, _, err := col.buffer.WriteTo(enc)
	if err != nil {
		return nil, format.PageHeader{}, errkind.Wrapf(errkind.OutOfSpec, err, "encoding parquet page values")
	}

	uncompressedValues := values.Bytes()
	compressedValues, err := codec.Encode(nil, uncompressedValues)
	if err != nil {
		return nil, format.PageHeader{}, errkind.Wrapf(errkind.OutOfSpec, err, "compressing parquet page")
	}

	page := new(bytes.Buffer)
	page.Write(repBytes)
	page.Write(defBytes)
	page.Write(compressedValues)

	header := format.PageHeader{
		Type:                 format.DataPageV2,
		UncompressedPageSize: int32(len(repBytes) + len(defBytes) + len(uncompressedValues)),
		CompressedPageSize:   int32(page.Len()),
		DataPageHeaderV2: &format.DataPageHeaderV2{
			NumValues:                  int32(numValues + int(col.numNulls)),
			NumNulls:                   int32(col.numNulls),
			NumRows:                    int32(col.numRows),
			Encoding:                   format.Plain,
			DefinitionLevelsByteLength: int32(len(defBytes)),
			RepetitionLevelsByteLength: int32(len(repBytes)),
			IsCompressed:               codec.CompressionCodec() != format.Uncompressed,
			HasIsCompressed:            true,
		},
	}

	col.reset()
	return page.Bytes(), header, nil
}

func (col *fileWriterColumn) reset() {
	col.repetitionLevels = col.repetitionLevels[:0]
	col.definitionLevels = col.definitionLevels[:0]
	col.numValues = 0
	col.numNulls = 0
	col.numRows = 0
}

// encodeLevelsV1 encodes a repetition or definition level section the way a
// V1 data page expects to find it: a 4-byte little-endian length prefix
// followed by the RLE/bit-packing hybrid encoding of the levels. A column
// that cannot carry the level (maxLevel of zero) has no section at all.
func encodeLevelsV1(levels []int8, maxLevel int8) ([]byte, error) {
	if maxLevel <= 0 {
		return nil, nil
	}
	buf := new(bytes.Buffer)
	buf.Write([]byte{0, 0, 0, 0})
	enc := rle.NewEncoder(buf)
	enc.SetBitWidth(bits.Len8(maxLevel))
	if err := enc.EncodeInt8(levels); err != nil {
		return nil, errkind.Wrapf(errkind.OutOfSpec, err, "encoding parquet levels")
	}
	b := buf.Bytes()
	binary.LittleEndian.PutUint32(b, uint32(len(b)-4))
	return b, nil
}

// encodeLevelsV2 encodes a repetition or definition level section the way a
// V2 data page expects to find it: the bare RLE/bit-packing hybrid encoding,
// uncompressed, with no length prefix (the header carries the length
// explicitly instead).
func encodeLevelsV2(levels []int8, maxLevel int8) ([]byte, error) {
	if maxLevel <= 0 {
		return nil, nil
	}
	buf := new(bytes.Buffer)
	enc := rle.NewEncoder(buf)
	enc.SetBitWidth(bits.Len8(maxLevel))
	if err := enc.EncodeInt8(levels); err != nil {
		return nil, errkind.Wrapf(errkind.OutOfSpec, err, "encoding parquet levels")
	}
	return buf.Bytes(), nil
}

// newPageBuffer constructs the PageBuffer implementation appropriate for the
// physical type of typ.
func newPageBuffer(typ Type, bufferSize int) PageBuffer {
	switch typ.Kind() {
	case Boolean:
		return newBooleanPageBuffer(typ, bufferSize)
	case Int32:
		return newInt32PageBuffer(typ, bufferSize)
	case Int64:
		return newInt64PageBuffer(typ, bufferSize)
	case Int96:
		return newInt96PageBuffer(typ, bufferSize)
	case Float:
		return newFloatPageBuffer(typ, bufferSize)
	case Double:
		return newDoublePageBuffer(typ, bufferSize)
	case ByteArray:
		return newByteArrayPageBuffer(typ, bufferSize)
	case FixedLenByteArray:
		return newFixedLenByteArrayPageBuffer(typ, bufferSize)
	default:
		panic("cannot create parquet page buffer for unknown kind: " + typ.Kind().String())
	}
}

// schemaElementsOf flattens schema into the pre-order sequence of thrift
// SchemaElement values expected in a file's footer, starting with the root
// element.
func schemaElementsOf(schema *Schema) []format.SchemaElement {
	elements := make([]format.SchemaElement, 0, 1+numColumnsOf(schema))
	elements = append(elements, format.SchemaElement{
		Name:           schema.Name(),
		NumChildren:    int32(schema.NumChildren()),
		HasNumChildren: true,
	})
	return appendSchemaElements(elements, schema)
}

func appendSchemaElements(elements []format.SchemaElement, node Node) []format.SchemaElement {
	for _, name := range node.ChildNames() {
		child := node.ChildByName(name)
		elements = append(elements, schemaElementOf(name, child))
		if !isLeaf(child) {
			elements = appendSchemaElements(elements, child)
		}
	}
	return elements
}

func schemaElementOf(name string, node Node) format.SchemaElement {
	e := format.SchemaElement{Name: name}

	switch {
	case node.Optional():
		e.RepetitionType, e.HasRepetition = format.Optional, true
	case node.Repeated():
		e.RepetitionType, e.HasRepetition = format.Repeated, true
	default:
		e.RepetitionType, e.HasRepetition = format.Required, true
	}

	if !isLeaf(node) {
		e.NumChildren, e.HasNumChildren = int32(node.NumChildren()), true
		return e
	}

	typ := node.Type()
	if t := typ.PhyiscalType(); t != nil {
		e.Type = *t
	}
	if typ.Kind() == FixedLenByteArray {
		e.TypeLength, e.HasTypeLength = int32(typ.Length()), true
	}
	if ct := typ.ConvertedType(); ct != nil {
		e.ConvertedType, e.HasConverted = format.ConvertedType(*ct), true
	}
	return e
}

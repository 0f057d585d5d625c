package format

import (
	"github.com/parquetcore/parquet/internal/thrift"
)

// SchemaElement is one node of the flattened schema tree carried in
// FileMetaData.Schema (a pre-order traversal: the root group first, then
// its descendants).
type SchemaElement struct {
	Type           Type
	TypeLength     int32
	HasTypeLength  bool
	RepetitionType FieldRepetitionType
	HasRepetition  bool
	Name           string
	NumChildren    int32
	HasNumChildren bool
	ConvertedType  ConvertedType
	HasConverted   bool
	FieldID        int32
	HasFieldID     bool
}

func (e *SchemaElement) IsLeaf() bool { return !e.HasNumChildren || e.NumChildren == 0 }

// Statistics carries the per-page or per-column-chunk min/max/null/distinct
// aggregates, in the physical binary representation of the column's type.
type Statistics struct {
	Max           []byte
	Min           []byte
	NullCount     int64
	HasNullCount  bool
	DistinctCount int64
	HasDistinct   bool
	MaxValue      []byte
	MinValue      []byte
}

// ColumnMetaData describes one column chunk's encoding, compression, and
// byte-range layout within the file.
type ColumnMetaData struct {
	Type                  Type
	Encodings             []Encoding
	PathInSchema          []string
	Codec                 CompressionCodec
	NumValues             int64
	TotalUncompressedSize int64
	TotalCompressedSize   int64
	KeyValueMetadata      []KeyValue
	DataPageOffset        int64
	IndexPageOffset       int64
	HasIndexPageOffset    bool
	DictionaryPageOffset  int64
	HasDictionaryOffset   bool
	Statistics            Statistics
	HasStatistics         bool
	BloomFilterOffset     int64
	HasBloomFilterOffset  bool
}

// ColumnChunk is an entry of RowGroup.Columns: the column's metadata plus
// the file offset at which that metadata (and the column's data) begins.
type ColumnChunk struct {
	FilePath           string
	HasFilePath         bool
	FileOffset          int64
	MetaData            ColumnMetaData
	HasMetaData         bool
	OffsetIndexOffset   int64
	HasOffsetIndex      bool
	OffsetIndexLength   int32
	ColumnIndexOffset   int64
	HasColumnIndex      bool
	ColumnIndexLength   int32
}

// RowGroup is a horizontal partition of the table: a set of column chunks
// sharing the same row count.
type RowGroup struct {
	Columns        []ColumnChunk
	TotalByteSize  int64
	NumRows        int64
	SortingColumns []SortingColumn
	// Ordinal is the row group's position among its file's row groups; it is
	// carried explicitly on the wire so tools that split row groups across
	// files don't lose a group's original position.
	Ordinal    int16
	HasOrdinal bool
}

// FileMetaData is the root Thrift structure stored in the file footer.
type FileMetaData struct {
	Version          int32
	Schema           []SchemaElement
	NumRows          int64
	RowGroups        []RowGroup
	KeyValueMetadata []KeyValue
	CreatedBy        string
	HasCreatedBy     bool
}

func (e *SchemaElement) writeTo(w *thrift.Writer) error {
	w.WriteStructBegin()
	if err := e.writeToBody(w); err != nil {
		return err
	}
	return w.WriteStructEnd()
}

// writeToBody writes the struct's fields without the enclosing begin/end,
// for use as a list element whose begin/end the caller already opened.
func (e *SchemaElement) writeToBody(w *thrift.Writer) error {
	if e.IsLeaf() || !e.HasNumChildren {
		if err := w.WriteI32(1, int32(e.Type)); err != nil {
			return err
		}
	}
	if e.HasTypeLength {
		if err := w.WriteI32(2, e.TypeLength); err != nil {
			return err
		}
	}
	if e.HasRepetition {
		if err := w.WriteI32(3, int32(e.RepetitionType)); err != nil {
			return err
		}
	}
	if err := w.WriteString(4, e.Name); err != nil {
		return err
	}
	if e.HasNumChildren {
		if err := w.WriteI32(5, e.NumChildren); err != nil {
			return err
		}
	}
	if e.HasConverted {
		if err := w.WriteI32(6, int32(e.ConvertedType)); err != nil {
			return err
		}
	}
	if e.HasFieldID {
		if err := w.WriteI32(7, e.FieldID); err != nil {
			return err
		}
	}
	return nil
}

func (e *SchemaElement) readFrom(r *thrift.Reader) error {
	r.ReadStructBegin()
	for {
		id, typ, err := r.ReadFieldBegin()
		if err != nil {
			return err
		}
		if typ == 0 {
			break
		}
		switch id {
		case 1:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			e.Type = Type(v)
		case 2:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			e.TypeLength, e.HasTypeLength = v, true
		case 3:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			e.RepetitionType, e.HasRepetition = FieldRepetitionType(v), true
		case 4:
			v, err := r.ReadString(4096)
			if err != nil {
				return err
			}
			e.Name = v
		case 5:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			e.NumChildren, e.HasNumChildren = v, true
		case 6:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			e.ConvertedType, e.HasConverted = ConvertedType(v), true
		case 7:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			e.FieldID, e.HasFieldID = v, true
		default:
			if err := r.Skip(typ); err != nil {
				return err
			}
		}
	}
	r.ReadStructEnd()
	return nil
}

func (s *Statistics) writeTo(w *thrift.Writer) error {
	w.WriteStructBegin()
	if s.Max != nil {
		if err := w.WriteBinary(1, s.Max); err != nil {
			return err
		}
	}
	if s.Min != nil {
		if err := w.WriteBinary(2, s.Min); err != nil {
			return err
		}
	}
	if s.HasNullCount {
		if err := w.WriteI64(3, s.NullCount); err != nil {
			return err
		}
	}
	if s.HasDistinct {
		if err := w.WriteI64(4, s.DistinctCount); err != nil {
			return err
		}
	}
	if s.MaxValue != nil {
		if err := w.WriteBinary(5, s.MaxValue); err != nil {
			return err
		}
	}
	if s.MinValue != nil {
		if err := w.WriteBinary(6, s.MinValue); err != nil {
			return err
		}
	}
	return w.WriteStructEnd()
}

func (s *Statistics) readFrom(r *thrift.Reader) error {
	r.ReadStructBegin()
	for {
		id, typ, err := r.ReadFieldBegin()
		if err != nil {
			return err
		}
		if typ == 0 {
			break
		}
		switch id {
		case 1:
			v, err := r.ReadBinary(1 << 20)
			if err != nil {
				return err
			}
			s.Max = v
		case 2:
			v, err := r.ReadBinary(1 << 20)
			if err != nil {
				return err
			}
			s.Min = v
		case 3:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			s.NullCount, s.HasNullCount = v, true
		case 4:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			s.DistinctCount, s.HasDistinct = v, true
		case 5:
			v, err := r.ReadBinary(1 << 20)
			if err != nil {
				return err
			}
			s.MaxValue = v
		case 6:
			v, err := r.ReadBinary(1 << 20)
			if err != nil {
				return err
			}
			s.MinValue = v
		default:
			if err := r.Skip(typ); err != nil {
				return err
			}
		}
	}
	r.ReadStructEnd()
	return nil
}

func (c *ColumnMetaData) writeTo(w *thrift.Writer) error {
	w.WriteStructBegin()
	if err := w.WriteI32(1, int32(c.Type)); err != nil {
		return err
	}
	if err := w.WriteListHeader(2, thrift.TypeI32, len(c.Encodings)); err != nil {
		return err
	}
	for _, e := range c.Encodings {
		if err := w.WriteListElemI32(int32(e)); err != nil {
			return err
		}
	}
	if err := w.WriteListHeader(3, thrift.TypeBinary, len(c.PathInSchema)); err != nil {
		return err
	}
	for _, p := range c.PathInSchema {
		if err := w.WriteListElemBinary([]byte(p)); err != nil {
			return err
		}
	}
	if err := w.WriteI32(4, int32(c.Codec)); err != nil {
		return err
	}
	if err := w.WriteI64(5, c.NumValues); err != nil {
		return err
	}
	if err := w.WriteI64(6, c.TotalUncompressedSize); err != nil {
		return err
	}
	if err := w.WriteI64(7, c.TotalCompressedSize); err != nil {
		return err
	}
	if len(c.KeyValueMetadata) > 0 {
		if err := w.WriteListHeader(8, thrift.TypeStruct, len(c.KeyValueMetadata)); err != nil {
			return err
		}
		for _, kv := range c.KeyValueMetadata {
			w.WriteListElemStructBegin()
			if err := w.WriteString(1, kv.Key); err != nil {
				return err
			}
			if err := w.WriteString(2, kv.Value); err != nil {
				return err
			}
			if err := w.WriteListElemStructEnd(); err != nil {
				return err
			}
		}
	}
	if err := w.WriteI64(9, c.DataPageOffset); err != nil {
		return err
	}
	if c.HasIndexPageOffset {
		if err := w.WriteI64(10, c.IndexPageOffset); err != nil {
			return err
		}
	}
	if c.HasDictionaryOffset {
		if err := w.WriteI64(11, c.DictionaryPageOffset); err != nil {
			return err
		}
	}
	if c.HasStatistics {
		if err := w.FieldHeader(12, thrift.TypeStruct); err != nil {
			return err
		}
		if err := c.Statistics.writeTo(w); err != nil {
			return err
		}
	}
	if c.HasBloomFilterOffset {
		if err := w.WriteI64(14, c.BloomFilterOffset); err != nil {
			return err
		}
	}
	return w.WriteStructEnd()
}

func (c *ColumnMetaData) readFrom(r *thrift.Reader) error {
	r.ReadStructBegin()
	for {
		id, typ, err := r.ReadFieldBegin()
		if err != nil {
			return err
		}
		if typ == 0 {
			break
		}
		switch id {
		case 1:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			c.Type = Type(v)
		case 2:
			_, size, err := r.ReadListHeader()
			if err != nil {
				return err
			}
			c.Encodings = make([]Encoding, size)
			for i := range c.Encodings {
				v, err := r.ReadI32()
				if err != nil {
					return err
				}
				c.Encodings[i] = Encoding(v)
			}
		case 3:
			_, size, err := r.ReadListHeader()
			if err != nil {
				return err
			}
			c.PathInSchema = make([]string, size)
			for i := range c.PathInSchema {
				v, err := r.ReadString(4096)
				if err != nil {
					return err
				}
				c.PathInSchema[i] = v
			}
		case 4:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			c.Codec = CompressionCodec(v)
		case 5:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.NumValues = v
		case 6:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.TotalUncompressedSize = v
		case 7:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.TotalCompressedSize = v
		case 8:
			_, size, err := r.ReadListHeader()
			if err != nil {
				return err
			}
			c.KeyValueMetadata = make([]KeyValue, size)
			for i := range c.KeyValueMetadata {
				r.ReadStructBegin()
				for {
					fid, ftyp, err := r.ReadFieldBegin()
					if err != nil {
						return err
					}
					if ftyp == 0 {
						break
					}
					switch fid {
					case 1:
						v, err := r.ReadString(4096)
						if err != nil {
							return err
						}
						c.KeyValueMetadata[i].Key = v
					case 2:
						v, err := r.ReadString(1 << 20)
						if err != nil {
							return err
						}
						c.KeyValueMetadata[i].Value = v
					default:
						if err := r.Skip(ftyp); err != nil {
							return err
						}
					}
				}
				r.ReadStructEnd()
			}
		case 9:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.DataPageOffset = v
		case 10:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.IndexPageOffset, c.HasIndexPageOffset = v, true
		case 11:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.DictionaryPageOffset, c.HasDictionaryOffset = v, true
		case 12:
			if err := c.Statistics.readFrom(r); err != nil {
				return err
			}
			c.HasStatistics = true
		case 14:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.BloomFilterOffset, c.HasBloomFilterOffset = v, true
		default:
			if err := r.Skip(typ); err != nil {
				return err
			}
		}
	}
	r.ReadStructEnd()
	return nil
}

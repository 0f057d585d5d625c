package format

import (
	"fmt"
	"io"

	"github.com/parquetcore/parquet/internal/thrift"
)

func (c *ColumnChunk) writeTo(w *thrift.Writer) error {
	w.WriteStructBegin()
	if c.HasFilePath {
		if err := w.WriteString(1, c.FilePath); err != nil {
			return err
		}
	}
	if err := w.WriteI64(2, c.FileOffset); err != nil {
		return err
	}
	if c.HasMetaData {
		if err := w.FieldHeader(3, thrift.TypeStruct); err != nil {
			return err
		}
		if err := c.MetaData.writeTo(w); err != nil {
			return err
		}
	}
	if c.HasOffsetIndex {
		if err := w.WriteI64(4, c.OffsetIndexOffset); err != nil {
			return err
		}
		if err := w.WriteI32(5, c.OffsetIndexLength); err != nil {
			return err
		}
	}
	if c.HasColumnIndex {
		if err := w.WriteI64(6, c.ColumnIndexOffset); err != nil {
			return err
		}
		if err := w.WriteI32(7, c.ColumnIndexLength); err != nil {
			return err
		}
	}
	return w.WriteStructEnd()
}

func (c *ColumnChunk) readFrom(r *thrift.Reader) error {
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
			v, err := r.ReadString(4096)
			if err != nil {
				return err
			}
			c.FilePath, c.HasFilePath = v, true
		case 2:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.FileOffset = v
		case 3:
			if err := c.MetaData.readFrom(r); err != nil {
				return err
			}
			c.HasMetaData = true
		case 4:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.OffsetIndexOffset, c.HasOffsetIndex = v, true
		case 5:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			c.OffsetIndexLength = v
		case 6:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			c.ColumnIndexOffset, c.HasColumnIndex = v, true
		case 7:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			c.ColumnIndexLength = v
		default:
			if err := r.Skip(typ); err != nil {
				return err
			}
		}
	}
	r.ReadStructEnd()
	return nil
}

func (g *RowGroup) writeTo(w *thrift.Writer) error {
	w.WriteStructBegin()
	if err := g.writeToBody(w); err != nil {
		return err
	}
	return w.WriteStructEnd()
}

// writeToBody writes the struct's fields without the enclosing begin/end,
// for use as a list element whose begin/end the caller already opened.
func (g *RowGroup) writeToBody(w *thrift.Writer) error {
	if err := w.WriteListHeader(1, thrift.TypeStruct, len(g.Columns)); err != nil {
		return err
	}
	for i := range g.Columns {
		w.WriteListElemStructBegin()
		if err := g.Columns[i].writeToBody(w); err != nil {
			return err
		}
		if err := w.WriteListElemStructEnd(); err != nil {
			return err
		}
	}
	if err := w.WriteI64(2, g.TotalByteSize); err != nil {
		return err
	}
	if err := w.WriteI64(3, g.NumRows); err != nil {
		return err
	}
	if len(g.SortingColumns) > 0 {
		if err := w.WriteListHeader(4, thrift.TypeStruct, len(g.SortingColumns)); err != nil {
			return err
		}
		for _, sc := range g.SortingColumns {
			w.WriteListElemStructBegin()
			if err := w.WriteI32(1, sc.ColumnIdx); err != nil {
				return err
			}
			if err := w.WriteBool(2, sc.Descending); err != nil {
				return err
			}
			if err := w.WriteBool(3, sc.NullsFirst); err != nil {
				return err
			}
			if err := w.WriteListElemStructEnd(); err != nil {
				return err
			}
		}
	}
	if g.HasOrdinal {
		if err := w.WriteI16(7, g.Ordinal); err != nil {
			return err
		}
	}
	return nil
}

// writeToBody writes the struct's fields without the outer begin/end, for
// use as a list element (the caller already opened the struct).
func (c *ColumnChunk) writeToBody(w *thrift.Writer) error {
	if c.HasFilePath {
		if err := w.WriteString(1, c.FilePath); err != nil {
			return err
		}
	}
	if err := w.WriteI64(2, c.FileOffset); err != nil {
		return err
	}
	if c.HasMetaData {
		if err := w.FieldHeader(3, thrift.TypeStruct); err != nil {
			return err
		}
		if err := c.MetaData.writeTo(w); err != nil {
			return err
		}
	}
	if c.HasOffsetIndex {
		if err := w.WriteI64(4, c.OffsetIndexOffset); err != nil {
			return err
		}
		if err := w.WriteI32(5, c.OffsetIndexLength); err != nil {
			return err
		}
	}
	if c.HasColumnIndex {
		if err := w.WriteI64(6, c.ColumnIndexOffset); err != nil {
			return err
		}
		if err := w.WriteI32(7, c.ColumnIndexLength); err != nil {
			return err
		}
	}
	return nil
}

func (g *RowGroup) readFrom(r *thrift.Reader) error {
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
			_, size, err := r.ReadListHeader()
			if err != nil {
				return err
			}
			g.Columns = make([]ColumnChunk, size)
			for i := range g.Columns {
				if err := g.Columns[i].readFrom(r); err != nil {
					return err
				}
			}
		case 2:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			g.TotalByteSize = v
		case 3:
			v, err := r.ReadI64()
			if err != nil {
				return err
			}
			g.NumRows = v
		case 4:
			_, size, err := r.ReadListHeader()
			if err != nil {
				return err
			}
			g.SortingColumns = make([]SortingColumn, size)
			for i := range g.SortingColumns {
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
						v, err := r.ReadI32()
						if err != nil {
							return err
						}
						g.SortingColumns[i].ColumnIdx = v
					case 2:
						g.SortingColumns[i].Descending = r.ReadBool(ftyp)
					case 3:
						g.SortingColumns[i].NullsFirst = r.ReadBool(ftyp)
					default:
						if err := r.Skip(ftyp); err != nil {
							return err
						}
					}
				}
				r.ReadStructEnd()
			}
		case 7:
			v, err := r.ReadI16()
			if err != nil {
				return err
			}
			g.Ordinal, g.HasOrdinal = v, true
		default:
			if err := r.Skip(typ); err != nil {
				return err
			}
		}
	}
	r.ReadStructEnd()
	return nil
}

// WriteFileMetaData serializes m using the Thrift compact protocol, the
// format required by the footer (§6 of the spec).
func WriteFileMetaData(w io.Writer, m *FileMetaData) error {
	tw := thrift.NewWriter(w)
	tw.WriteStructBegin()
	if err := tw.WriteI32(1, m.Version); err != nil {
		return err
	}
	if err := tw.WriteListHeader(2, thrift.TypeStruct, len(m.Schema)); err != nil {
		return err
	}
	for i := range m.Schema {
		tw.WriteListElemStructBegin()
		if err := m.Schema[i].writeToBody(tw); err != nil {
			return err
		}
		if err := tw.WriteListElemStructEnd(); err != nil {
			return err
		}
	}
	if err := tw.WriteI64(3, m.NumRows); err != nil {
		return err
	}
	if err := tw.WriteListHeader(4, thrift.TypeStruct, len(m.RowGroups)); err != nil {
		return err
	}
	for i := range m.RowGroups {
		tw.WriteListElemStructBegin()
		if err := m.RowGroups[i].writeToBody(tw); err != nil {
			return err
		}
		if err := tw.WriteListElemStructEnd(); err != nil {
			return err
		}
	}
	if len(m.KeyValueMetadata) > 0 {
		if err := tw.WriteListHeader(5, thrift.TypeStruct, len(m.KeyValueMetadata)); err != nil {
			return err
		}
		for _, kv := range m.KeyValueMetadata {
			tw.WriteListElemStructBegin()
			if err := tw.WriteString(1, kv.Key); err != nil {
				return err
			}
			if err := tw.WriteString(2, kv.Value); err != nil {
				return err
			}
			if err := tw.WriteListElemStructEnd(); err != nil {
				return err
			}
		}
	}
	if m.HasCreatedBy {
		if err := tw.WriteString(6, m.CreatedBy); err != nil {
			return err
		}
	}
	return tw.WriteStructEnd()
}

// ReadFileMetaData deserializes a FileMetaData footer from r. maxStringLen
// bounds the footer's key/value metadata strings and created_by; the nested
// structures apply fixed limits of their own (4096 bytes for names, paths and
// column metadata keys, 1 MiB for column metadata values and statistics),
// matching the "page-header thrift deserializer must cap its internal
// allocations" requirement of spec.md §5.
func ReadFileMetaData(r io.Reader, maxStringLen int) (*FileMetaData, error) {
	tr := thrift.NewReader(r)
	tr.ReadStructBegin()
	m := &FileMetaData{}
	for {
		id, typ, err := tr.ReadFieldBegin()
		if err != nil {
			return nil, err
		}
		if typ == 0 {
			break
		}
		switch id {
		case 1:
			v, err := tr.ReadI32()
			if err != nil {
				return nil, err
			}
			m.Version = v
		case 2:
			_, size, err := tr.ReadListHeader()
			if err != nil {
				return nil, err
			}
			m.Schema = make([]SchemaElement, size)
			for i := range m.Schema {
				if err := m.Schema[i].readFrom(tr); err != nil {
					return nil, err
				}
			}
		case 3:
			v, err := tr.ReadI64()
			if err != nil {
				return nil, err
			}
			m.NumRows = v
		case 4:
			_, size, err := tr.ReadListHeader()
			if err != nil {
				return nil, err
			}
			m.RowGroups = make([]RowGroup, size)
			for i := range m.RowGroups {
				if err := m.RowGroups[i].readFrom(tr); err != nil {
					return nil, err
				}
			}
		case 5:
			_, size, err := tr.ReadListHeader()
			if err != nil {
				return nil, err
			}
			m.KeyValueMetadata = make([]KeyValue, size)
			for i := range m.KeyValueMetadata {
				tr.ReadStructBegin()
				for {
					fid, ftyp, err := tr.ReadFieldBegin()
					if err != nil {
						return nil, err
					}
					if ftyp == 0 {
						break
					}
					switch fid {
					case 1:
						v, err := tr.ReadString(maxStringLen)
						if err != nil {
							return nil, err
						}
						m.KeyValueMetadata[i].Key = v
					case 2:
						v, err := tr.ReadString(maxStringLen)
						if err != nil {
							return nil, err
						}
						m.KeyValueMetadata[i].Value = v
					default:
						if err := tr.Skip(ftyp); err != nil {
							return nil, err
						}
					}
				}
				tr.ReadStructEnd()
			}
		case 6:
			v, err := tr.ReadString(maxStringLen)
			if err != nil {
				return nil, err
			}
			m.CreatedBy, m.HasCreatedBy = v, true
		default:
			if err := tr.Skip(typ); err != nil {
				return nil, err
			}
		}
	}
	tr.ReadStructEnd()
	if len(m.Schema) == 0 {
		return nil, fmt.Errorf("parquet metadata has an empty schema")
	}
	return m, nil
}

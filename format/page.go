package format

import (
	"io"

	"github.com/parquetcore/parquet/internal/thrift"
)

// DataPageHeader carries the fields specific to a V1 data page.
type DataPageHeader struct {
	NumValues               int32
	Encoding                Encoding
	DefinitionLevelEncoding Encoding
	RepetitionLevelEncoding Encoding
	Statistics               Statistics
	HasStatistics             bool
}

func (h *DataPageHeader) writeTo(w *thrift.Writer) error {
	w.WriteStructBegin()
	if err := w.WriteI32(1, h.NumValues); err != nil {
		return err
	}
	if err := w.WriteI32(2, int32(h.Encoding)); err != nil {
		return err
	}
	if err := w.WriteI32(3, int32(h.DefinitionLevelEncoding)); err != nil {
		return err
	}
	if err := w.WriteI32(4, int32(h.RepetitionLevelEncoding)); err != nil {
		return err
	}
	if h.HasStatistics {
		if err := w.FieldHeader(5, thrift.TypeStruct); err != nil {
			return err
		}
		if err := h.Statistics.writeTo(w); err != nil {
			return err
		}
	}
	return w.WriteStructEnd()
}

func (h *DataPageHeader) readFrom(r *thrift.Reader) error {
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
			h.NumValues = v
		case 2:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.Encoding = Encoding(v)
		case 3:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.DefinitionLevelEncoding = Encoding(v)
		case 4:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.RepetitionLevelEncoding = Encoding(v)
		case 5:
			if err := h.Statistics.readFrom(r); err != nil {
				return err
			}
			h.HasStatistics = true
		default:
			if err := r.Skip(typ); err != nil {
				return err
			}
		}
	}
	r.ReadStructEnd()
	return nil
}

// DataPageHeaderV2 carries the fields specific to a V2 data page, which
// separates repetition/definition levels from the (possibly uncompressed)
// value stream.
type DataPageHeaderV2 struct {
	NumValues                 int32
	NumNulls                   int32
	NumRows                    int32
	Encoding                   Encoding
	DefinitionLevelsByteLength int32
	RepetitionLevelsByteLength int32
	IsCompressed               bool
	HasIsCompressed            bool
	Statistics                 Statistics
	HasStatistics              bool
}

func (h *DataPageHeaderV2) writeTo(w *thrift.Writer) error {
	w.WriteStructBegin()
	if err := w.WriteI32(1, h.NumValues); err != nil {
		return err
	}
	if err := w.WriteI32(2, h.NumNulls); err != nil {
		return err
	}
	if err := w.WriteI32(3, h.NumRows); err != nil {
		return err
	}
	if err := w.WriteI32(4, int32(h.Encoding)); err != nil {
		return err
	}
	if err := w.WriteI32(5, h.DefinitionLevelsByteLength); err != nil {
		return err
	}
	if err := w.WriteI32(6, h.RepetitionLevelsByteLength); err != nil {
		return err
	}
	// is_compressed defaults to true per parquet.thrift; only write when false.
	if h.HasIsCompressed && !h.IsCompressed {
		if err := w.WriteBool(7, h.IsCompressed); err != nil {
			return err
		}
	}
	if h.HasStatistics {
		if err := w.FieldHeader(8, thrift.TypeStruct); err != nil {
			return err
		}
		if err := h.Statistics.writeTo(w); err != nil {
			return err
		}
	}
	return w.WriteStructEnd()
}

func (h *DataPageHeaderV2) readFrom(r *thrift.Reader) error {
	r.ReadStructBegin()
	// is_compressed defaults to true when absent from the wire.
	h.IsCompressed, h.HasIsCompressed = true, true
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
			h.NumValues = v
		case 2:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.NumNulls = v
		case 3:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.NumRows = v
		case 4:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.Encoding = Encoding(v)
		case 5:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.DefinitionLevelsByteLength = v
		case 6:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.RepetitionLevelsByteLength = v
		case 7:
			h.IsCompressed = r.ReadBool(typ)
		case 8:
			if err := h.Statistics.readFrom(r); err != nil {
				return err
			}
			h.HasStatistics = true
		default:
			if err := r.Skip(typ); err != nil {
				return err
			}
		}
	}
	r.ReadStructEnd()
	return nil
}

// DictionaryPageHeader carries the fields specific to a dictionary page.
type DictionaryPageHeader struct {
	NumValues int32
	Encoding  Encoding
	IsSorted  bool
}

func (h *DictionaryPageHeader) writeTo(w *thrift.Writer) error {
	w.WriteStructBegin()
	if err := w.WriteI32(1, h.NumValues); err != nil {
		return err
	}
	if err := w.WriteI32(2, int32(h.Encoding)); err != nil {
		return err
	}
	if h.IsSorted {
		if err := w.WriteBool(3, h.IsSorted); err != nil {
			return err
		}
	}
	return w.WriteStructEnd()
}

func (h *DictionaryPageHeader) readFrom(r *thrift.Reader) error {
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
			h.NumValues = v
		case 2:
			v, err := r.ReadI32()
			if err != nil {
				return err
			}
			h.Encoding = Encoding(v)
		case 3:
			h.IsSorted = r.ReadBool(typ)
		default:
			if err := r.Skip(typ); err != nil {
				return err
			}
		}
	}
	r.ReadStructEnd()
	return nil
}

// PageHeader is the common envelope preceding every page's serialized body:
// the page's type, its compressed/uncompressed sizes, an optional CRC, and
// exactly one of the type-specific header variants below.
type PageHeader struct {
	Type                 PageType
	UncompressedPageSize int32
	CompressedPageSize   int32
	CRC                  int32
	HasCRC               bool

	DataPageHeader       *DataPageHeader
	IndexPageHeader      *struct{} // index pages carry no fields of their own
	DictionaryPageHeader *DictionaryPageHeader
	DataPageHeaderV2     *DataPageHeaderV2
}

// WriteTo serializes the page header using the Thrift compact protocol.
func (h *PageHeader) WriteTo(w io.Writer) error {
	tw := thrift.NewWriter(w)
	tw.WriteStructBegin()
	if err := tw.WriteI32(1, int32(h.Type)); err != nil {
		return err
	}
	if err := tw.WriteI32(2, h.UncompressedPageSize); err != nil {
		return err
	}
	if err := tw.WriteI32(3, h.CompressedPageSize); err != nil {
		return err
	}
	if h.HasCRC {
		if err := tw.WriteI32(4, h.CRC); err != nil {
			return err
		}
	}
	if h.DataPageHeader != nil {
		if err := tw.FieldHeader(5, thrift.TypeStruct); err != nil {
			return err
		}
		if err := h.DataPageHeader.writeTo(tw); err != nil {
			return err
		}
	}
	if h.IndexPageHeader != nil {
		if err := tw.FieldHeader(6, thrift.TypeStruct); err != nil {
			return err
		}
		tw.WriteStructBegin()
		if err := tw.WriteStructEnd(); err != nil {
			return err
		}
	}
	if h.DictionaryPageHeader != nil {
		if err := tw.FieldHeader(7, thrift.TypeStruct); err != nil {
			return err
		}
		if err := h.DictionaryPageHeader.writeTo(tw); err != nil {
			return err
		}
	}
	if h.DataPageHeaderV2 != nil {
		if err := tw.FieldHeader(8, thrift.TypeStruct); err != nil {
			return err
		}
		if err := h.DataPageHeaderV2.writeTo(tw); err != nil {
			return err
		}
	}
	return tw.WriteStructEnd()
}

// ReadPageHeader reads and decodes a single page header from r.
func ReadPageHeader(r io.Reader) (*PageHeader, error) {
	tr := thrift.NewReader(r)
	tr.ReadStructBegin()
	h := &PageHeader{}
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
			h.Type = PageType(v)
		case 2:
			v, err := tr.ReadI32()
			if err != nil {
				return nil, err
			}
			h.UncompressedPageSize = v
		case 3:
			v, err := tr.ReadI32()
			if err != nil {
				return nil, err
			}
			h.CompressedPageSize = v
		case 4:
			v, err := tr.ReadI32()
			if err != nil {
				return nil, err
			}
			h.CRC, h.HasCRC = v, true
		case 5:
			h.DataPageHeader = &DataPageHeader{}
			if err := h.DataPageHeader.readFrom(tr); err != nil {
				return nil, err
			}
		case 6:
			tr.ReadStructBegin()
			for {
				_, ftyp, err := tr.ReadFieldBegin()
				if err != nil {
					return nil, err
				}
				if ftyp == 0 {
					break
				}
				if err := tr.Skip(ftyp); err != nil {
					return nil, err
				}
			}
			tr.ReadStructEnd()
			h.IndexPageHeader = &struct{}{}
		case 7:
			h.DictionaryPageHeader = &DictionaryPageHeader{}
			if err := h.DictionaryPageHeader.readFrom(tr); err != nil {
				return nil, err
			}
		case 8:
			h.DataPageHeaderV2 = &DataPageHeaderV2{}
			if err := h.DataPageHeaderV2.readFrom(tr); err != nil {
				return nil, err
			}
		default:
			if err := tr.Skip(typ); err != nil {
				return nil, err
			}
		}
	}
	tr.ReadStructEnd()
	return h, nil
}

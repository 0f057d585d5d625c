package format

import (
	"io"

	"github.com/parquetcore/parquet/internal/thrift"
)

// ColumnIndex carries per-page min/max statistics for one column chunk,
// enabling page pruning without reading the data pages themselves.
type ColumnIndex struct {
	NullPages     []bool
	MinValues     [][]byte
	MaxValues     [][]byte
	BoundaryOrder BoundaryOrder
	NullCounts    []int64
	HasNullCounts bool
}

// WriteTo serializes the column index using the Thrift compact protocol.
func (c *ColumnIndex) WriteTo(w io.Writer) error {
	tw := thrift.NewWriter(w)
	tw.WriteStructBegin()
	if err := tw.WriteListHeader(1, thrift.TypeBool, len(c.NullPages)); err != nil {
		return err
	}
	for _, v := range c.NullPages {
		if err := tw.WriteListElemBool(v); err != nil {
			return err
		}
	}
	if err := tw.WriteListHeader(2, thrift.TypeBinary, len(c.MinValues)); err != nil {
		return err
	}
	for _, v := range c.MinValues {
		if err := tw.WriteListElemBinary(v); err != nil {
			return err
		}
	}
	if err := tw.WriteListHeader(3, thrift.TypeBinary, len(c.MaxValues)); err != nil {
		return err
	}
	for _, v := range c.MaxValues {
		if err := tw.WriteListElemBinary(v); err != nil {
			return err
		}
	}
	if err := tw.WriteI32(4, int32(c.BoundaryOrder)); err != nil {
		return err
	}
	if c.HasNullCounts {
		if err := tw.WriteListHeader(5, thrift.TypeI64, len(c.NullCounts)); err != nil {
			return err
		}
		for _, v := range c.NullCounts {
			if err := tw.WriteListElemI64(v); err != nil {
				return err
			}
		}
	}
	return tw.WriteStructEnd()
}

// ReadColumnIndex decodes a ColumnIndex from r.
func ReadColumnIndex(r io.Reader) (*ColumnIndex, error) {
	tr := thrift.NewReader(r)
	tr.ReadStructBegin()
	c := &ColumnIndex{}
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
			_, size, err := tr.ReadListHeader()
			if err != nil {
				return nil, err
			}
			c.NullPages = make([]bool, size)
			for i := range c.NullPages {
				b, err := tr.ReadByte()
				if err != nil {
					return nil, err
				}
				c.NullPages[i] = b != 0
			}
		case 2:
			_, size, err := tr.ReadListHeader()
			if err != nil {
				return nil, err
			}
			c.MinValues = make([][]byte, size)
			for i := range c.MinValues {
				v, err := tr.ReadBinary(0)
				if err != nil {
					return nil, err
				}
				c.MinValues[i] = v
			}
		case 3:
			_, size, err := tr.ReadListHeader()
			if err != nil {
				return nil, err
			}
			c.MaxValues = make([][]byte, size)
			for i := range c.MaxValues {
				v, err := tr.ReadBinary(0)
				if err != nil {
					return nil, err
				}
				c.MaxValues[i] = v
			}
		case 4:
			v, err := tr.ReadI32()
			if err != nil {
				return nil, err
			}
			c.BoundaryOrder = BoundaryOrder(v)
		case 5:
			_, size, err := tr.ReadListHeader()
			if err != nil {
				return nil, err
			}
			c.NullCounts = make([]int64, size)
			for i := range c.NullCounts {
				v, err := tr.ReadI64()
				if err != nil {
					return nil, err
				}
				c.NullCounts[i] = v
			}
			c.HasNullCounts = true
		default:
			if err := tr.Skip(typ); err != nil {
				return nil, err
			}
		}
	}
	tr.ReadStructEnd()
	return c, nil
}

// PageLocation records where one page lives within its column chunk.
type PageLocation struct {
	Offset             int64
	CompressedPageSize int32
	FirstRowIndex      int64
}

// OffsetIndex carries the file location of every page in a column chunk, in
// page order, letting a reader seek directly to a page selected by row range
// or by a ColumnIndex predicate.
type OffsetIndex struct {
	PageLocations []PageLocation
}

// WriteTo serializes the offset index using the Thrift compact protocol.
func (o *OffsetIndex) WriteTo(w io.Writer) error {
	tw := thrift.NewWriter(w)
	tw.WriteStructBegin()
	if err := tw.WriteListHeader(1, thrift.TypeStruct, len(o.PageLocations)); err != nil {
		return err
	}
	for _, p := range o.PageLocations {
		tw.WriteListElemStructBegin()
		if err := tw.WriteI64(1, p.Offset); err != nil {
			return err
		}
		if err := tw.WriteI32(2, p.CompressedPageSize); err != nil {
			return err
		}
		if err := tw.WriteI64(3, p.FirstRowIndex); err != nil {
			return err
		}
		if err := tw.WriteListElemStructEnd(); err != nil {
			return err
		}
	}
	return tw.WriteStructEnd()
}

// ReadOffsetIndex decodes an OffsetIndex from r.
func ReadOffsetIndex(r io.Reader) (*OffsetIndex, error) {
	tr := thrift.NewReader(r)
	tr.ReadStructBegin()
	o := &OffsetIndex{}
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
			_, size, err := tr.ReadListHeader()
			if err != nil {
				return nil, err
			}
			o.PageLocations = make([]PageLocation, size)
			for i := range o.PageLocations {
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
						v, err := tr.ReadI64()
						if err != nil {
							return nil, err
						}
						o.PageLocations[i].Offset = v
					case 2:
						v, err := tr.ReadI32()
						if err != nil {
							return nil, err
						}
						o.PageLocations[i].CompressedPageSize = v
					case 3:
						v, err := tr.ReadI64()
						if err != nil {
							return nil, err
						}
						o.PageLocations[i].FirstRowIndex = v
					default:
						if err := tr.Skip(ftyp); err != nil {
							return nil, err
						}
					}
				}
				tr.ReadStructEnd()
			}
		default:
			if err := tr.Skip(typ); err != nil {
				return nil, err
			}
		}
	}
	tr.ReadStructEnd()
	return o, nil
}

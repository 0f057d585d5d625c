package format

import (
	"io"

	"github.com/parquetcore/parquet/internal/thrift"
)

// BloomFilterAlgorithm identifies the bit-layout algorithm of a bloom
// filter's bitset. SplitBlockAlgorithm is the only one defined by the
// format; readers must treat any other value as producing an empty filter.
type BloomFilterAlgorithm int32

const (
	SplitBlockAlgorithm BloomFilterAlgorithm = iota
)

// BloomFilterHash identifies the hash function applied before indexing into
// the bitset. XxHash is the only one defined by the format.
type BloomFilterHash int32

const (
	XxHash BloomFilterHash = iota
)

// BloomFilterCompression identifies how the bitset bytes are compressed.
// Uncompressed is the only one defined by the format.
type BloomFilterCompression int32

const (
	BloomFilterUncompressed BloomFilterCompression = iota
)

// BloomFilterHeader precedes a bloom filter's bitset in the file. Supported
// reports whether Algorithm, Hash and Compression all hold the single variant
// the format defines. ReadBloomFilterHeader does not decode these unions, so
// a header it returns always reports them as supported; a file using another
// variant is not detected by this package.
type BloomFilterHeader struct {
	NumBytes    int32
	Algorithm   BloomFilterAlgorithm
	Hash        BloomFilterHash
	Compression BloomFilterCompression
}

// Supported reports whether this header describes a bitset layout this
// module knows how to interpret.
func (h *BloomFilterHeader) Supported() bool {
	return h.Algorithm == SplitBlockAlgorithm &&
		h.Hash == XxHash &&
		h.Compression == BloomFilterUncompressed
}

func (h *BloomFilterHeader) WriteTo(w io.Writer) error {
	tw := thrift.NewWriter(w)
	tw.WriteStructBegin()
	if err := tw.WriteI32(1, h.NumBytes); err != nil {
		return err
	}
	// BloomFilterAlgorithm, Hash and Compression are Thrift unions in
	// parquet.thrift, each with a single member set selecting the variant.
	// Since only one variant of each exists today, the field id of that
	// variant doubles as the selector.
	if err := tw.FieldHeader(2, thrift.TypeStruct); err != nil {
		return err
	}
	tw.WriteStructBegin()
	if err := tw.WriteStructEnd(); err != nil {
		return err
	}
	if err := tw.FieldHeader(3, thrift.TypeStruct); err != nil {
		return err
	}
	tw.WriteStructBegin()
	if err := tw.WriteStructEnd(); err != nil {
		return err
	}
	if err := tw.FieldHeader(4, thrift.TypeStruct); err != nil {
		return err
	}
	tw.WriteStructBegin()
	if err := tw.WriteStructEnd(); err != nil {
		return err
	}
	return tw.WriteStructEnd()
}

// ReadBloomFilterHeader decodes a BloomFilterHeader from r. The algorithm,
// hash and compression unions are skipped without looking at which member
// they hold; those fields keep their zero values.
func ReadBloomFilterHeader(r io.Reader) (*BloomFilterHeader, error) {
	tr := thrift.NewReader(r)
	tr.ReadStructBegin()
	h := &BloomFilterHeader{}
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
			h.NumBytes = v
		case 2, 3, 4:
			if err := tr.Skip(typ); err != nil {
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

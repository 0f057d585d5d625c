package parquet_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/parquetcore/parquet"
)

func personSchema() *parquet.Schema {
	return parquet.NewSchema("person", parquet.Group{
		"id":   parquet.Leaf(parquet.Int64Type),
		"name": parquet.Optional(parquet.String()),
	})
}

func writePeople(t *testing.T, w *parquet.FileWriter, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		row := parquet.Row{
			parquet.ValueOf(int64(i)).Level(0, 0, 0),
		}
		if i%2 == 0 {
			row = append(row, parquet.ValueOf(nil).Level(0, 0, 1))
		} else {
			row = append(row, parquet.ValueOf("user").Level(0, 1, 1))
		}
		if err := w.WriteRow(row); err != nil {
			t.Fatalf("writing row %d: %v", i, err)
		}
	}
}

func TestFileWriterHeaderAndTrailer(t *testing.T) {
	buf := new(bytes.Buffer)

	w, err := parquet.NewFileWriter(buf, personSchema())
	if err != nil {
		t.Fatalf("creating file writer: %v", err)
	}
	writePeople(t, w, 10)

	n, err := w.End(nil)
	if err != nil {
		t.Fatalf("ending file: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("reported length %d does not match written length %d", n, buf.Len())
	}

	b := buf.Bytes()
	if len(b) < 8 {
		t.Fatalf("file is too short to contain header and trailer: %d bytes", len(b))
	}
	if string(b[:4]) != "PAR1" {
		t.Fatalf("missing magic header: %q", b[:4])
	}
	if string(b[len(b)-4:]) != "PAR1" {
		t.Fatalf("missing magic trailer: %q", b[len(b)-4:])
	}

	footerLength := binary.LittleEndian.Uint32(b[len(b)-8 : len(b)-4])
	footerStart := len(b) - 8 - int(footerLength)
	if footerStart < 4 {
		t.Fatalf("footer length %d overruns the row group data", footerLength)
	}
}

func TestFileWriterRowGroupBoundary(t *testing.T) {
	buf := new(bytes.Buffer)

	w, err := parquet.NewFileWriter(buf, personSchema(), parquet.RowGroupTargetSize(1))
	if err != nil {
		t.Fatalf("creating file writer: %v", err)
	}
	writePeople(t, w, 4)

	if _, err := w.End(nil); err != nil {
		t.Fatalf("ending file: %v", err)
	}

	if string(buf.Bytes()[:4]) != "PAR1" {
		t.Fatal("missing magic header after multiple row groups")
	}
}

func TestFileWriterRejectsColumnOutOfRange(t *testing.T) {
	buf := new(bytes.Buffer)

	w, err := parquet.NewFileWriter(buf, personSchema())
	if err != nil {
		t.Fatalf("creating file writer: %v", err)
	}

	row := parquet.Row{parquet.ValueOf(int64(0)).Level(0, 0, 7)}
	if err := w.WriteRow(row); err == nil {
		t.Fatal("expected an error writing a row referencing an out-of-range column")
	}
}

func TestFileWriterSecondEndFails(t *testing.T) {
	buf := new(bytes.Buffer)

	w, err := parquet.NewFileWriter(buf, personSchema())
	if err != nil {
		t.Fatalf("creating file writer: %v", err)
	}
	writePeople(t, w, 1)

	if _, err := w.End(nil); err != nil {
		t.Fatalf("ending file: %v", err)
	}
	if _, err := w.End(nil); err == nil {
		t.Fatal("expected an error ending an already-closed file writer")
	}
}

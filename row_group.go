package parquet

import (
	"io"

	"github.com/parquetcore/parquet/format"
	"github.com/parquetcore/parquet/internal/errkind"
)

// SortingColumn represents a column by which a row group is sorted.
type SortingColumn interface {
	// Returns the path of the column in the row group schema, omitting the name
	// of the root node.
	Path() []string
	// Returns true if the column will sort values in descending order.
	Descending() bool
	// Returns true if the column will put null values at the beginning.
	NullsFirst() bool
}

// Ascending constructs a SortingColumn value which dictates to sort the column
// at the path given as argument in ascending order.
func Ascending(path ...string) SortingColumn { return ascending(path) }

// Descending constructs a SortingColumn value which dictates to sort the column
// at the path given as argument in descending order.
func Descending(path ...string) SortingColumn { return descending(path) }

// NullsFirst wraps the SortingColumn passed as argument so that it instructs
// the row group to place null values first in the column.
func NullsFirst(sortingColumn SortingColumn) SortingColumn { return nullsFirst{sortingColumn} }

type ascending []string

func (asc ascending) Path() []string   { return asc }
func (asc ascending) Descending() bool { return false }
func (asc ascending) NullsFirst() bool { return false }

type descending []string

func (desc descending) Path() []string   { return desc }
func (desc descending) Descending() bool { return true }
func (desc descending) NullsFirst() bool { return false }

type nullsFirst struct{ SortingColumn }

func (nullsFirst) NullsFirst() bool { return true }

type RowGroup interface {
	Columns() []RowGroupColumn

	NumRows() int

	Schema() *Schema

	SortingColumns() []format.SortingColumn

	// Rows returns a reader exposing the rows of the row group.
	Rows() RowReader
}

type RowGroupColumn interface {
	// For indexed columns, returns the underlying dictionary holding the column
	// values. If the column is not indexed, nil is returned.
	Dictionary() Dictionary

	// Returns the list of pages in the column.
	Pages() []Page

	// Returns a reader exposing the values currently held in the buffer.
	Values() ValueReader
}

type RowGroupReader interface {
	ReadRowGroup() (RowGroup, error)
}

type RowGroupWriter interface {
	WriteRowGroup(RowGroup) error
}

// MergeRowGroups concatenates the rows of rowGroups, in order, into a single
// RowGroup. All row groups must share the same top-level column names; no
// attempt is made to merge sorting orders, so the result carries no
// SortingColumn of its own.
func MergeRowGroups(rowGroups ...RowGroup) (RowGroup, error) {
	if len(rowGroups) == 0 {
		return nil, errkind.New(errkind.InvalidParameter, "cannot merge zero row groups")
	}

	schema := rowGroups[0].Schema()
	numRows := 0
	for _, rg := range rowGroups {
		if !sameColumnNames(schema, rg.Schema()) {
			return nil, errkind.New(errkind.InvalidParameter, "cannot merge row groups with mismatched schemas")
		}
		numRows += rg.NumRows()
	}

	return &mergedRowGroup{rowGroups: rowGroups, schema: schema, numRows: numRows}, nil
}

func sameColumnNames(a, b Node) bool {
	an, bn := a.ChildNames(), b.ChildNames()
	if len(an) != len(bn) {
		return false
	}
	for i := range an {
		if an[i] != bn[i] {
			return false
		}
	}
	return true
}

type mergedRowGroup struct {
	rowGroups []RowGroup
	schema    *Schema
	numRows   int
}

func (m *mergedRowGroup) Columns() []RowGroupColumn {
	var columns []RowGroupColumn
	for _, rg := range m.rowGroups {
		columns = append(columns, rg.Columns()...)
	}
	return columns
}

func (m *mergedRowGroup) NumRows() int { return m.numRows }

func (m *mergedRowGroup) Schema() *Schema { return m.schema }

func (m *mergedRowGroup) SortingColumns() []format.SortingColumn { return nil }

func (m *mergedRowGroup) Rows() RowReader {
	readers := make([]RowReader, len(m.rowGroups))
	for i, rg := range m.rowGroups {
		readers[i] = rg.Rows()
	}
	return &multiRowReader{readers: readers}
}

// multiRowReader reads rows sequentially from a list of readers, the way
// io.MultiReader chains byte streams.
type multiRowReader struct {
	readers []RowReader
}

func (m *multiRowReader) ReadRows(rows []Row) (int, error) {
	total := 0
	for len(m.readers) > 0 {
		n, err := m.readers[0].ReadRows(rows[total:])
		total += n
		if err != nil {
			if err == io.EOF {
				m.readers = m.readers[1:]
				if total == len(rows) {
					return total, nil
				}
				continue
			}
			return total, err
		}
		if total == len(rows) {
			return total, nil
		}
	}
	return total, io.EOF
}

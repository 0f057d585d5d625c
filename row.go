package parquet

import "github.com/parquetcore/parquet/internal/errkind"

// Row represents a parquet row as a flat sequence of values, one per leaf
// column of the schema the row belongs to, or several for a repeated column,
// where the values after the first carry a non-zero repetition level. Each
// value carries its own
// repetition and definition levels, so a Row needs no accompanying schema
// to be interpreted correctly by the column buffers that read and write it.
type Row []Value

// Clone creates a copy of the row which shares no pointers with it.
func (row Row) Clone() Row {
	clone := make(Row, len(row))
	for i, v := range row {
		clone[i] = v.Clone()
	}
	return clone
}

// splitRowValues splits values into the continuation of a previous row (the
// leading run of values whose repetition level is non-zero) and the
// remaining values that start new rows.
func splitRowValues(values []Value) (continuation, remaining Row) {
	for i, v := range values {
		if v.repetitionLevel == 0 {
			return Row(values[:i]), Row(values[i:])
		}
	}
	return Row(values), nil
}

// forEachRowOf calls f once per row found in values, where row boundaries
// are delimited by values whose repetition level equals zero.
func forEachRowOf(values []Value, maxRepetitionLevel int8, f func(Row) bool) {
	i := 0
	for i < len(values) {
		j := i + 1
		for j < len(values) && values[j].repetitionLevel != 0 {
			j++
		}
		if !f(Row(values[i:j])) {
			return
		}
		i = j
	}
}

// forEachRepeatedRowOf splits a run of values belonging to a repeated column
// into one row per maximal repetition-level-zero-delimited group, invoking f
// for each.
func forEachRepeatedRowOf(values []Value, f func(Row) error) error {
	i := 0
	for i < len(values) {
		j := i + 1
		for j < len(values) && values[j].repetitionLevel != 0 {
			j++
		}
		if err := f(Row(values[i:j])); err != nil {
			return err
		}
		i = j
	}
	return nil
}

func errRowHasTooFewValues(n int64) error {
	return errkind.Newf(errkind.InvalidParameter, "row has too few values: %d", n)
}

func errRowHasTooManyValues(n int64) error {
	return errkind.Newf(errkind.InvalidParameter, "row has too many values: %d", n)
}

func errRowIndexOutOfBounds(index, n int64) error {
	return errkind.Newf(errkind.InvalidParameter, "row index out of bounds: %d/%d", index, n)
}

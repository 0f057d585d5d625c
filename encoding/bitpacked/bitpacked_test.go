//go:build go1.18
// +build go1.18

package bitpacked_test

import (
	"testing"

	"github.com/parquetcore/parquet/encoding/fuzz"
	"github.com/parquetcore/parquet/encoding/rle"
)

func FuzzEncodeLevels(f *testing.F) {
	fuzz.EncodeLevels(f, &rle.Encoding{BitWidth: 8})
}

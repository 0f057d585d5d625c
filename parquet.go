/*
Package parquet is a re-implementation of the Parquet format specification.

It intends to be efficient, and provide multiple level of abstractions for
reading and writing Parquet files.

Reading

The high-level interface for reading Parquet files record-by-record is
RowReader.

Tooling

This module does not include a command-line program similar to
parquet-tools.
*/
package parquet

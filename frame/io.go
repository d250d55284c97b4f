// SPDX-License-Identifier: MIT

package frame

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
)

// WriteCSV writes the frame as CSV with a header row; nulls are written as
// nullValue.
func (f *Frame) WriteCSV(w io.Writer, nullValue string) error {
	cw := csv.NewWriter(w, f.rec.Schema(),
		csv.WithHeader(true),
		csv.WithNullWriter(nullValue),
	)
	if err := cw.Write(f.rec); err != nil {
		return err
	}

	return cw.Flush()
}

// WriteJSON writes the frame as newline-delimited JSON, one object per row.
// Null cells are written as JSON null; object keys come out sorted.
func (f *Frame) WriteJSON(w io.Writer) error {
	return array.RecordToJSON(f.rec, w)
}

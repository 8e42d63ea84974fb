// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/featio"
)

// A Writer serializes Records as tab-separated GFF3 lines without a
// header. It satisfies featio.Writer.
//
// Attribute values are written verbatim; ';', '=' and tab characters
// inside values are not escaped, matching the converter this tool
// replaces.
type Writer struct {
	w *bufio.Writer
}

// NewWriter returns a Writer emitting records to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes one record, which must be a *Record, and returns the
// number of bytes written.
func (w *Writer) Write(f feat.Feature) (n int, err error) {
	rec, ok := f.(*Record)
	if !ok {
		return 0, fmt.Errorf("gff: cannot write feature type %T", f)
	}
	return fmt.Fprintf(w.w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
		rec.SeqName, rec.Source, rec.Feature,
		rec.FeatStart, rec.FeatEnd,
		rec.Score, rec.Strand, rec.Frame,
		formatAttributes(rec.Attrs),
	)
}

// Close flushes any buffered records. It does not close the underlying
// io.Writer.
func (w *Writer) Close() error { return w.w.Flush() }

func formatAttributes(attrs Attributes) string {
	pairs := make([]string, len(attrs))
	for i, at := range attrs {
		pairs[i] = at.Tag + "=" + at.Value
	}
	return strings.Join(pairs, ";")
}

var _ featio.Writer = (*Writer)(nil)

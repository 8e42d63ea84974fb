// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/biogo/feat"
	"github.com/biogo/biogo/io/featio"
)

// A Reader parses Prokka GFF3 feature lines into Records. It satisfies
// featio.Reader, so it can be driven by a featio.Scanner.
//
// Lines with fewer than nine tab-separated fields are skipped without
// error, matching the lenient policy of the Prokka conversion this tool
// replaces. Malformed coordinates and attribute pairs abort the read.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Reader parsing records from r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<22)
	return &Reader{sc: sc}
}

// Read returns the next record in the input, or io.EOF when the input
// is exhausted.
func (r *Reader) Read() (feat.Feature, error) {
	for r.sc.Scan() {
		r.line++
		line := strings.TrimSpace(r.sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 9 {
			continue
		}
		rec, err := parse(fields)
		if err != nil {
			return nil, fmt.Errorf("gff: line %d: %v", r.line, err)
		}
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// ReadAll reads records until EOF. A successful call returns err == nil,
// not err == io.EOF.
func (r *Reader) ReadAll() ([]*Record, error) {
	var recs []*Record
	sc := featio.NewScanner(r)
	for sc.Next() {
		recs = append(recs, sc.Feat().(*Record))
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return recs, nil
}

func parse(fields []string) (*Record, error) {
	start, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("bad start %q", fields[3])
	}
	end, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("bad end %q", fields[4])
	}
	attrs, err := parseAttributes(fields[8])
	if err != nil {
		return nil, err
	}
	return &Record{
		SeqName:   fields[0],
		Source:    fields[1],
		Feature:   fields[2],
		FeatStart: start,
		FeatEnd:   end,
		Score:     fields[5],
		Strand:    fields[6],
		Frame:     fields[7],
		Attrs:     attrs,
	}, nil
}

func parseAttributes(s string) (Attributes, error) {
	var attrs Attributes
	for _, pair := range strings.Split(s, ";") {
		kv := strings.Split(pair, "=")
		if len(kv) != 2 {
			return nil, fmt.Errorf("bad attribute %q", pair)
		}
		attrs = append(attrs, Attribute{Tag: kv[0], Value: kv[1]})
	}
	return attrs, nil
}

var _ featio.Reader = (*Reader)(nil)

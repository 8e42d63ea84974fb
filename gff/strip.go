// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Strip copies the tabular body of a Prokka GFF3 from r to w, dropping
// comment lines and everything from the first FASTA header line onward.
// Malformed body lines are passed through untouched; validation is the
// reader's job.
func Strip(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1<<16), 1<<22)
	bw := bufio.NewWriter(w)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, ">") {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// StripFile runs Strip from the named input to the named output file,
// creating or truncating the output. Both handles are closed on all
// return paths.
func StripFile(in, out string) error {
	inf, err := os.Open(in)
	if err != nil {
		return err
	}
	defer inf.Close()
	outf, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := Strip(inf, outf); err != nil {
		outf.Close()
		return err
	}
	return outf.Close()
}

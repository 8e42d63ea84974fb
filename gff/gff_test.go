// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gff

import (
	"bytes"
	"io"
	"strings"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestStrip(c *check.C) {
	for i, t := range []struct {
		in   string
		want string
	}{
		{
			in: "##gff-version 3\n" +
				"# comment\n" +
				"1\tprokka\tgene\t10\t20\t.\t+\t.\tID=g_gene\n" +
				">1\n" +
				"ACGTACGT\n" +
				"1\tprokka\tgene\t30\t40\t.\t+\t.\tID=h_gene\n",
			want: "1\tprokka\tgene\t10\t20\t.\t+\t.\tID=g_gene\n",
		},
		{
			in:   "1\tprokka\tgene\t10\t20\t.\t+\t.\tID=g_gene\n",
			want: "1\tprokka\tgene\t10\t20\t.\t+\t.\tID=g_gene\n",
		},
		{
			in:   "##gff-version 3\n>1\nACGT\n",
			want: "",
		},
	} {
		var buf bytes.Buffer
		err := Strip(strings.NewReader(t.in), &buf)
		c.Check(err, check.IsNil, check.Commentf("Test %d", i))
		c.Check(buf.String(), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestReader(c *check.C) {
	r := NewReader(strings.NewReader(
		"1\tProdigal:002006\tgene\t100\t500\t.\t+\t.\tID=g1_gene;locus_tag=g1\n" +
			"short\tline\n" +
			"\n" +
			"1\tProdigal:002006\tCDS\t150\t450\t.\t+\t0\tID=g1;product=hypothetical protein\n",
	))
	recs, err := r.ReadAll()
	c.Assert(err, check.IsNil)
	c.Assert(recs, check.HasLen, 2)

	g := recs[0]
	c.Check(g.SeqName, check.Equals, "1")
	c.Check(g.Source, check.Equals, "Prodigal:002006")
	c.Check(g.Feature, check.Equals, "gene")
	c.Check(g.FeatStart, check.Equals, 100)
	c.Check(g.FeatEnd, check.Equals, 500)
	c.Check(g.Score, check.Equals, ".")
	c.Check(g.Strand, check.Equals, "+")
	c.Check(g.Frame, check.Equals, ".")
	c.Check(g.Attrs, check.DeepEquals, Attributes{
		{Tag: "ID", Value: "g1_gene"},
		{Tag: "locus_tag", Value: "g1"},
	})

	c.Check(recs[1].Feature, check.Equals, "CDS")
	c.Check(recs[1].ID(), check.Equals, "g1")

	_, err = r.Read()
	c.Check(err, check.Equals, io.EOF)
}

func (s *S) TestReaderErrors(c *check.C) {
	for i, t := range []struct {
		in  string
		err string
	}{
		{
			in:  "1\tprokka\tgene\tX\t500\t.\t+\t.\tID=g1_gene\n",
			err: `gff: line 1: bad start "X"`,
		},
		{
			in:  "1\tprokka\tgene\t100\t5.5\t.\t+\t.\tID=g1_gene\n",
			err: `gff: line 1: bad end "5.5"`,
		},
		{
			in:  "1\tprokka\tgene\t100\t500\t.\t+\t.\tID=g1_gene;naked\n",
			err: `gff: line 1: bad attribute "naked"`,
		},
		{
			in:  "1\tprokka\tgene\t100\t500\t.\t+\t.\ta=b=c\n",
			err: `gff: line 1: bad attribute "a=b=c"`,
		},
	} {
		_, err := NewReader(strings.NewReader(t.in)).ReadAll()
		c.Check(err, check.ErrorMatches, t.err, check.Commentf("Test %d", i))
	}
}

func (s *S) TestAttributes(c *check.C) {
	a := Attributes{{Tag: "ID", Value: "x"}, {Tag: "product", Value: "p"}}

	c.Check(a.Get("ID"), check.Equals, "x")
	c.Check(a.Get("absent"), check.Equals, "")

	// Updating keeps position, adding appends.
	a = a.Set("ID", "y")
	a = a.Set("Parent", "z")
	c.Check(a, check.DeepEquals, Attributes{
		{Tag: "ID", Value: "y"},
		{Tag: "product", Value: "p"},
		{Tag: "Parent", Value: "z"},
	})

	b := a.Clone()
	b = b.Set("ID", "clone")
	c.Check(a.Get("ID"), check.Equals, "y")
}

func (s *S) TestRecordClone(c *check.C) {
	r := &Record{Feature: "gene", Attrs: Attributes{{Tag: "ID", Value: "g_gene"}}}
	r2 := r.Clone()
	r2.Attrs = r2.Attrs.Set("ID", "g_transcript")
	r2.Feature = "transcript"
	c.Check(r.ID(), check.Equals, "g_gene")
	c.Check(r.Feature, check.Equals, "gene")
}

func (s *S) TestFeature(c *check.C) {
	r := &Record{SeqName: "2", Feature: "gene", FeatStart: 100, FeatEnd: 500}
	c.Check(r.Start(), check.Equals, 100)
	c.Check(r.End(), check.Equals, 500)
	c.Check(r.Len(), check.Equals, 401)
	c.Check(r.Name(), check.Equals, "2/100-500")
	c.Check(r.Description(), check.Equals, "gene")
}

func (s *S) TestWriter(c *check.C) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	recs := []*Record{
		{
			SeqName: "1", Source: "prokka", Feature: "gene",
			FeatStart: 100, FeatEnd: 500,
			Score: ".", Strand: "+", Frame: ".",
			Attrs: Attributes{{Tag: "ID", Value: "g1_gene"}, {Tag: "biotype", Value: "protein_coding"}},
		},
		{
			SeqName: "1", Source: "prokka", Feature: "CDS",
			FeatStart: 150, FeatEnd: 450,
			Score: ".", Strand: "+", Frame: "0",
			// Values pass through unescaped.
			Attrs: Attributes{{Tag: "ID", Value: "g1_cds"}, {Tag: "note", Value: "a=b;c"}},
		},
	}
	for _, r := range recs {
		_, err := w.Write(r)
		c.Assert(err, check.IsNil)
	}
	c.Assert(w.Close(), check.IsNil)
	c.Check(buf.String(), check.Equals,
		"1\tprokka\tgene\t100\t500\t.\t+\t.\tID=g1_gene;biotype=protein_coding\n"+
			"1\tprokka\tCDS\t150\t450\t.\t+\t0\tID=g1_cds;note=a=b;c\n")
}

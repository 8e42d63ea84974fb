// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vep

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/msabrysarhan/prokka2vep/gff"
)

// node binds a record to its position in the record table so it can
// carry the record through the linkage graph.
type node struct {
	idx int64
	rec *gff.Record
}

func (n node) ID() int64 { return n.idx }

// AdjustNonCoding fixes up tRNA and rRNA genes, which must not carry a
// protein_coding transcript: the RNA feature is re-parented directly to
// its gene, its biotype set to the feature type, and the transcript
// Transcripts synthesized for the gene is dropped. Any record left
// pointing at the dropped transcript (the exon of a tRNA) is re-pointed
// to the gene as well.
//
// Related records are found through a parent→child graph built from ID
// and Parent attributes, so the result does not depend on record order,
// duplicate coordinates or adjacency.
func AdjustNonCoding(recs []*gff.Record) []*gff.Record {
	g := simple.NewDirectedGraph()
	byID := make(map[string]node, len(recs))
	nodes := make([]node, len(recs))
	for i, rec := range recs {
		n := node{idx: int64(i), rec: rec}
		nodes[i] = n
		g.AddNode(n)
		if id := rec.ID(); id != "" {
			if _, dup := byID[id]; !dup {
				byID[id] = n
			}
		}
	}
	for _, n := range nodes {
		p := n.rec.Parent()
		if p == "" {
			continue
		}
		if pn, ok := byID[p]; ok && pn.idx != n.idx {
			g.SetEdge(simple.Edge{F: pn, T: n})
		}
	}

	drop := make(map[int64]bool)
	for _, n := range nodes {
		rec := n.rec
		if rec.Feature != "tRNA" && rec.Feature != "rRNA" {
			continue
		}
		id := rec.ID()
		rec.Attrs = rec.Attrs.Set("biotype", rec.Feature)
		rec.Attrs = rec.Attrs.Set("Parent", id+"_gene")

		tn, ok := byID[id+"_transcript"]
		if !ok || tn.rec.Feature != "transcript" {
			continue
		}
		drop[tn.idx] = true
		children := g.From(tn.idx)
		for children.Next() {
			c := children.Node().(node)
			c.rec.Attrs = c.rec.Attrs.Set("Parent", id+"_gene")
		}
	}
	if len(drop) == 0 {
		return recs
	}

	kept := make([]*gff.Record, 0, len(recs)-len(drop))
	for i, rec := range recs {
		if drop[int64(i)] {
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}

// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vep

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/biogo/store/llrb"

	"github.com/msabrysarhan/prokka2vep/gff"
)

// Feature type precedence within a coordinate group. Types outside the
// hierarchy sort after CDS, keeping their relative input order.
var precedence = map[string]int{
	"gene":       0,
	"transcript": 1,
	"exon":       2,
	"CDS":        3,
}

func rank(feature string) int {
	if p, ok := precedence[feature]; ok {
		return p
	}
	return len(precedence)
}

// coordGroup collects the records sharing one (start, end) pair. Groups
// live in an LLRB tree so traversal is ordered by coordinates.
type coordGroup struct {
	start, end int
	recs       []*gff.Record
}

func (g *coordGroup) Compare(c llrb.Comparable) int {
	o := c.(*coordGroup)
	if g.start != o.start {
		return g.start - o.start
	}
	return g.end - o.end
}

// Reorder returns recs in the order VEP expects: ascending by
// (sequence, start, end), with records sharing exact coordinates kept
// together and ordered gene, transcript, exon, CDS. Sequence names must
// be numeric; a non-numeric name fails the run.
func Reorder(recs []*gff.Record) ([]*gff.Record, error) {
	seqnum := make(map[*gff.Record]int, len(recs))
	for _, rec := range recs {
		n, err := strconv.Atoi(rec.SeqName)
		if err != nil {
			return nil, fmt.Errorf("vep: non-numeric sequence name %q in record %s", rec.SeqName, rec.ID())
		}
		seqnum[rec] = n
	}

	t := &llrb.Tree{}
	for _, rec := range recs {
		q := &coordGroup{start: rec.FeatStart, end: rec.FeatEnd}
		if got := t.Get(q); got != nil {
			g := got.(*coordGroup)
			g.recs = append(g.recs, rec)
			continue
		}
		q.recs = append(q.recs, rec)
		t.Insert(q)
	}

	ordered := make([]*gff.Record, 0, len(recs))
	t.Do(func(c llrb.Comparable) (done bool) {
		g := c.(*coordGroup)
		sort.SliceStable(g.recs, func(i, j int) bool {
			return rank(g.recs[i].Feature) < rank(g.recs[j].Feature)
		})
		ordered = append(ordered, g.recs...)
		return false
	})

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if seqnum[a] != seqnum[b] {
			return seqnum[a] < seqnum[b]
		}
		if a.FeatStart != b.FeatStart {
			return a.FeatStart < b.FeatStart
		}
		return a.FeatEnd < b.FeatEnd
	})

	return ordered, nil
}

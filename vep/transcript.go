// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vep restructures Prokka annotation records into the
// gene → transcript → exon/CDS hierarchy expected by Ensembl VEP's GFF
// parser.
package vep

import (
	"strings"

	"github.com/msabrysarhan/prokka2vep/gff"
)

// Transcripts derives one transcript record per gene record in recs,
// in gene order. Each transcript is an independent copy of its gene
// with the feature type, ID, Parent and biotype rewritten: a gene with
// ID X_gene yields a transcript X_transcript parented to X_gene and
// flagged protein_coding.
//
// Non-coding genes are synthesized like any other; AdjustNonCoding
// removes their transcripts again.
func Transcripts(recs []*gff.Record) []*gff.Record {
	var ts []*gff.Record
	for _, rec := range recs {
		if rec.Feature != "gene" {
			continue
		}
		t := rec.Clone()
		t.Feature = "transcript"
		id := strings.ReplaceAll(t.ID(), "_gene", "_transcript")
		t.Attrs = t.Attrs.Set("ID", id)
		t.Attrs = t.Attrs.Set("Parent", strings.ReplaceAll(id, "_transcript", "_gene"))
		t.Attrs = t.Attrs.Set("biotype", "protein_coding")
		ts = append(ts, t)
	}
	return ts
}

// Remap rewrites mRNA and CDS records in place so that they hang off
// the transcripts produced by Transcripts:
//
//	mRNA  X_mRNA  → exon X_exon, Parent X_transcript
//	CDS   X       → CDS  X_cds,  Parent X_transcript
//
// Parent is always derived from the ID as read, before the ID itself is
// rewritten. All other feature types pass through untouched.
func Remap(recs []*gff.Record) {
	for _, rec := range recs {
		switch rec.Feature {
		case "mRNA":
			id := rec.ID()
			rec.Attrs = rec.Attrs.Set("Parent", strings.ReplaceAll(id, "_mRNA", "_transcript"))
			rec.Attrs = rec.Attrs.Set("ID", strings.ReplaceAll(id, "_mRNA", "_exon"))
			rec.Feature = "exon"
		case "CDS":
			id := rec.ID()
			rec.Attrs = rec.Attrs.Set("Parent", id+"_transcript")
			rec.Attrs = rec.Attrs.Set("ID", id+"_cds")
		}
	}
}

// Merge concatenates the synthesized transcripts with the remapped
// feature set. Order here only decides stable ties in Reorder.
func Merge(transcripts, recs []*gff.Record) []*gff.Record {
	merged := make([]*gff.Record, 0, len(transcripts)+len(recs))
	merged = append(merged, transcripts...)
	return append(merged, recs...)
}

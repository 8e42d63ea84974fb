// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// prokka2vep rewrites a Prokka GFF3 annotation into the strict
// gene → transcript → exon/CDS hierarchy that Ensembl VEP's GFF parser
// expects, deriving transcript records from genes, re-pointing exon and
// CDS parentage, and re-typing non-coding RNA genes.
//
// Running the tool on its own output is out of contract: rewritten IDs
// no longer carry the suffixes the derivation rules key on.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/biogo/biogo/io/featio"

	"github.com/msabrysarhan/prokka2vep/gff"
	"github.com/msabrysarhan/prokka2vep/vep"
)

func main() {
	gffName := flag.String("gff", "", "Filename for the Prokka GFF3 input.")
	outName := flag.String("out", "", "Filename for the VEP-compatible GFF3 output.")
	help := flag.Bool("help", false, "Print this usage message.")

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *gffName == "" || *outName == "" {
		fmt.Fprintln(os.Stderr, "error: flags --gff and --out are required")
		flag.Usage()
		os.Exit(2)
	}

	// The stripped table is staged next to the output and only removed
	// once the run has succeeded.
	tmp := *outName + ".tmp"
	if err := gff.StripFile(*gffName, tmp); err != nil {
		log.Fatalf("failed to preprocess %q: %v", *gffName, err)
	}

	fmt.Fprintf(os.Stderr, "reading features from %q.\n", *gffName)
	recs, err := readRecords(tmp)
	if err != nil {
		log.Fatalf("failed to read features: %v", err)
	}

	fmt.Fprintf(os.Stderr, "synthesizing transcript records.\n")
	transcripts := vep.Transcripts(recs)
	vep.Remap(recs)
	merged := vep.Merge(transcripts, recs)

	fmt.Fprintf(os.Stderr, "reordering %d records.\n", len(merged))
	ordered, err := vep.Reorder(merged)
	if err != nil {
		log.Fatalf("failed to reorder records: %v", err)
	}

	fmt.Fprintf(os.Stderr, "adjusting non-coding RNA records.\n")
	final := vep.AdjustNonCoding(ordered)

	fmt.Fprintf(os.Stderr, "writing %d records to %q.\n", len(final), *outName)
	if err := writeRecords(*outName, final); err != nil {
		log.Fatalf("failed to write %q: %v", *outName, err)
	}
	if err := os.Remove(tmp); err != nil {
		log.Fatalf("failed to remove %q: %v", tmp, err)
	}
}

func readRecords(name string) ([]*gff.Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var recs []*gff.Record
	sc := featio.NewScanner(gff.NewReader(f))
	for sc.Next() {
		recs = append(recs, sc.Feat().(*gff.Record))
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return recs, nil
}

func writeRecords(name string, recs []*gff.Record) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	w := gff.NewWriter(f)
	for _, rec := range recs {
		if _, err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

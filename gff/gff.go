// Copyright ©2023 the prokka2vep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gff provides a minimal GFF3 record model for Prokka output.
//
// The model deliberately keeps score, strand and phase as opaque strings
// and the attribute column as an ordered tag/value list so that records
// survive a read/rewrite cycle byte for byte apart from the edits the
// converter makes.
package gff

import (
	"fmt"

	"github.com/biogo/biogo/feat"
)

// An Attribute is a single tag=value pair from the ninth GFF column.
type Attribute struct {
	Tag   string
	Value string
}

// Attributes is the ordered attribute list of a record. Order is the
// order tags were first seen, and is preserved on output.
type Attributes []Attribute

// Get returns the value of the given tag, or the empty string if the
// tag is not present.
func (a Attributes) Get(tag string) string {
	for _, at := range a {
		if at.Tag == tag {
			return at.Value
		}
	}
	return ""
}

// Set updates the value of tag in place if it exists, otherwise appends
// a new attribute, and returns the resulting list.
func (a Attributes) Set(tag, value string) Attributes {
	for i, at := range a {
		if at.Tag == tag {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Tag: tag, Value: value})
}

// Clone returns an independent copy of the attribute list.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	c := make(Attributes, len(a))
	copy(c, a)
	return c
}

// A Record is one feature line of a GFF3 annotation table.
type Record struct {
	SeqName   string
	Source    string
	Feature   string
	FeatStart int // 1-based inclusive.
	FeatEnd   int // 1-based inclusive.
	Score     string
	Strand    string
	Frame     string
	Attrs     Attributes
}

// ID returns the record's ID attribute.
func (r *Record) ID() string { return r.Attrs.Get("ID") }

// Parent returns the record's Parent attribute.
func (r *Record) Parent() string { return r.Attrs.Get("Parent") }

// Clone returns an independent copy of the record; the attribute list
// is copied, not shared.
func (r *Record) Clone() *Record {
	c := *r
	c.Attrs = r.Attrs.Clone()
	return &c
}

// Start, End, Len, Name, Description and Location implement
// feat.Feature.
func (r *Record) Start() int { return r.FeatStart }
func (r *Record) End() int   { return r.FeatEnd }
func (r *Record) Len() int   { return r.FeatEnd - r.FeatStart + 1 }

func (r *Record) Name() string {
	return fmt.Sprintf("%s/%d-%d", r.SeqName, r.FeatStart, r.FeatEnd)
}
func (r *Record) Description() string { return r.Feature }

func (r *Record) Location() feat.Feature { return nil }

var _ feat.Feature = (*Record)(nil)

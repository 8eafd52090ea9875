// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package recipe

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jcodagnone/recetime/cluster"
	"github.com/jcodagnone/recetime/utils/textutils"
)

// BuildStats summarises the filtering done by Build.
type BuildStats struct {
	Read    int
	Kept    int
	Dropped int
}

// Dataset is the working set of records that survived filtering. It is
// immutable; grouping produces a new labelled snapshot through WithClusters.
type Dataset struct {
	records []Record
}

// Build coerces the raw durations to numbers and keeps the rows where both
// are valid, in input order. Rows with an empty, non numeric or non finite
// duration are dropped; that is a filtering policy, not an error.
func Build(raw []RawRecord) (*Dataset, BuildStats) {
	stats := BuildStats{Read: len(raw)}
	records := make([]Record, 0, len(raw))

	for _, r := range raw {
		prep, ok := ParseDuration(r.PrepTime)
		if !ok {
			continue
		}

		cook, ok := ParseDuration(r.CookTime)
		if !ok {
			continue
		}

		records = append(records, Record{
			Name:      textutils.NormalizeName(r.Name),
			PrepTime:  prep,
			CookTime:  cook,
			TotalTime: prep + cook,
			Cluster:   Unassigned,
		})
	}

	stats.Kept = len(records)
	stats.Dropped = stats.Read - stats.Kept

	return &Dataset{records: records}, stats
}

// NewDataset wraps already validated records. TotalTime is recomputed and
// the group ids are reset.
func NewDataset(records []Record) *Dataset {
	out := make([]Record, len(records))
	for i, r := range records {
		r.TotalTime = r.PrepTime + r.CookTime
		r.Cluster = Unassigned
		out[i] = r
	}

	return &Dataset{records: out}
}

// ParseDuration converts a duration cell to minutes.
func ParseDuration(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Record returns the i-th record.
func (d *Dataset) Record(i int) Record {
	return d.records[i]
}

// Records returns a copy of the records.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)

	return out
}

// Features returns the feature vectors, aligned with the records.
func (d *Dataset) Features() []cluster.Vector {
	out := make([]cluster.Vector, len(d.records))
	for i, r := range d.records {
		out[i] = r.Features()
	}

	return out
}

// WithClusters returns a copy of the dataset with every record assigned the
// matching group id.
func (d *Dataset) WithClusters(labels []int) (*Dataset, error) {
	if len(labels) != len(d.records) {
		return nil, fmt.Errorf("%d labels for %d records", len(labels), len(d.records))
	}

	out := d.Records()
	for i := range out {
		out[i].Cluster = labels[i]
	}

	return &Dataset{records: out}, nil
}

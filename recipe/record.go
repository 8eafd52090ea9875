// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package recipe

import "github.com/jcodagnone/recetime/cluster"

// Unassigned marks a record that has not been grouped yet.
const Unassigned = -1

// RawRecord is a dataset row as read, before any coercion.
type RawRecord struct {
	Name     string
	PrepTime string
	CookTime string
}

// Record is a recipe with validated durations, in minutes.
type Record struct {
	Name      string  `json:"name"`
	PrepTime  float64 `json:"prep_time"`
	CookTime  float64 `json:"cook_time"`
	TotalTime float64 `json:"total_time"`
	Cluster   int     `json:"cluster"`
}

// Features returns the record's (prep, cook, total) feature vector.
func (r Record) Features() cluster.Vector {
	return cluster.Vector{r.PrepTime, r.CookTime, r.TotalTime}
}

// FeatureVector builds the feature vector of an arbitrary duration pair.
func FeatureVector(prep, cook float64) cluster.Vector {
	return cluster.Vector{prep, cook, prep + cook}
}

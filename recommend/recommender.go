// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

// Package recommend groups recipes by their time profile and suggests the
// ones closest to a requested preparation and cooking time.
package recommend

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/jcodagnone/recetime/cluster"
	"github.com/jcodagnone/recetime/recipe"
	"github.com/jcodagnone/recetime/utils/textutils"
)

// Recommendation is a suggested recipe.
type Recommendation struct {
	Name      string  `json:"name"`
	PrepTime  float64 `json:"prep_time"`
	CookTime  float64 `json:"cook_time"`
	TotalTime float64 `json:"total_time"`
}

// Recommender owns a working dataset and, once Fit succeeds, the model
// fitted over it.
type Recommender struct {
	dataset *recipe.Dataset
	opts    Options
	model   *Model
}

// New creates a Recommender over ds.
func New(ds *recipe.Dataset, opts Options) (*Recommender, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if ds == nil || ds.Len() == 0 {
		return nil, cluster.InvalidParameter("dataset has no usable records")
	}

	return &Recommender{dataset: ds, opts: opts}, nil
}

// Fit scales the features and groups the records into k groups, with
// 2 <= k < number of records. When k is zero the group count with the best
// silhouette between 2 and Options.MaxClusters is used. Every call starts
// from scratch and replaces the previous model; a failed call leaves none.
func (r *Recommender) Fit(k int) (*Model, error) {
	r.model = nil

	n := r.dataset.Len()

	if k < 0 || k == 1 || (k > 0 && k >= n) {
		return nil, cluster.InvalidParameter("group count must be between 2 and %d, got %d", n-1, k)
	}

	scaler := &cluster.Scaler{}

	scaled, err := scaler.FitTransform(r.dataset.Features())
	if err != nil {
		return nil, fmt.Errorf("scaling features: %w", err)
	}

	engine := r.opts.engine()

	var selection *cluster.Selection

	if k == 0 {
		selector := cluster.Selector{
			MaxClusters: r.opts.MaxClusters,
			Engine:      engine,
			Observer:    r.opts.Observer,
		}

		selection, err = selector.Select(scaled)
		if err != nil {
			return nil, fmt.Errorf("selecting group count: %w", err)
		}

		k = selection.Best
	}

	engine.K = k

	grouping, err := engine.Fit(scaled)
	if err != nil {
		return nil, fmt.Errorf("grouping records: %w", err)
	}

	labelled, err := r.dataset.WithClusters(grouping.Labels)
	if err != nil {
		return nil, fmt.Errorf("labelling records: %w", err)
	}

	members := make([][]int, k)
	for i, l := range grouping.Labels {
		members[l] = append(members[l], i)
	}

	r.model = &Model{
		Selection: selection,
		scaler:    scaler,
		grouping:  grouping,
		dataset:   labelled,
		members:   members,
	}

	return r.model, nil
}

// Model returns the fitted model.
func (r *Recommender) Model() (*Model, error) {
	if r.model == nil {
		return nil, cluster.NotFitted("model")
	}

	return r.model, nil
}

// Recommend returns up to count recipes from the group nearest to the given
// durations, closest total time first.
func (r *Recommender) Recommend(prep, cook float64, count int) ([]Recommendation, error) {
	if r.model == nil {
		return nil, cluster.NotFitted("recommend")
	}

	return r.model.Recommend(prep, cook, count)
}

// Model is the fitted state: scaling parameters, group centres and the
// labelled snapshot of the dataset.
type Model struct {
	// Selection holds the candidate scan, nil when the group count was given.
	Selection *cluster.Selection

	scaler   *cluster.Scaler
	grouping *cluster.Grouping
	dataset  *recipe.Dataset
	members  [][]int
}

// K returns the number of groups.
func (m *Model) K() int {
	return m.grouping.K()
}

// Inertia returns the within-group dispersion of the fit.
func (m *Model) Inertia() float64 {
	return m.grouping.Inertia
}

// Sizes returns the number of records per group.
func (m *Model) Sizes() []int {
	return m.grouping.Sizes()
}

// Records returns the labelled records in dataset order.
func (m *Model) Records() []recipe.Record {
	return m.dataset.Records()
}

// Members returns the records of group c in dataset order.
func (m *Model) Members(c int) []recipe.Record {
	if c < 0 || c >= len(m.members) {
		return nil
	}

	out := make([]recipe.Record, len(m.members[c]))
	for i, idx := range m.members[c] {
		out[i] = m.dataset.Record(idx)
	}

	return out
}

// Scale returns the scaled feature vector of a duration pair.
func (m *Model) Scale(prep, cook float64) (cluster.Vector, error) {
	if math.IsNaN(prep) || math.IsInf(prep, 0) || math.IsNaN(cook) || math.IsInf(cook, 0) {
		return nil, cluster.InvalidParameter("durations must be finite, got prep=%v cook=%v", prep, cook)
	}

	return m.scaler.Transform(recipe.FeatureVector(prep, cook))
}

// Assign returns the group whose centre is nearest to the duration pair.
func (m *Model) Assign(prep, cook float64) (int, error) {
	v, err := m.Scale(prep, cook)
	if err != nil {
		return 0, err
	}

	return m.grouping.Predict(v), nil
}

// Recommend ranks the members of the nearest group by the absolute
// difference between their total time and prep+cook. Ties keep dataset
// order. A group smaller than count is returned whole.
func (m *Model) Recommend(prep, cook float64, count int) ([]Recommendation, error) {
	if count < 1 {
		return nil, cluster.InvalidParameter("count must be at least 1, got %d", count)
	}

	c, err := m.Assign(prep, cook)
	if err != nil {
		return nil, err
	}

	total := prep + cook

	type ranked struct {
		record recipe.Record
		diff   float64
	}

	candidates := make([]ranked, len(m.members[c]))
	for i, idx := range m.members[c] {
		rec := m.dataset.Record(idx)
		candidates[i] = ranked{record: rec, diff: math.Abs(rec.TotalTime - total)}
	}

	slices.SortStableFunc(candidates, func(a, b ranked) int {
		return cmp.Compare(a.diff, b.diff)
	})

	out := make([]Recommendation, 0, min(count, len(candidates)))
	for _, cand := range candidates[:min(count, len(candidates))] {
		out = append(out, Recommendation{
			Name:      cand.record.Name,
			PrepTime:  cand.record.PrepTime,
			CookTime:  cand.record.CookTime,
			TotalTime: cand.record.TotalTime,
		})
	}

	return out, nil
}

// Exclude drops the recommendations whose name contains any of terms,
// ignoring case and accents. Order is preserved.
func Exclude(recs []Recommendation, terms ...string) []Recommendation {
	if len(terms) == 0 {
		return recs
	}

	return slices.DeleteFunc(slices.Clone(recs), func(r Recommendation) bool {
		return slices.ContainsFunc(terms, func(term string) bool {
			return textutils.ContainsFolded(r.Name, term)
		})
	})
}

// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_PicksSeparatedGroupCount(t *testing.T) {
	points := blobs([]Vector{{0, 0}, {10, 10}, {-10, 10}}, 8)

	var observed []int

	s := Selector{
		MaxClusters: 6,
		Engine:      KMeans{Seed: DefaultSeed, Restarts: 5},
		Observer:    func(c Candidate) { observed = append(observed, c.K) },
	}

	sel, err := s.Select(points)
	require.NoError(t, err)

	assert.Equal(t, 3, sel.Best)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, observed)
	require.Len(t, sel.Candidates, 5)

	best := sel.BestCandidate()
	assert.Equal(t, 3, best.K)

	for _, c := range sel.Candidates {
		assert.LessOrEqual(t, c.Silhouette, best.Silhouette, "k=%d", c.K)
		assert.GreaterOrEqual(t, c.Silhouette, -1.0)
		assert.LessOrEqual(t, c.Silhouette, 1.0)
		assert.Positive(t, c.Inertia)
	}

	// more groups never fit worse on these blobs
	assert.Greater(t, sel.Candidates[0].Inertia, sel.Candidates[1].Inertia)
}

func TestSelector_BestWithinBounds(t *testing.T) {
	points := blobs([]Vector{{1, 1, 2}, {3, 8, 11}, {20, 5, 25}, {6, 30, 36}}, 5)

	for _, maxK := range []int{2, 3, 5, 10} {
		sel, err := Selector{MaxClusters: maxK, Engine: KMeans{Seed: DefaultSeed}}.Select(points)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sel.Best, 2)
		assert.LessOrEqual(t, sel.Best, maxK)
		assert.Len(t, sel.Candidates, maxK-1)
	}
}

func TestSelector_DefaultBound(t *testing.T) {
	points := blobs([]Vector{{0, 0}, {10, 0}}, 6)

	sel, err := Selector{Engine: KMeans{Seed: DefaultSeed}}.Select(points)
	require.NoError(t, err)
	assert.Len(t, sel.Candidates, DefaultMaxClusters-1)
	assert.Equal(t, DefaultMaxClusters, sel.Candidates[len(sel.Candidates)-1].K)
}

func TestSelector_InvalidBound(t *testing.T) {
	points := blobs([]Vector{{0, 0}, {10, 0}}, 3)

	_, err := Selector{MaxClusters: 1}.Select(points)
	assert.True(t, IsInvalidParameterError(err))

	_, err = Selector{MaxClusters: len(points)}.Select(points)
	assert.True(t, IsInvalidParameterError(err))
}

func TestSelector_TiesGoToSmallerCount(t *testing.T) {
	var points []Vector
	for range 6 {
		points = append(points, Vector{0, 0}, Vector{5, 5})
	}

	sel, err := Selector{MaxClusters: 5, Engine: KMeans{Seed: DefaultSeed}}.Select(points)
	require.NoError(t, err)
	require.Len(t, sel.Candidates, 4)

	for _, c := range sel.Candidates {
		assert.InDelta(t, 1.0, c.Silhouette, 1e-12, "k=%d", c.K)
	}

	assert.Equal(t, 2, sel.Best)
	assert.Equal(t, 2, sel.BestCandidate().K)
}

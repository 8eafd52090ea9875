// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"testing"

	"github.com/jcodagnone/recetime/cluster"
	"github.com/jcodagnone/recetime/recipe"
	"github.com/jcodagnone/recetime/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitRecommender(t *testing.T) {
	saved := loadOptions
	t.Cleanup(func() { loadOptions = saved })

	loadOptions = recipe.LoadOptions{Path: "../recipe/testdata/recipes.csv"}

	r, m, err := fitRecommender(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.K())
	assert.Len(t, m.Records(), 18)

	recs, err := r.Recommend(30, 45, recommend.DefaultCount)
	require.NoError(t, err)
	assert.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), recommend.DefaultCount)
}

func TestFitRecommender_AutomaticGroupCount(t *testing.T) {
	saved := loadOptions
	t.Cleanup(func() { loadOptions = saved })

	loadOptions = recipe.LoadOptions{Path: "../recipe/testdata/recipes.csv"}

	_, m, err := fitRecommender(context.Background(), 0)
	require.NoError(t, err)
	require.NotNil(t, m.Selection)
	assert.Len(t, m.Selection.Candidates, fitOptions.MaxClusters-1)
	assert.Equal(t, m.Selection.Best, m.K())
}

func TestFitRecommender_MissingDataset(t *testing.T) {
	saved := loadOptions
	t.Cleanup(func() { loadOptions = saved })

	loadOptions = recipe.LoadOptions{Path: "testdata/nope.csv"}

	_, _, err := fitRecommender(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading recipes")
}

func TestFitRecommender_InvalidOptions(t *testing.T) {
	savedLoad, savedFit := loadOptions, fitOptions
	t.Cleanup(func() { loadOptions, fitOptions = savedLoad, savedFit })

	loadOptions = recipe.LoadOptions{Path: "../recipe/testdata/recipes.csv"}

	for _, maxK := range []int{0, 1} {
		fitOptions = recommend.DefaultOptions()
		fitOptions.MaxClusters = maxK

		_, _, err := fitRecommender(context.Background(), 0)
		require.Error(t, err, "max clusters %d", maxK)
		assert.True(t, cluster.IsInvalidParameterError(err), "max clusters %d", maxK)
	}
}

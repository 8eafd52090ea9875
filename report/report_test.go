// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/jcodagnone/recetime/cluster"
	"github.com/jcodagnone/recetime/recipe"
	"github.com/jcodagnone/recetime/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSelection(t *testing.T) {
	sel := &cluster.Selection{
		Candidates: []cluster.Candidate{
			{K: 2, Inertia: 1200.5, Silhouette: 0.41},
			{K: 3, Inertia: 600, Silhouette: 0.62},
			{K: 4, Inertia: 450, Silhouette: 0.55},
		},
		Best: 3,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSelection(&buf, sel))

	out := buf.String()
	assert.Contains(t, out, "1,200.50")
	assert.Contains(t, out, "Best group count: 3")

	var marked []string

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "◀") {
			marked = append(marked, line)
		}
	}

	require.Len(t, marked, 1)
	assert.Contains(t, marked[0], "0.6200")
}

func TestSummarize(t *testing.T) {
	records := []recipe.Record{
		{Name: "a", PrepTime: 10, CookTime: 20, TotalTime: 30, Cluster: 0},
		{Name: "b", PrepTime: 20, CookTime: 40, TotalTime: 60, Cluster: 0},
		{Name: "c", PrepTime: 100, CookTime: 50, TotalTime: 150, Cluster: 2},
		{Name: "d", PrepTime: 5, CookTime: 5, TotalTime: 10, Cluster: recipe.Unassigned},
	}

	expected := []ClusterSummary{
		{Cluster: 0, Size: 2, MeanPrep: 15, MeanCook: 30, MeanTotal: 45, MinTotal: 30, MaxTotal: 60},
		{Cluster: 1},
		{Cluster: 2, Size: 1, MeanPrep: 100, MeanCook: 50, MeanTotal: 150, MinTotal: 150, MaxTotal: 150},
	}

	if diff := cmp.Diff(expected, Summarize(records)); diff != "" {
		t.Errorf("summary mismatch (-expected +got):\n%s", diff)
	}
}

func TestWriteClusters(t *testing.T) {
	records := []recipe.Record{
		{PrepTime: 10, CookTime: 20, TotalTime: 30, Cluster: 0},
		{PrepTime: 20, CookTime: 40, TotalTime: 60, Cluster: 0},
		{PrepTime: 600, CookTime: 900, TotalTime: 1500, Cluster: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteClusters(&buf, records))

	out := buf.String()
	assert.Contains(t, out, "30–60")
	assert.Contains(t, out, "1,500–1,500")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}

func TestWriteScatter(t *testing.T) {
	records := []recipe.Record{
		{PrepTime: 0, CookTime: 0, Cluster: 0},
		{PrepTime: 10, CookTime: 10, Cluster: 1},
		{PrepTime: 5, CookTime: 5, Cluster: 2},
		{PrepTime: 5, CookTime: 5, Cluster: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteScatter(&buf, records, 5, 3))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 7)

	assert.Equal(t, "Cooking time (minutes)", lines[0])
	assert.Equal(t, "10 │    1", lines[1])
	assert.Equal(t, "   │  *  ", lines[2])
	assert.Equal(t, " 0 │0    ", lines[3])
	assert.Equal(t, "   └─────", lines[4])
	assert.Equal(t, "    0  10", lines[5])
}

func TestWriteScatter_Errors(t *testing.T) {
	var buf bytes.Buffer

	assert.Error(t, WriteScatter(&buf, nil, 1, 10))

	require.NoError(t, WriteScatter(&buf, nil, 10, 10))
	assert.Equal(t, "(no records)\n", buf.String())
}

func TestWriteRecommendations(t *testing.T) {
	recs := []recommend.Recommendation{
		{Name: "Kashmiri Dum Aloo", PrepTime: 30, CookTime: 45, TotalTime: 75},
		{Name: "Chana Masala", PrepTime: 20, CookTime: 40, TotalTime: 60},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRecommendations(&buf, recs))

	out := buf.String()
	assert.Less(t, strings.Index(out, "Kashmiri Dum Aloo"), strings.Index(out, "Chana Masala"))
	assert.Contains(t, out, " 75 │\n")

	buf.Reset()
	require.NoError(t, WriteRecommendations(&buf, nil))
	assert.Equal(t, "No recipes found.\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	sel := &cluster.Selection{
		Candidates: []cluster.Candidate{{K: 2, Inertia: 10, Silhouette: 0.5}},
		Best:       2,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sel))

	var got cluster.Selection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	if diff := cmp.Diff(*sel, got); diff != "" {
		t.Errorf("json round trip mismatch (-expected +got):\n%s", diff)
	}

	assert.Contains(t, buf.String(), `"silhouette": 0.5`)
}

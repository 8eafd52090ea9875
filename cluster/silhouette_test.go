// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSilhouette(t *testing.T) {
	tests := []struct {
		name   string
		points []Vector
		labels []int
		k      int
		want   float64
	}{
		{
			name:   "two pairs on a line",
			points: []Vector{{0}, {1}, {10}, {11}},
			labels: []int{0, 0, 1, 1},
			k:      2,
			want:   (19.0/21 + 17.0/19) / 2,
		},
		{
			name:   "singleton scores zero",
			points: []Vector{{0}, {2}, {10}},
			labels: []int{0, 0, 1},
			k:      2,
			// point 0: a=2 b=10, point 1: a=2 b=8, point 2 alone
			want: (0.8 + 0.75 + 0) / 3,
		},
		{
			name:   "swapped labels score negative",
			points: []Vector{{0}, {1}, {10}, {11}},
			labels: []int{0, 1, 0, 1},
			k:      2,
			want:   (-0.4 - 0.5 - 0.5 - 0.4) / 4,
		},
		{
			name:   "empty group is ignored",
			points: []Vector{{0}, {1}, {10}, {11}},
			labels: []int{0, 0, 2, 2},
			k:      3,
			want:   (19.0/21 + 17.0/19) / 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Silhouette(tt.points, tt.labels, tt.k)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, -1.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestSilhouette_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		points []Vector
		labels []int
		k      int
	}{
		{"label count mismatch", []Vector{{0}, {1}, {2}}, []int{0, 1}, 2},
		{"single populated group", []Vector{{0}, {1}, {2}}, []int{0, 0, 0}, 2},
		{"every point alone", []Vector{{0}, {1}, {2}}, []int{0, 1, 2}, 3},
		{"label out of range", []Vector{{0}, {1}, {2}}, []int{0, 1, 5}, 2},
		{"negative label", []Vector{{0}, {1}, {2}}, []int{0, -1, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Silhouette(tt.points, tt.labels, tt.k)
			require.Error(t, err)
			assert.True(t, IsInvalidParameterError(err))
		})
	}
}

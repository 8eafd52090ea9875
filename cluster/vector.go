// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is a point in feature space.
type Vector []float64

// String returns a string representation of the Vector.
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%f", x)
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Distance returns the Euclidean distance between v and other.
func (v Vector) Distance(other Vector) float64 {
	return floats.Distance(v, other, 2)
}

// SquaredDistance returns the squared Euclidean distance between v and other.
func (v Vector) SquaredDistance(other Vector) float64 {
	d := v.Distance(other)

	return d * d
}

// checkDims verifies every point shares the dimensionality of the first one.
func checkDims(points []Vector) (int, error) {
	if len(points) == 0 {
		return 0, InvalidParameter("no points")
	}

	dims := len(points[0])
	if dims == 0 {
		return 0, InvalidParameter("points have no dimensions")
	}

	for i, p := range points {
		if len(p) != dims {
			return 0, InvalidParameter("point %d has %d dimensions, want %d", i, len(p), dims)
		}
	}

	return dims, nil
}

// column returns dimension d of every point.
func column(points []Vector, d int) []float64 {
	col := make([]float64, len(points))
	for i, p := range points {
		col[i] = p[d]
	}

	return col
}

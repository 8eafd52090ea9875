// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import "math"

// Silhouette returns the mean silhouette coefficient of a labelling, in
// [-1, 1]. For each point, a is the mean distance to the other members of its
// group and b the lowest mean distance to the members of any other group; the
// point scores (b-a)/max(a, b), or 0 when it is alone in its group.
//
// labels must hold values in [0, k) and at least two, and at most n-1,
// distinct groups must be populated.
func Silhouette(points []Vector, labels []int, k int) (float64, error) {
	if _, err := checkDims(points); err != nil {
		return 0, err
	}

	n := len(points)
	if len(labels) != n {
		return 0, InvalidParameter("%d labels for %d points", len(labels), n)
	}

	if k < 1 {
		return 0, InvalidParameter("group count must be at least 1, got %d", k)
	}

	sizes := make([]int, k)

	for i, l := range labels {
		if l < 0 || l >= k {
			return 0, InvalidParameter("label %d of point %d is outside [0, %d)", l, i, k)
		}

		sizes[l]++
	}

	populated := 0

	for _, s := range sizes {
		if s > 0 {
			populated++
		}
	}

	if populated < 2 || populated > n-1 {
		return 0, InvalidParameter("silhouette needs between 2 and %d populated groups, got %d", n-1, populated)
	}

	sums := make([]float64, k)

	var total float64

	for i, p := range points {
		clear(sums)

		for j, q := range points {
			if i != j {
				sums[labels[j]] += p.Distance(q)
			}
		}

		own := labels[i]
		if sizes[own] < 2 {
			continue
		}

		a := sums[own] / float64(sizes[own]-1)
		b := math.Inf(1)

		for c, s := range sizes {
			if c == own || s == 0 {
				continue
			}

			b = math.Min(b, sums[c]/float64(s))
		}

		if m := math.Max(a, b); m > 0 {
			total += (b - a) / m
		}
	}

	return total / float64(n), nil
}

// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	DefaultSeed          int64 = 42
	DefaultMaxIterations       = 300
	DefaultTolerance           = 1e-4
)

// KMeans partitions points into K groups by iterative centroid assignment.
//
// Initial centres are placed with k-means++ from a PCG source derived from
// Seed, so two fits with the same configuration over the same points produce
// identical groupings. With Restarts > 1 the fit with the lowest inertia wins;
// the earliest restart wins ties.
type KMeans struct {
	K             int
	Seed          int64
	MaxIterations int     // zero means DefaultMaxIterations
	Tolerance     float64 // relative to the mean per-dimension variance
	Restarts      int     // zero means one run
}

// Grouping is the fitted state of a KMeans run.
type Grouping struct {
	Labels     []int
	Centers    []Vector
	Inertia    float64 // sum of squared distances to the assigned centre
	Iterations int
}

// Fit partitions points into km.K groups.
func (km KMeans) Fit(points []Vector) (*Grouping, error) {
	if _, err := checkDims(points); err != nil {
		return nil, err
	}

	if km.K < 1 {
		return nil, InvalidParameter("group count must be at least 1, got %d", km.K)
	}

	if km.K > len(points) {
		return nil, InvalidParameter("group count %d exceeds the %d available records", km.K, len(points))
	}

	if km.MaxIterations < 0 || km.Restarts < 0 || km.Tolerance < 0 || math.IsNaN(km.Tolerance) {
		return nil, InvalidParameter("iterations, restarts and tolerance must not be negative")
	}

	maxIter := km.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}

	restarts := max(km.Restarts, 1)
	tol := km.Tolerance * meanVariance(points)
	rng := rand.New(rand.NewPCG(uint64(km.Seed), uint64(km.Seed)))

	var best *Grouping

	for range restarts {
		g := lloyd(points, seedCenters(points, km.K, rng), maxIter, tol)
		if best == nil || g.Inertia < best.Inertia {
			best = g
		}
	}

	return best, nil
}

// Predict returns the index of the centre nearest to v. Ties go to the lower
// index.
func (g *Grouping) Predict(v Vector) int {
	idx := 0
	dist := math.Inf(1)

	for i, c := range g.Centers {
		if d := v.SquaredDistance(c); d < dist {
			dist = d
			idx = i
		}
	}

	return idx
}

// Sizes returns the number of members per group.
func (g *Grouping) Sizes() []int {
	sizes := make([]int, len(g.Centers))
	for _, l := range g.Labels {
		sizes[l]++
	}

	return sizes
}

// K returns the number of groups.
func (g *Grouping) K() int {
	return len(g.Centers)
}

func meanVariance(points []Vector) float64 {
	dims := len(points[0])
	variances := make([]float64, dims)

	for d := range dims {
		_, variances[d] = stat.PopMeanVariance(column(points, d), nil)
	}

	return math.Max(stat.Mean(variances, nil), 0)
}

// seedCenters implements k-means++: the first centre is drawn uniformly and
// every following one with probability proportional to its squared distance
// to the nearest centre already chosen.
func seedCenters(points []Vector, k int, rng *rand.Rand) []Vector {
	n := len(points)
	centers := make([]Vector, 0, k)
	centers = append(centers, points[rng.IntN(n)].Clone())

	closest := make([]float64, n)
	for i, p := range points {
		closest[i] = p.SquaredDistance(centers[0])
	}

	for len(centers) < k {
		total := floats.Sum(closest)
		next := -1

		if total > 0 {
			target := rng.Float64() * total

			var cumulative float64

			for i, d := range closest {
				if d == 0 {
					continue
				}

				cumulative += d
				next = i

				if cumulative > target {
					break
				}
			}
		}

		if next < 0 {
			// every point sits on a centre already
			next = rng.IntN(n)
		}

		c := points[next].Clone()
		centers = append(centers, c)

		for i, p := range points {
			closest[i] = math.Min(closest[i], p.SquaredDistance(c))
		}
	}

	return centers
}

func lloyd(points []Vector, centers []Vector, maxIter int, tol float64) *Grouping {
	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = -1
	}

	g := &Grouping{Labels: labels}

	for g.Iterations < maxIter {
		g.Iterations++

		if assign(points, centers, labels) == 0 {
			break
		}

		next := update(points, labels, centers)

		var shift float64
		for j := range centers {
			shift += centers[j].SquaredDistance(next[j])
		}

		centers = next

		if shift <= tol {
			break
		}
	}

	// keep labels consistent with the final centres
	assign(points, centers, labels)

	g.Centers = centers
	for i, p := range points {
		g.Inertia += p.SquaredDistance(centers[labels[i]])
	}

	return g
}

// assign moves every point to its nearest centre and returns how many moved.
func assign(points []Vector, centers []Vector, labels []int) int {
	changed := 0

	for i, p := range points {
		best := 0
		dist := math.Inf(1)

		for j, c := range centers {
			if d := p.SquaredDistance(c); d < dist {
				dist = d
				best = j
			}
		}

		if labels[i] != best {
			labels[i] = best
			changed++
		}
	}

	return changed
}

// update recomputes centres as member means. An empty group takes over the
// point farthest from its current centre, drawn from groups that can spare
// one.
func update(points []Vector, labels []int, centers []Vector) []Vector {
	k, dims := len(centers), len(points[0])
	counts := make([]int, k)
	sums := make([]Vector, k)

	for j := range sums {
		sums[j] = make(Vector, dims)
	}

	for i, p := range points {
		l := labels[i]
		counts[l]++
		floats.Add(sums[l], p)
	}

	for j := range k {
		if counts[j] > 0 {
			continue
		}

		far, farDist := -1, -1.0

		for i, p := range points {
			if counts[labels[i]] < 2 {
				continue
			}

			if d := p.SquaredDistance(centers[labels[i]]); d > farDist {
				far, farDist = i, d
			}
		}

		old := labels[far]
		counts[old]--
		floats.Sub(sums[old], points[far])

		labels[far] = j
		counts[j] = 1
		sums[j] = points[far].Clone()
	}

	for j := range sums {
		floats.Scale(1/float64(counts[j]), sums[j])
	}

	return sums
}

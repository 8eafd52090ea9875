// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

// DefaultMaxClusters is the default upper bound of the candidate scan.
const DefaultMaxClusters = 10

// Candidate holds the quality scores of one candidate group count.
type Candidate struct {
	K          int     `json:"k"`
	Inertia    float64 `json:"inertia"`
	Silhouette float64 `json:"silhouette"`
}

// Selection is the outcome of a candidate scan.
type Selection struct {
	Candidates []Candidate `json:"candidates"`
	Best       int         `json:"best"`
}

// BestCandidate returns the scores of the chosen group count.
func (s *Selection) BestCandidate() Candidate {
	for _, c := range s.Candidates {
		if c.K == s.Best {
			return c
		}
	}

	return Candidate{}
}

// Selector scans group counts from 2 to MaxClusters and picks the one with the
// highest silhouette. Candidates are scanned in increasing order and the first
// maximum wins, so ties resolve to the smaller count.
type Selector struct {
	MaxClusters int // zero means DefaultMaxClusters
	// Engine configures every run; its K is overwritten per candidate.
	Engine KMeans
	// Observer, when set, is called after each candidate is scored.
	Observer func(Candidate)
}

// Select runs the scan over points.
func (s Selector) Select(points []Vector) (*Selection, error) {
	maxK := s.MaxClusters
	if maxK == 0 {
		maxK = DefaultMaxClusters
	}

	if maxK < 2 {
		return nil, InvalidParameter("candidate bound must be at least 2, got %d", maxK)
	}

	if maxK >= len(points) {
		return nil, InvalidParameter("candidate bound %d must be below the %d available records", maxK, len(points))
	}

	sel := &Selection{Candidates: make([]Candidate, 0, maxK-1)}
	bestScore := 0.0

	for k := 2; k <= maxK; k++ {
		engine := s.Engine
		engine.K = k

		g, err := engine.Fit(points)
		if err != nil {
			return nil, err
		}

		score, err := Silhouette(points, g.Labels, k)
		if err != nil {
			return nil, err
		}

		c := Candidate{K: k, Inertia: g.Inertia, Silhouette: score}
		sel.Candidates = append(sel.Candidates, c)

		if sel.Best == 0 || score > bestScore {
			sel.Best, bestScore = k, score
		}

		if s.Observer != nil {
			s.Observer(c)
		}
	}

	return sel, nil
}

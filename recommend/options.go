// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package recommend

import (
	"github.com/go-playground/validator/v10"
	"github.com/jcodagnone/recetime/cluster"
)

// DefaultCount is the number of recommendations returned when the caller
// does not ask for a specific amount.
const DefaultCount = 5

// Options configures fitting.
type Options struct {
	// MaxClusters bounds the candidate scan used when Fit is not given an
	// explicit group count.
	MaxClusters   int `validate:"gte=2"`
	Seed          int64
	MaxIterations int     `validate:"gte=1"`
	Tolerance     float64 `validate:"gte=0"`
	Restarts      int     `validate:"gte=1"`
	// Observer receives every scored candidate during the scan. It is a
	// reporting hook and has no effect on the outcome.
	Observer func(cluster.Candidate)
}

// DefaultOptions returns the options used by the command line.
func DefaultOptions() Options {
	return Options{
		MaxClusters:   cluster.DefaultMaxClusters,
		Seed:          cluster.DefaultSeed,
		MaxIterations: cluster.DefaultMaxIterations,
		Tolerance:     cluster.DefaultTolerance,
		Restarts:      1,
	}
}

var validate = validator.New()

// Validate checks the option ranges.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return &cluster.Error{
			Type:    cluster.ErrorTypeInvalidParameter,
			Message: "invalid options",
			Err:     err,
		}
	}

	return nil
}

func (o Options) engine() cluster.KMeans {
	return cluster.KMeans{
		Seed:          o.Seed,
		MaxIterations: o.MaxIterations,
		Tolerance:     o.Tolerance,
		Restarts:      o.Restarts,
	}
}

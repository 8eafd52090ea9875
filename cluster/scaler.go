// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cluster

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Scaler standardises features to zero mean and unit variance.
//
// Parameters are fit once by FitTransform and then applied unchanged to every
// vector passed to Transform. A dimension with zero spread keeps a scale of 1,
// so a constant feature is centred but not divided.
type Scaler struct {
	mean  Vector
	scale Vector
}

// FitTransform fits the scaling parameters over points and returns the
// scaled copies. The input is left untouched.
func (s *Scaler) FitTransform(points []Vector) ([]Vector, error) {
	dims, err := checkDims(points)
	if err != nil {
		return nil, err
	}

	mean := make(Vector, dims)
	scale := make(Vector, dims)

	for d := range dims {
		m, variance := stat.PopMeanVariance(column(points, d), nil)

		mean[d] = m
		scale[d] = math.Sqrt(variance)

		if scale[d] == 0 {
			scale[d] = 1
		}
	}

	s.mean, s.scale = mean, scale

	out := make([]Vector, len(points))
	for i, p := range points {
		out[i] = s.apply(p)
	}

	return out, nil
}

// Transform applies the fitted parameters to v.
func (s *Scaler) Transform(v Vector) (Vector, error) {
	if !s.Fitted() {
		return nil, NotFitted("scaler transform")
	}

	if len(v) != len(s.mean) {
		return nil, InvalidParameter("vector has %d dimensions, scaler was fit on %d", len(v), len(s.mean))
	}

	return s.apply(v), nil
}

// Fitted reports whether FitTransform has run.
func (s *Scaler) Fitted() bool {
	return s.mean != nil
}

// Mean returns a copy of the fitted per-dimension mean.
func (s *Scaler) Mean() Vector {
	return s.mean.Clone()
}

// Scale returns a copy of the fitted per-dimension spread.
func (s *Scaler) Scale() Vector {
	return s.scale.Clone()
}

func (s *Scaler) apply(v Vector) Vector {
	out := make(Vector, len(v))
	floats.SubTo(out, v, s.mean)
	floats.Div(out, s.scale)

	return out
}

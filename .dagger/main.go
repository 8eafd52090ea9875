// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"dagger/recetime/internal/dagger"
	"fmt"
	"log"
)

type Recetime struct{}

// Runs the test suite
func (r *Recetime) Test(
	ctx context.Context,
	// +defaultPath="/"
	// +ignore=["build", "dataset"]
	src *dagger.Directory,
) (string, error) {
	return r.BuildCliBase(ctx, src).
		WithExec([]string{"go", "test", "-count=1", "./..."}).
		Stdout(ctx)
}

// Suggests recipes from a dataset using the released CLI image.
func (r *Recetime) Recommend(
	ctx context.Context,
	// Directory holding the dataset
	// +defaultPath="/dataset"
	data *dagger.Directory,
	// Dataset file inside data
	// +optional
	// +default="IndianFoodDatasetCSV.csv"
	file string,
	// Preparation time in minutes
	// +optional
	// +default=30
	prep int,
	// Cooking time in minutes
	// +optional
	// +default=45
	cook int,
	// +optional
	// +defaultPath="/"
	// +ignore=["build", "dataset"]
	src *dagger.Directory,
) (string, error) {
	log.Printf("Recommending for prep=%d cook=%d from %s", prep, cook, file)

	out, err := r.BuildCli(ctx, src).
		WithDirectory("/app/dataset", data).
		WithExec([]string{
			"/app/recetime", "recommend",
			"--data", "/app/dataset/" + file,
			"--prep", fmt.Sprint(prep),
			"--cook", fmt.Sprint(cook),
		}).
		Stdout(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to run recommend: %w", err)
	}

	return out, nil
}

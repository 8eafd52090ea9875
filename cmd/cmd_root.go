// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jcodagnone/recetime/recipe"
	"github.com/jcodagnone/recetime/recommend"
	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "recetime",
	Short: "recipe suggestions by preparation and cooking time",
	Long: `
recetime groups the recipes of a dataset by their preparation, cooking and
total time, and suggests the recipes that best fit a given time budget.
`,
	SilenceUsage: true,
}

var (
	loadOptions = recipe.LoadOptions{}
	fitOptions  = recommend.DefaultOptions()
)

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(
		&loadOptions.Path,
		"data",
		"dataset/IndianFoodDatasetCSV.csv",
		"Recipe dataset (CSV, TSV, Parquet or JSON)",
	)
	flags.StringVar(
		&loadOptions.NameColumn,
		"name-column",
		recipe.DefaultNameColumn,
		"Column holding the recipe name",
	)
	flags.StringVar(
		&loadOptions.PrepColumn,
		"prep-column",
		recipe.DefaultPrepColumn,
		"Column holding the preparation time in minutes",
	)
	flags.StringVar(
		&loadOptions.CookColumn,
		"cook-column",
		recipe.DefaultCookColumn,
		"Column holding the cooking time in minutes",
	)
	flags.IntVar(
		&fitOptions.MaxClusters,
		"max-clusters",
		fitOptions.MaxClusters,
		"Largest group count evaluated when choosing it automatically",
	)
	flags.Int64Var(
		&fitOptions.Seed,
		"seed",
		fitOptions.Seed,
		"Seed for the placement of the initial group centres",
	)
	flags.IntVar(
		&fitOptions.MaxIterations,
		"max-iter",
		fitOptions.MaxIterations,
		"Maximum number of assignment rounds per grouping",
	)
	flags.IntVar(
		&fitOptions.Restarts,
		"restarts",
		fitOptions.Restarts,
		"Number of groupings with different initial centres; the tightest one wins",
	)
	flags.Float64Var(
		&fitOptions.Tolerance,
		"tolerance",
		fitOptions.Tolerance,
		"Centre movement, relative to the feature variance, under which a grouping is considered stable",
	)
}

// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/jcodagnone/recetime/recommend"
	"github.com/jcodagnone/recetime/report"
	"github.com/spf13/cobra"
)

type recommendFlags struct {
	prep     float64
	cook     float64
	count    int
	clusters int
	exclude  []string
	json     bool
}

var recommendOpts = recommendFlags{}

type recommendOutput struct {
	Query struct {
		PrepTime  float64 `json:"prep_time"`
		CookTime  float64 `json:"cook_time"`
		TotalTime float64 `json:"total_time"`
		Cluster   int     `json:"cluster"`
	} `json:"query"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest recipes close to a preparation and cooking time",
	Long: `Groups the dataset by time profile, finds the group of the requested
preparation and cooking time and lists its recipes whose total time is the
closest to the requested one.

$ recetime recommend --prep 30 --cook 45 -n 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, m, err := fitRecommender(cmd.Context(), recommendOpts.clusters)
		if err != nil {
			return err
		}

		c, err := m.Assign(recommendOpts.prep, recommendOpts.cook)
		if err != nil {
			return err
		}

		recs, err := r.Recommend(recommendOpts.prep, recommendOpts.cook, recommendOpts.count)
		if err != nil {
			return fmt.Errorf("recommending: %w", err)
		}

		recs = recommend.Exclude(recs, recommendOpts.exclude...)

		if recommendOpts.json {
			var out recommendOutput
			out.Query.PrepTime = recommendOpts.prep
			out.Query.CookTime = recommendOpts.cook
			out.Query.TotalTime = recommendOpts.prep + recommendOpts.cook
			out.Query.Cluster = c
			out.Recommendations = recs

			return report.WriteJSON(os.Stdout, out)
		}

		fmt.Printf("Recommended recipes for %g + %g minutes (group %d):\n",
			recommendOpts.prep, recommendOpts.cook, c)

		return report.WriteRecommendations(os.Stdout, recs)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	flags := recommendCmd.Flags()
	flags.Float64Var(&recommendOpts.prep, "prep", 30, "Preparation time in minutes")
	flags.Float64Var(&recommendOpts.cook, "cook", 45, "Cooking time in minutes")
	flags.IntVarP(&recommendOpts.count, "count", "n", recommend.DefaultCount, "Number of recipes to suggest")
	flags.IntVarP(
		&recommendOpts.clusters,
		"clusters",
		"k",
		0,
		"Number of groups; 0 picks the one with the best silhouette",
	)
	flags.StringSliceVar(
		&recommendOpts.exclude,
		"exclude",
		nil,
		"Skip recipes whose name contains any of these words (case and accent insensitive)",
	)
	flags.BoolVar(&recommendOpts.json, "json", false, "Print the result as JSON")
}

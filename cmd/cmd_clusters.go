// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/jcodagnone/recetime/cluster"
	"github.com/jcodagnone/recetime/report"
	"github.com/spf13/cobra"
)

type clustersFlags struct {
	clusters int
	width    int
	height   int
	json     bool
}

var clustersOpts = clustersFlags{}

type clustersOutput struct {
	Selection *cluster.Selection      `json:"selection,omitempty"`
	Inertia   float64                 `json:"inertia"`
	Clusters  []report.ClusterSummary `json:"clusters"`
}

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Show how the recipes group by time profile",
	Long: `Groups the dataset and prints, when the group count is chosen
automatically, the dispersion and silhouette of every candidate, followed by
a summary of every group and a preparation vs cooking time chart.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, m, err := fitRecommender(cmd.Context(), clustersOpts.clusters)
		if err != nil {
			return err
		}

		records := m.Records()

		if clustersOpts.json {
			return report.WriteJSON(os.Stdout, clustersOutput{
				Selection: m.Selection,
				Inertia:   m.Inertia(),
				Clusters:  report.Summarize(records),
			})
		}

		if m.Selection != nil {
			fmt.Println("Group count candidates:")

			if err := report.WriteSelection(os.Stdout, m.Selection); err != nil {
				return err
			}

			fmt.Println()
		}

		fmt.Println("Groups:")

		if err := report.WriteClusters(os.Stdout, records); err != nil {
			return err
		}

		fmt.Println()

		return report.WriteScatter(os.Stdout, records, clustersOpts.width, clustersOpts.height)
	},
}

func init() {
	rootCmd.AddCommand(clustersCmd)

	flags := clustersCmd.Flags()
	flags.IntVarP(
		&clustersOpts.clusters,
		"clusters",
		"k",
		0,
		"Number of groups; 0 picks the one with the best silhouette",
	)
	flags.IntVar(&clustersOpts.width, "width", 72, "Chart width in characters")
	flags.IntVar(&clustersOpts.height, "height", 20, "Chart height in lines")
	flags.BoolVar(&clustersOpts.json, "json", false, "Print the result as JSON")
}

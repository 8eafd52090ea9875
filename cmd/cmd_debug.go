// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jcodagnone/recetime/recipe"
	"github.com/jcodagnone/recetime/recommend"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var debugClusters int

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dev tools",
}

var debugScaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Show the scaled features and the group of time pairs",
	Long: `Reads a preparation and a cooking time per line, and prints the scaled
feature vector and the group the pair is assigned to.

$ echo 30 45 | recetime debug scale -k 5
30 45		(-0.123456 0.345678 0.123456)	group 2
	`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, m, err := fitRecommender(cmd.Context(), debugClusters)
		if err != nil {
			return err
		}

		if isatty.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprintln(os.Stderr, "Enter a preparation and a cooking time per line…")
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			prep, cook, err := parsePair(line)
			if err != nil {
				fmt.Printf("%s\t%q\n", line, err)

				continue
			}

			printScaled(m, line, prep, cook)
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		return nil
	},
}

func parsePair(line string) (float64, float64, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected two durations, got %d fields", len(fields))
	}

	prep, ok := recipe.ParseDuration(fields[0])
	if !ok {
		return 0, 0, fmt.Errorf("invalid preparation time %q", fields[0])
	}

	cook, ok := recipe.ParseDuration(fields[1])
	if !ok {
		return 0, 0, fmt.Errorf("invalid cooking time %q", fields[1])
	}

	return prep, cook, nil
}

func printScaled(m *recommend.Model, line string, prep, cook float64) {
	v, err := m.Scale(prep, cook)
	if err != nil {
		fmt.Printf("%s\t%q\n", line, err)

		return
	}

	c, err := m.Assign(prep, cook)
	if err != nil {
		fmt.Printf("%s\t%q\n", line, err)

		return
	}

	fmt.Printf("%s\t\t%s\tgroup %d\n", line, v, c)
}

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.AddCommand(debugScaleCmd)
	debugScaleCmd.Flags().IntVarP(
		&debugClusters,
		"clusters",
		"k",
		0,
		"Number of groups; 0 picks the one with the best silhouette",
	)
}

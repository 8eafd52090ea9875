// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jcodagnone/recetime/cluster"
	"github.com/jcodagnone/recetime/recipe"
	"github.com/jcodagnone/recetime/recommend"
	"github.com/jcodagnone/recetime/utils/textutils"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// fitRecommender loads the dataset and fits a recommender with k groups, or
// with the best scoring group count when k is zero.
func fitRecommender(ctx context.Context, k int) (*recommend.Recommender, *recommend.Model, error) {
	raw, err := recipe.Load(ctx, loadOptions)
	if err != nil {
		return nil, nil, fmt.Errorf("loading recipes: %w", err)
	}

	ds, stats := recipe.Build(raw)
	if stats.Dropped > 0 {
		log.Printf("⚠️  Dropped %s of %s recipes without numeric preparation or cooking time",
			textutils.FormatInt(int64(stats.Dropped)),
			textutils.FormatInt(int64(stats.Read)))
	}

	log.Printf("Loaded %s recipes from %s", textutils.FormatInt(int64(stats.Kept)), loadOptions.Path)

	opts := fitOptions

	var bar *progressbar.ProgressBar

	if k == 0 {
		opts.Observer = func(c cluster.Candidate) {
			if bar == nil {
				log.Printf("k=%d wcss=%.2f silhouette=%.4f", c.K, c.Inertia, c.Silhouette)

				return
			}

			_ = bar.Add(1)
		}
	}

	r, err := recommend.New(ds, opts)
	if err != nil {
		return nil, nil, err
	}

	// sized from validated options
	if k == 0 && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(opts.MaxClusters-1,
			progressbar.OptionSetDescription("Scoring group counts"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	m, err := r.Fit(k)
	if bar != nil {
		_ = bar.Finish()
	}

	if err != nil {
		return nil, nil, fmt.Errorf("fitting: %w", err)
	}

	if m.Selection != nil {
		best := m.Selection.BestCandidate()
		log.Printf("✅ Chose %d groups (silhouette %.4f)", best.K, best.Silhouette)
	} else {
		log.Printf("✅ Grouped recipes into %d groups", m.K())
	}

	return r, m, nil
}

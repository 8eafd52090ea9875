// Copyright 2025 The ChapaUY Authors
// SPDX-License-Identifier: Apache-2.0

// Package report renders the results of fitting and recommendation for
// humans and machines. It only reads values; it never fits anything.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/jcodagnone/recetime/cluster"
	"github.com/jcodagnone/recetime/recommend"
	"github.com/jcodagnone/recetime/recipe"
	"github.com/jcodagnone/recetime/utils/textutils"
)

const barWidth = 24

// table draws a box around rows of already formatted cells.
type table struct {
	header []string
	rows   [][]string
	right  []bool // right-align column
}

func (t *table) render(sb *strings.Builder) {
	widths := make([]int, len(t.header))

	for i, h := range t.header {
		widths[i] = utf8.RuneCountInString(h)
	}

	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	line := func(left, mid, right string) {
		sb.WriteString(left)

		for i, w := range widths {
			if i > 0 {
				sb.WriteString(mid)
			}

			sb.WriteString(strings.Repeat("─", w+2))
		}

		sb.WriteString(right + "\n")
	}

	cells := func(row []string) {
		sb.WriteString("│")

		for i, cell := range row {
			pad := strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell))
			if t.right != nil && t.right[i] {
				sb.WriteString(" " + pad + cell + " │")
			} else {
				sb.WriteString(" " + cell + pad + " │")
			}
		}

		sb.WriteString("\n")
	}

	line("╭", "┬", "╮")
	cells(t.header)
	line("├", "┼", "┤")

	for _, row := range t.rows {
		cells(row)
	}

	line("╰", "┴", "╯")
}

func bar(v, maxV float64) string {
	if maxV <= 0 || v <= 0 {
		return ""
	}

	return strings.Repeat("█", int(math.Round(v/maxV*barWidth)))
}

// WriteSelection renders the candidate scan: the within-group dispersion
// (elbow) and the silhouette of every candidate, marking the chosen one.
func WriteSelection(w io.Writer, sel *cluster.Selection) error {
	var maxInertia, maxSilhouette float64

	for _, c := range sel.Candidates {
		maxInertia = math.Max(maxInertia, c.Inertia)
		maxSilhouette = math.Max(maxSilhouette, c.Silhouette)
	}

	t := table{
		header: []string{"k", "WCSS", "", "Silhouette", "", ""},
		right:  []bool{true, true, false, true, false, false},
	}

	for _, c := range sel.Candidates {
		mark := ""
		if c.K == sel.Best {
			mark = "◀"
		}

		t.rows = append(t.rows, []string{
			fmt.Sprint(c.K),
			textutils.FormatFloat(c.Inertia, 2),
			bar(c.Inertia, maxInertia),
			textutils.FormatFloat(c.Silhouette, 4),
			bar(c.Silhouette, maxSilhouette),
			mark,
		})
	}

	var sb strings.Builder

	t.render(&sb)
	fmt.Fprintf(&sb, "Best group count: %d\n", sel.Best)

	_, err := io.WriteString(w, sb.String())

	return err
}

// ClusterSummary describes the members of one group, in minutes.
type ClusterSummary struct {
	Cluster   int     `json:"cluster"`
	Size      int     `json:"size"`
	MeanPrep  float64 `json:"mean_prep"`
	MeanCook  float64 `json:"mean_cook"`
	MeanTotal float64 `json:"mean_total"`
	MinTotal  float64 `json:"min_total"`
	MaxTotal  float64 `json:"max_total"`
}

// Summarize aggregates labelled records per group. Unassigned records are
// skipped and groups are returned by id.
func Summarize(records []recipe.Record) []ClusterSummary {
	k := 0
	for _, r := range records {
		k = max(k, r.Cluster+1)
	}

	out := make([]ClusterSummary, k)
	for i := range out {
		out[i] = ClusterSummary{Cluster: i, MinTotal: math.Inf(1), MaxTotal: math.Inf(-1)}
	}

	for _, r := range records {
		if r.Cluster < 0 {
			continue
		}

		s := &out[r.Cluster]
		s.Size++
		s.MeanPrep += r.PrepTime
		s.MeanCook += r.CookTime
		s.MeanTotal += r.TotalTime
		s.MinTotal = math.Min(s.MinTotal, r.TotalTime)
		s.MaxTotal = math.Max(s.MaxTotal, r.TotalTime)
	}

	for i := range out {
		s := &out[i]
		if s.Size == 0 {
			s.MinTotal, s.MaxTotal = 0, 0

			continue
		}

		n := float64(s.Size)
		s.MeanPrep /= n
		s.MeanCook /= n
		s.MeanTotal /= n
	}

	return out
}

// WriteClusters renders the membership of every group.
func WriteClusters(w io.Writer, records []recipe.Record) error {
	t := table{
		header: []string{"Group", "Recipes", "Prep (avg)", "Cook (avg)", "Total (avg)", "Total (range)"},
		right:  []bool{true, true, true, true, true, true},
	}

	for _, s := range Summarize(records) {
		t.rows = append(t.rows, []string{
			fmt.Sprint(s.Cluster),
			textutils.FormatInt(int64(s.Size)),
			textutils.FormatFloat(s.MeanPrep, 1),
			textutils.FormatFloat(s.MeanCook, 1),
			textutils.FormatFloat(s.MeanTotal, 1),
			textutils.FormatFloat(s.MinTotal, 0) + "–" + textutils.FormatFloat(s.MaxTotal, 0),
		})
	}

	var sb strings.Builder

	t.render(&sb)

	_, err := io.WriteString(w, sb.String())

	return err
}

const glyphs = "0123456789abcdefghijklmnopqrstuvwxyz"

func glyph(c int) byte {
	if c < 0 || c >= len(glyphs) {
		return '?'
	}

	return glyphs[c]
}

// WriteScatter plots preparation time (x) against cooking time (y), one
// character per cell holding the group id of the records falling in it, or
// '*' when records of different groups share the cell.
func WriteScatter(w io.Writer, records []recipe.Record, width, height int) error {
	if width < 2 || height < 2 {
		return fmt.Errorf("scatter needs at least 2x2 cells, got %dx%d", width, height)
	}

	if len(records) == 0 {
		_, err := io.WriteString(w, "(no records)\n")

		return err
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, r := range records {
		minX, maxX = math.Min(minX, r.PrepTime), math.Max(maxX, r.PrepTime)
		minY, maxY = math.Min(minY, r.CookTime), math.Max(maxY, r.CookTime)
	}

	cell := func(v, lo, hi float64, n int) int {
		if hi == lo {
			return 0
		}

		return min(int((v-lo)/(hi-lo)*float64(n-1)+0.5), n-1)
	}

	grid := make([][]byte, height)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width))
	}

	for _, r := range records {
		x := cell(r.PrepTime, minX, maxX, width)
		y := height - 1 - cell(r.CookTime, minY, maxY, height)

		switch g := glyph(r.Cluster); grid[y][x] {
		case ' ':
			grid[y][x] = g
		case g:
			// same group, keep
		default:
			grid[y][x] = '*'
		}
	}

	yLabelHi := textutils.FormatFloat(maxY, 0)
	yLabelLo := textutils.FormatFloat(minY, 0)
	pad := max(utf8.RuneCountInString(yLabelHi), utf8.RuneCountInString(yLabelLo))

	var sb strings.Builder

	sb.WriteString("Cooking time (minutes)\n")

	for i, row := range grid {
		label := ""

		switch i {
		case 0:
			label = yLabelHi
		case height - 1:
			label = yLabelLo
		}

		fmt.Fprintf(&sb, "%*s │%s\n", pad, label, row)
	}

	fmt.Fprintf(&sb, "%*s └%s\n", pad, "", strings.Repeat("─", width))

	lo, hi := textutils.FormatFloat(minX, 0), textutils.FormatFloat(maxX, 0)
	gap := max(width-utf8.RuneCountInString(lo)-utf8.RuneCountInString(hi), 1)
	fmt.Fprintf(&sb, "%*s  %s%s%s\n", pad, "", lo, strings.Repeat(" ", gap), hi)
	fmt.Fprintf(&sb, "%*s  Preparation time (minutes)\n", pad, "")

	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteRecommendations renders the suggested recipes in ranking order.
func WriteRecommendations(w io.Writer, recs []recommend.Recommendation) error {
	if len(recs) == 0 {
		_, err := io.WriteString(w, "No recipes found.\n")

		return err
	}

	t := table{
		header: []string{"#", "Recipe", "Prep", "Cook", "Total"},
		right:  []bool{true, false, true, true, true},
	}

	for i, r := range recs {
		t.rows = append(t.rows, []string{
			fmt.Sprint(i + 1),
			r.Name,
			textutils.FormatFloat(r.PrepTime, 0),
			textutils.FormatFloat(r.CookTime, 0),
			textutils.FormatFloat(r.TotalTime, 0),
		})
	}

	var sb strings.Builder

	t.render(&sb)

	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lgleje/CRF/featgen"
)

func newCollectCmd(a *app) *cobra.Command {
	var data, out string
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Assign feature ids over training data and write the id table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			train, err := a.readCorpus(data)
			if err != nil {
				return err
			}
			g, err := a.generator()
			if err != nil {
				return err
			}
			if _, err = g.Train(train.Iter(), featgen.DefaultTrainOptions()); err != nil {
				return err
			}
			if err = g.WriteFile(out); err != nil {
				return err
			}
			g.LogStats()
			a.logMetrics()
			fmt.Fprintf(cmd.OutOrStdout(), "%d features written to %s\n", g.NumFeatures(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "training data (token<TAB>label columns)")
	cmd.Flags().StringVar(&out, "out", "features.txt", "output file")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newCountCmd(a *app) *cobra.Command {
	var data, features string
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count valid feature occurrences per sequence against a stored id table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			if err = g.ReadFile(features); err != nil {
				return err
			}
			eval, err := a.readCorpus(data)
			if err != nil {
				return err
			}
			counts, err := g.ActiveCounts(cmd.Context(), eval.Sequences(), a.cfg.Workers)
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			for i, n := range counts {
				fmt.Fprintf(w, "%d\t%d\n", i, n)
			}
			a.logMetrics()
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "sequences to scan")
	cmd.Flags().StringVar(&features, "features", "features.txt", "id table written by collect")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newDumpCmd(a *app) *cobra.Command {
	var features, weights string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print feature name, label, state and weight for every feature id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			if err = g.ReadFile(features); err != nil {
				return err
			}
			wts, err := readWeights(weights, g.NumFeatures())
			if err != nil {
				return err
			}
			a.logger.Debug("dumping weights", slog.Int("features", len(wts)))
			return g.DisplayModel(wts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&features, "features", "features.txt", "id table written by collect")
	cmd.Flags().StringVar(&weights, "weights", "", "one weight per line, indexed by feature id; zeros when empty")

	return cmd
}

// readWeights reads one float per line; an empty path yields n zeros.
func readWeights(path string, n int) ([]float64, error) {
	if path == "" {
		return make([]float64, n), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []float64
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		w, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("weights line %d: %w", line, err)
		}
		out = append(out, w)
	}

	return out, sc.Err()
}

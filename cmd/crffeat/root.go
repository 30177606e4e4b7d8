// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/lgleje/CRF/config"
	"github.com/lgleje/CRF/corpus"
	"github.com/lgleje/CRF/featgen"
	"github.com/lgleje/CRF/feature"
	"github.com/lgleje/CRF/kinds"
	"github.com/lgleje/CRF/model"
)

// app carries what every subcommand needs after flag parsing.
type app struct {
	configPath string
	logLevel   string

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "crffeat",
		Short:         "Collect and inspect CRF feature id tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "crf.yaml", "configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log_level from the configuration")

	root.AddCommand(newCollectCmd(a), newCountCmd(a), newDumpCmd(a))

	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	a.registry = prometheus.NewRegistry()

	return nil
}

// generator builds the model, the configured kinds and the engine.
func (a *app) generator() (*featgen.Generator, error) {
	var opts []model.Option
	if len(a.cfg.StartLabels) > 0 {
		opts = append(opts, model.WithStartStates(a.cfg.LabelIDs(a.cfg.StartLabels)...))
	}
	if len(a.cfg.EndLabels) > 0 {
		opts = append(opts, model.WithEndStates(a.cfg.LabelIDs(a.cfg.EndLabels)...))
	}
	m, err := model.NewFlat(len(a.cfg.Labels), opts...)
	if err != nil {
		return nil, err
	}

	ks := make([]feature.Kind, 0, len(a.cfg.Kinds))
	for _, name := range a.cfg.Kinds {
		switch name {
		case "edge":
			ks = append(ks, kinds.NewEdge(m))
		case "observed_edge":
			ks = append(ks, kinds.NewObservedEdge(m))
		case "start":
			ks = append(ks, kinds.NewStart(m))
		case "end":
			ks = append(ks, kinds.NewEnd(m))
		case "word":
			ks = append(ks, kinds.NewWord(a.cfg.RareThreshold))
		case "unknown":
			ks = append(ks, kinds.NewUnknown(m, a.cfg.RareThreshold))
		default:
			return nil, fmt.Errorf("unknown feature kind %q", name)
		}
	}

	return featgen.New(m,
		featgen.WithKinds(ks...),
		featgen.WithMaxMemory(a.cfg.MaxMemory),
		featgen.WithLogger(a.logger),
		featgen.WithMetrics(a.registry))
}

// readCorpus reads a column file with the configured labels.
func (a *app) readCorpus(path string) (*corpus.Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return corpus.Read(f, a.cfg.Labels)
}

// logMetrics reports the gathered engine counters at debug level.
func (a *app) logMetrics() {
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Warn("gather metrics", slog.Any("err", err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			attrs := []any{slog.String("metric", mf.GetName()), slog.Float64("value", v)}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, slog.String(lp.GetName(), lp.GetValue()))
			}
			a.logger.Debug("metric", attrs...)
		}
	}
}

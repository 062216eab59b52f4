package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/comfforts/logger"
	"github.com/prometheus/client_golang/prometheus"

	hp "github.com/hankgalt/binheap/pkg/heap"
	"github.com/hankgalt/binheap/pkg/metrics"
	envutils "github.com/hankgalt/binheap/pkg/utils/environment"
)

const HEAP_NAME = "heapsort"

func main() {
	l := logger.GetSlogLogger()
	ctx := logger.WithLogger(context.Background(), l)

	cfg, err := envutils.BuildSortConfig()
	if err != nil {
		l.Error("error building sort config", "error", err.Error())
		os.Exit(1)
	}
	l.Debug("sort config", "order", cfg.Order, "top-k", cfg.TopK, "input", cfg.Input)

	var in io.Reader = os.Stdin
	if cfg.Input != "" {
		file, err := os.Open(cfg.Input)
		if err != nil {
			l.Error("error opening input file", "path", cfg.Input, "error", err.Error())
			os.Exit(1)
		}
		defer file.Close()
		in = file
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewHeapMetrics(cfg.MetricsNamespace)
	if err := m.Register(reg); err != nil {
		l.Error("error registering heap metrics", "error", err.Error())
		os.Exit(1)
	}

	n, err := sortNumbers(ctx, cfg, in, os.Stdout, hp.WithObserver(m.Observer(HEAP_NAME)))
	if err != nil {
		l.Error("error sorting input", "error", err.Error())
		os.Exit(1)
	}

	logSummary(l, reg)
	l.Info("sorted values written", "count", n)
}

// logSummary logs every gathered sample.
func logSummary(l logger.Logger, reg *prometheus.Registry) {
	mfs, err := reg.Gather()
	if err != nil {
		l.Error("error gathering heap metrics", "error", err.Error())
		return
	}
	for _, mf := range mfs {
		for _, mt := range mf.GetMetric() {
			labels := make([]string, 0, len(mt.GetLabel()))
			for _, lp := range mt.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%s", lp.GetName(), lp.GetValue()))
			}
			val := mt.GetCounter().GetValue() + mt.GetGauge().GetValue()
			l.Debug("heap metric", "name", mf.GetName(), "labels", strings.Join(labels, ","), "value", val)
		}
	}
}

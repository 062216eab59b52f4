package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/comfforts/logger"

	hp "github.com/hankgalt/binheap/pkg/heap"
	envutils "github.com/hankgalt/binheap/pkg/utils/environment"
)

const ERR_INVALID_NUMBER = "heapsort: invalid number"

var ErrInvalidNumber = errors.New(ERR_INVALID_NUMBER)

// sortNumbers streams integers from r into a heap and writes them to w in
// configured order, one per line. With a top-k limit only k values are
// held at any time.
func sortNumbers(ctx context.Context, cfg envutils.SortConfig, r io.Reader, w io.Writer, opts ...hp.Option) (int, error) {
	l, err := logger.LoggerFromContext(ctx)
	if err != nil {
		l = logger.GetSlogLogger()
	}

	outFirst := func(a, b int64) bool { return a < b }
	if cfg.Descending() {
		outFirst = func(a, b int64) bool { return a > b }
	}

	var h *hp.Heap[int64]
	if cfg.TopK > 0 {
		// keep the k best values, the worst of them at the root
		h = hp.New(func(a, b int64) bool { return outFirst(b, a) }, opts...)
	} else {
		h = hp.New(outFirst, opts...)
	}

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	read := 0
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			l.Error("error parsing input value", "value", tok, "position", read, "error", err.Error())
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, tok)
		}
		read++

		h.Insert(v)
		if cfg.TopK > 0 && h.Count() > cfg.TopK {
			if _, err := h.Extract(); err != nil {
				return 0, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		l.Error("error reading input", "error", err.Error())
		return 0, fmt.Errorf("heapsort: read input: %w", err)
	}
	l.Debug("input read", "values", read, "held", h.Count())

	out := h.Drain()
	if cfg.TopK > 0 {
		slices.Reverse(out)
	}

	bw := bufio.NewWriter(w)
	for _, v := range out {
		if _, err := bw.WriteString(strconv.FormatInt(v, 10) + "\n"); err != nil {
			return 0, fmt.Errorf("heapsort: write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("heapsort: write output: %w", err)
	}
	return len(out), nil
}

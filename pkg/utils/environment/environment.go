package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	ORDER_MIN = "min"
	ORDER_MAX = "max"
)

const DEFAULT_ORDER = ORDER_MIN
const DEFAULT_METRICS_NAMESPACE = "heapsort"

const (
	ERR_INVALID_ORDER = "env: HEAP_ORDER must be min or max"
	ERR_INVALID_TOP_K = "env: HEAP_TOP_K must be a non-negative integer"
)

var (
	ErrInvalidOrder = errors.New(ERR_INVALID_ORDER)
	ErrInvalidTopK  = errors.New(ERR_INVALID_TOP_K)
)

// SortConfig drives the heapsort command.
type SortConfig struct {
	Order            string
	TopK             int
	Input            string // empty reads stdin
	MetricsNamespace string
}

// Descending reports whether values come out largest first.
func (c SortConfig) Descending() bool { return c.Order == ORDER_MAX }

// BuildSortConfig constructs a SortConfig from HEAP_ORDER, HEAP_TOP_K, HEAP_INPUT & METRICS_NAMESPACE.
func BuildSortConfig() (SortConfig, error) {
	order, err := BuildOrder()
	if err != nil {
		return SortConfig{}, err
	}

	topK, err := BuildTopK()
	if err != nil {
		return SortConfig{}, err
	}

	ns := os.Getenv("METRICS_NAMESPACE")
	if ns == "" {
		ns = DEFAULT_METRICS_NAMESPACE
	}

	return SortConfig{
		Order:            order,
		TopK:             topK,
		Input:            os.Getenv("HEAP_INPUT"),
		MetricsNamespace: ns,
	}, nil
}

// BuildOrder reads HEAP_ORDER or defaults to DEFAULT_ORDER.
func BuildOrder() (string, error) {
	order := strings.ToLower(strings.TrimSpace(os.Getenv("HEAP_ORDER")))
	switch order {
	case "":
		return DEFAULT_ORDER, nil
	case ORDER_MIN, ORDER_MAX:
		return order, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrder, order)
	}
}

// BuildTopK reads HEAP_TOP_K, 0 when unset.
func BuildTopK() (int, error) {
	val := strings.TrimSpace(os.Getenv("HEAP_TOP_K"))
	if val == "" {
		return 0, nil
	}

	k, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTopK, err)
	}
	if k < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTopK, k)
	}
	return k, nil
}

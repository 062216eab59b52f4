package env_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	envutils "github.com/hankgalt/binheap/pkg/utils/environment"
)

func TestBuildSortConfigDefaults(t *testing.T) {
	t.Setenv("HEAP_ORDER", "")
	t.Setenv("HEAP_TOP_K", "")
	t.Setenv("HEAP_INPUT", "")
	t.Setenv("METRICS_NAMESPACE", "")

	cfg, err := envutils.BuildSortConfig()
	require.NoError(t, err)
	require.Equal(t, envutils.ORDER_MIN, cfg.Order)
	require.Equal(t, 0, cfg.TopK)
	require.Equal(t, "", cfg.Input)
	require.Equal(t, envutils.DEFAULT_METRICS_NAMESPACE, cfg.MetricsNamespace)
	require.False(t, cfg.Descending())
}

func TestBuildSortConfig(t *testing.T) {
	t.Setenv("HEAP_ORDER", " MAX ")
	t.Setenv("HEAP_TOP_K", "3")
	t.Setenv("HEAP_INPUT", "data/numbers.txt")
	t.Setenv("METRICS_NAMESPACE", "batch")

	cfg, err := envutils.BuildSortConfig()
	require.NoError(t, err)
	require.Equal(t, envutils.SortConfig{
		Order:            envutils.ORDER_MAX,
		TopK:             3,
		Input:            "data/numbers.txt",
		MetricsNamespace: "batch",
	}, cfg)
	require.True(t, cfg.Descending())
}

func TestBuildSortConfigErrors(t *testing.T) {
	testCases := []struct {
		name  string
		order string
		topK  string
		err   error
	}{
		{name: "unknown order", order: "median", err: envutils.ErrInvalidOrder},
		{name: "non numeric k", order: "min", topK: "three", err: envutils.ErrInvalidTopK},
		{name: "negative k", order: "max", topK: "-1", err: envutils.ErrInvalidTopK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HEAP_ORDER", tc.order)
			t.Setenv("HEAP_TOP_K", tc.topK)

			_, err := envutils.BuildSortConfig()
			require.ErrorIs(t, err, tc.err)
		})
	}
}

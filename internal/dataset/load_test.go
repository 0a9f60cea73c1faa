package dataset

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAll_PreservesOrder(t *testing.T) {
	paths := make([]string, 20)
	for i := range paths {
		paths[i] = fmt.Sprintf("seed_%d.csv", i+1)
	}

	got, err := LoadAll(context.Background(), paths, func(p string) (string, error) {
		return "loaded " + p, nil
	})
	require.NoError(t, err)
	require.Len(t, got, len(paths))
	for i, p := range paths {
		assert.Equal(t, "loaded "+p, got[i])
	}
}

func TestLoadAll_ReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadAll(context.Background(), []string{"a", "b", "c"}, func(p string) (int, error) {
		if p == "b" {
			return 0, boom
		}
		return 1, nil
	})
	require.ErrorIs(t, err, boom)
}

func TestLoadAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadAll(ctx, []string{"a"}, func(string) (int, error) { return 1, nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadAll_Empty(t *testing.T) {
	got, err := LoadAll(context.Background(), nil, func(string) (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.Empty(t, got)
}

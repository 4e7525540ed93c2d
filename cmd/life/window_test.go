//go:build !ebiten

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWithoutWindowSupport(t *testing.T) {
	var stderr bytes.Buffer
	require.Equal(t, 2, run(context.Background(), []string{"-n", "4"}, &stderr))
	require.Contains(t, stderr.String(), "ebiten")
}

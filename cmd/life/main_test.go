package main

import (
	"bytes"
	"context"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRecordsGIF(t *testing.T) {
	out := filepath.Join(t.TempDir(), "life.gif")
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"-n", "10", "-p", "0.3", "-seed", "4", "-frames", "3", "-scale", "1", "-out", out}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stderr.String(), "starting game of life")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, anim.Image, 4)
}

func TestRunIsReproducibleWithSeed(t *testing.T) {
	dir := t.TempDir()
	args := func(name string) []string {
		return []string{"-n", "16", "-seed", "77", "-frames", "5", "-out", filepath.Join(dir, name)}
	}
	require.Equal(t, 0, run(context.Background(), args("a.gif"), &bytes.Buffer{}))
	require.Equal(t, 0, run(context.Background(), args("b.gif"), &bytes.Buffer{}))

	a, err := os.ReadFile(filepath.Join(dir, "a.gif"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "b.gif"))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRunInvalidArguments(t *testing.T) {
	for _, args := range [][]string{
		{"-n", "0"},
		{"-p", "1.2"},
		{"-f", "-5"},
		{"-sim", "nope"},
	} {
		var stderr bytes.Buffer
		require.Equal(t, 1, run(context.Background(), args, &stderr), "args %v", args)
		require.Contains(t, stderr.String(), "life:")
	}
}

func TestRunHelp(t *testing.T) {
	require.Equal(t, 0, run(context.Background(), []string{"-h"}, &bytes.Buffer{}))
}

package app

import (
	"context"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"golife/internal/core"
	"golife/internal/life"
)

func TestRecordWritesAnimationAndChart(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.Size = 12
	cfg.Scale = 2
	cfg.Frames = 6
	cfg.Out = filepath.Join(dir, "life.gif")
	cfg.Chart = filepath.Join(dir, "pop.png")
	require.NoError(t, cfg.Validate())

	sim, err := life.New(cfg.Size, 0.4, core.NewRNG(1))
	require.NoError(t, err)

	log := NewLogger(io.Discard, cfg.Level())
	require.NoError(t, Record(context.Background(), sim, cfg, log))

	f, err := os.Open(cfg.Out)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	require.Len(t, anim.Image, cfg.Frames+1)
	require.Equal(t, 24, anim.Image[0].Bounds().Dx())

	cf, err := os.Open(cfg.Chart)
	require.NoError(t, err)
	defer cf.Close()
	_, err = png.Decode(cf)
	require.NoError(t, err)
}

func TestRecordBadPath(t *testing.T) {
	cfg := NewConfig()
	cfg.Out = filepath.Join(t.TempDir(), "missing", "life.gif")
	sim, err := life.New(4, 0.5, core.NewRNG(1))
	require.NoError(t, err)
	require.Error(t, Record(context.Background(), sim, cfg, NewLogger(io.Discard, cfg.Level())))
}

func TestRecordRemovesPartialOutput(t *testing.T) {
	cfg := NewConfig()
	cfg.Frames = 5
	cfg.Out = filepath.Join(t.TempDir(), "life.gif")
	sim, err := life.New(6, 0.5, core.NewRNG(1))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Record(ctx, sim, cfg, NewLogger(io.Discard, cfg.Level()))
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(cfg.Out)
	require.True(t, os.IsNotExist(statErr), "partial animation left at %s", cfg.Out)
}

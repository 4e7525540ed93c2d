//go:build !ebiten

package app

import (
	"context"
	"log/slog"

	"golife/internal/core"
)

// Window always fails in the headless build.
func Window(context.Context, core.Sim, *Config, *slog.Logger) error {
	return ErrHeadless
}

package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/five82/shopflow/internal/shop"
)

// StartLoad populates the view-model from its catalog source. Failures are
// recorded in the screen state by the view-model; here they are only logged.
func StartLoad(ctx context.Context, vm *shop.ViewModel, logger *slog.Logger) {
	err := vm.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Debug("catalog load cancelled")
	case errors.Is(err, shop.ErrAlreadyLoaded):
	default:
		logger.Warn("catalog unavailable", slog.Any("error", err))
	}
}

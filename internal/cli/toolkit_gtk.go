//go:build gtk

package cli

import (
	"context"

	"github.com/bnema/appearance/internal/infrastructure/gtkchrome"
	"github.com/bnema/appearance/internal/infrastructure/nativetheme"
	"github.com/bnema/appearance/internal/logging"
)

// startToolkit attaches the GTK chrome applier to the bridge. Without a
// display the bridge keeps running with listeners only.
func startToolkit(ctx context.Context, bridge *nativetheme.Bridge) <-chan struct{} {
	done, err := gtkchrome.StartMainLoop(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("gtk chrome disabled")
		return nil
	}
	bridge.AddApplier(gtkchrome.NewApplier())
	return done
}

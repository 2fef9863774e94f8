//go:build !gtk

package cli

import (
	"context"

	"github.com/bnema/appearance/internal/infrastructure/nativetheme"
)

func startToolkit(context.Context, *nativetheme.Bridge) <-chan struct{} {
	return nil
}

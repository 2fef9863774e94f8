//go:build gtk

package gtkchrome

import (
	"context"
	"errors"
	"runtime"

	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/appearance/internal/logging"
)

// ErrNoDisplay is returned by StartMainLoop when GTK cannot open a display.
var ErrNoDisplay = errors.New("gtk: no display available")

// StartMainLoop initializes GTK on a dedicated OS thread and runs the GLib
// main loop there until ctx is cancelled. Applier callbacks scheduled with
// IdleAdd run on that loop.
func StartMainLoop(ctx context.Context) (<-chan struct{}, error) {
	log := logging.FromContext(ctx)
	ready := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if !gtk.InitCheck() {
			ready <- ErrNoDisplay
			return
		}

		loop := glib.NewMainLoop(nil, false)
		ready <- nil

		go func() {
			<-ctx.Done()
			loop.Quit()
		}()

		log.Debug().Msg("gtk main loop running")
		loop.Run()
		log.Debug().Msg("gtk main loop stopped")
	}()

	if err := <-ready; err != nil {
		<-done
		return nil, err
	}
	return done, nil
}

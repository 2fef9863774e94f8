// Package nativetheme is the in-process host bridge: it tracks the theme
// source the application asked for, answers dark-color queries, and pushes
// theme and font changes to toolkit appliers on a background loop.
package nativetheme

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/bnema/appearance/internal/application/port"
	"github.com/bnema/appearance/internal/domain/entity"
	"github.com/bnema/appearance/internal/logging"
)

// DefaultQueueSize is the number of pending updates held before new ones are dropped.
const DefaultQueueSize = 16

// UpdateKind identifies what an Update changes.
type UpdateKind int

const (
	// UpdateThemeSource carries a new theme source.
	UpdateThemeSource UpdateKind = iota
	// UpdateFontFace carries a new font face.
	UpdateFontFace
)

func (k UpdateKind) String() string {
	switch k {
	case UpdateThemeSource:
		return "theme_source"
	case UpdateFontFace:
		return "font_face"
	default:
		return "unknown"
	}
}

// Update is a change delivered by the apply loop.
type Update struct {
	Kind        UpdateKind
	ThemeSource entity.ThemeSource
	FontFace    string
	// PrefersDark is the dark-color answer for ThemeSource when the update
	// was applied. Unset for font updates.
	PrefersDark bool
}

// Applier receives updates on the apply loop, e.g. a GTK settings adapter.
type Applier interface {
	ApplyThemeSource(ctx context.Context, source entity.ThemeSource, prefersDark bool) error
	ApplyFontFace(ctx context.Context, fontFace string) error
}

type listenerWrapper struct {
	fn func(Update)
}

// Bridge implements port.NativeThemeBridge.
type Bridge struct {
	resolver port.ColorSchemeResolver

	source   atomic.Value // entity.ThemeSource
	fontFace atomic.Value // string

	updates chan Update

	mu        sync.RWMutex
	listeners []*listenerWrapper
	appliers  []Applier
}

// NewBridge creates a bridge that defers "system" to resolver.
// The initial source is system.
func NewBridge(resolver port.ColorSchemeResolver, queueSize int) *Bridge {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	b := &Bridge{
		resolver: resolver,
		updates:  make(chan Update, queueSize),
	}
	b.source.Store(entity.ThemeSourceSystem)
	b.fontFace.Store("")
	return b
}

// SetNativeThemeSource implements port.NativeThemeBridge.
func (b *Bridge) SetNativeThemeSource(ctx context.Context, source entity.ThemeSource) {
	switch source {
	case entity.ThemeSourceLight, entity.ThemeSourceDark, entity.ThemeSourceSystem:
	default:
		source = entity.ThemeSourceSystem
	}
	b.source.Store(source)
	b.enqueue(ctx, Update{Kind: UpdateThemeSource, ThemeSource: source})
}

// SetFontFaceSource implements port.NativeThemeBridge.
func (b *Bridge) SetFontFaceSource(ctx context.Context, fontFace string) {
	b.fontFace.Store(fontFace)
	b.enqueue(ctx, Update{Kind: UpdateFontFace, FontFace: fontFace})
}

// ShouldUseDarkColors implements port.NativeThemeBridge.
func (b *Bridge) ShouldUseDarkColors(_ context.Context) bool {
	return b.darkFor(b.ThemeSource())
}

// darkFor answers the dark-color query for source. "system" asks the resolver.
func (b *Bridge) darkFor(source entity.ThemeSource) bool {
	switch source {
	case entity.ThemeSourceDark:
		return true
	case entity.ThemeSourceLight:
		return false
	default:
		if b.resolver == nil {
			return false
		}
		return b.resolver.Resolve().PrefersDark
	}
}

// ThemeSource returns the last source set on the bridge.
func (b *Bridge) ThemeSource() entity.ThemeSource {
	return b.source.Load().(entity.ThemeSource)
}

// FontFace returns the last font face set on the bridge.
func (b *Bridge) FontFace() string {
	return b.fontFace.Load().(string)
}

// NotifySystemChange queues a theme update for the current source when the
// OS preference changes while following the system. Wire it to the
// resolver's OnChange.
func (b *Bridge) NotifySystemChange(ctx context.Context) {
	if b.ThemeSource() != entity.ThemeSourceSystem {
		return
	}
	b.enqueue(ctx, Update{Kind: UpdateThemeSource, ThemeSource: entity.ThemeSourceSystem})
}

// OnUpdate registers a listener called from the apply loop.
// Returns a function to unregister it.
func (b *Bridge) OnUpdate(fn func(Update)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	wrapper := &listenerWrapper{fn: fn}
	b.listeners = append(b.listeners, wrapper)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listeners {
			if l == wrapper {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// AddApplier registers a toolkit applier.
func (b *Bridge) AddApplier(a Applier) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.appliers = append(b.appliers, a)
}

// Run drains queued updates until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "nativetheme")
	log := logging.FromContext(ctx)
	log.Debug().Msg("apply loop started")

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("apply loop stopped")
			return nil
		case u := <-b.updates:
			b.apply(ctx, u)
		}
	}
}

// Flush applies every queued update on the calling goroutine and returns
// how many were applied. One-shot hosts call it instead of Run.
func (b *Bridge) Flush(ctx context.Context) int {
	n := 0
	for {
		select {
		case u := <-b.updates:
			b.apply(ctx, u)
			n++
		default:
			return n
		}
	}
}

// Pending returns the number of queued updates.
func (b *Bridge) Pending() int {
	return len(b.updates)
}

func (b *Bridge) enqueue(ctx context.Context, u Update) {
	select {
	case b.updates <- u:
	default:
		logging.FromContext(ctx).Warn().
			Str("kind", u.Kind.String()).
			Msg("native theme queue full, dropping update")
	}
}

func (b *Bridge) apply(ctx context.Context, u Update) {
	log := logging.FromContext(ctx)

	if u.Kind == UpdateThemeSource {
		u.PrefersDark = b.darkFor(u.ThemeSource)
	}

	b.mu.RLock()
	appliers := make([]Applier, len(b.appliers))
	copy(appliers, b.appliers)
	listeners := make([]*listenerWrapper, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, a := range appliers {
		var err error
		switch u.Kind {
		case UpdateThemeSource:
			err = a.ApplyThemeSource(ctx, u.ThemeSource, u.PrefersDark)
		case UpdateFontFace:
			err = a.ApplyFontFace(ctx, u.FontFace)
		}
		if err != nil {
			log.Warn().Err(err).Str("kind", u.Kind.String()).Msg("native applier failed")
		}
	}

	for _, l := range listeners {
		l.fn(u)
	}

	log.Debug().
		Str("kind", u.Kind.String()).
		Str("source", string(u.ThemeSource)).
		Str("font_face", u.FontFace).
		Bool("prefers_dark", u.PrefersDark).
		Msg("native theme update applied")
}

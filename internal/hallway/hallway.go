// Package hallway generates the endless corridor: a fixed pool of
// decorated segments that scroll toward the camera and are recycled to
// the back once they pass it.
package hallway

import (
	"log/slog"

	"corridor/internal/scene"
)

type options struct {
	log   *slog.Logger
	signs SignRenderer
}

type Option func(*options)

func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSignRenderer replaces the font renderer. Passing nil yields a plain
// sign face.
func WithSignRenderer(r SignRenderer) Option {
	return func(o *options) { o.signs = r }
}

// CreateHallway builds the pool and attaches every segment to sc.
func CreateHallway(sc *scene.Scene, cfg Config, opts ...Option) (*Manager, error) {
	o := options{log: slog.Default(), signs: FontSignRenderer{}}
	for _, opt := range opts {
		opt(&o)
	}
	f, err := NewFactory(cfg, o.signs, o.log)
	if err != nil {
		return nil, err
	}
	m, err := NewManager(cfg, f, sc.Root)
	if err != nil {
		return nil, err
	}
	o.log.Info("hallway created",
		slog.Int("segments", m.Len()),
		slog.Float64("segment_length", cfg.SegmentLength),
		slog.Float64("speed", cfg.Speed),
		slog.Bool("sign_textured", f.SignTextured()))
	return m, nil
}

// UpdateHallway advances the hallway by one frame of dt seconds.
func UpdateHallway(m *Manager, dt float64) {
	m.Advance(dt)
}

// Package rlcanvas implements the render capability set on raylib render
// textures: a layered display list of shapes composed into a single
// texture, with an explicit batched render pass.
package rlcanvas

import (
	"fmt"
	"log/slog"

	"github.com/ha1tch/easel/internal/logx"
	"github.com/ha1tch/easel/internal/render"
)

// Engine constructs raylib canvases. A window must be open before any
// surface is created (render textures need a GL context).
type Engine struct {
	log *slog.Logger
}

var _ render.Engine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger, propagated to its canvases.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = logx.Or(l)
	}
}

// NewEngine returns an engine that creates raylib canvases.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: logx.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewSurface implements render.Engine.
func (e *Engine) NewSurface(cfg render.Config) (render.Surface, error) {
	return e.NewCanvas(cfg)
}

// NewCanvas creates a canvas with a single background layer, at zoom 1 and
// zero pan.
func (e *Engine) NewCanvas(cfg render.Config) (*Canvas, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("rlcanvas: invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}

	c := &Canvas{
		width:            cfg.Width,
		height:           cfg.Height,
		background:       cfg.Background,
		zoom:             1.0,
		selection:        cfg.EnableSelection,
		preserveStacking: cfg.PreserveStacking,
		autoRender:       cfg.AutoRender,
		log:              e.log,
	}
	c.layers = append(c.layers, newLayer("BACKGROUND", cfg.Width, cfg.Height))
	c.composite = newCompositeTexture(cfg.Width, cfg.Height)

	e.log.Debug("canvas created", "width", cfg.Width, "height", cfg.Height)
	return c, nil
}

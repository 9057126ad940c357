// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"log/slog"

	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/style"
)

// Context is the state shared by every pass of one frame.
// It is built per frame and must not be retained after Render returns.
type Context struct {
	Canvas Canvas
	Scene  *Scene

	// Axes is the viewport in data units.
	Axes coord.Axes

	// Figure is the whole drawing area, DataRect the part of it the
	// plottables draw into.
	Figure   coord.PixelRect
	DataRect coord.PixelRect

	// Logger defaults to the package logger when nil.
	Logger *slog.Logger

	viewportErr error
}

// NewContext creates a frame context.
func NewContext(c Canvas, scene *Scene, axes coord.Axes, figure, data coord.PixelRect) *Context {
	if scene == nil {
		scene = &Scene{}
	}
	return &Context{
		Canvas:   c,
		Scene:    scene,
		Axes:     axes,
		Figure:   figure,
		DataRect: data,
	}
}

// ViewportErr returns the result of validating the viewport against the
// data area. Valid once Pipeline.Render has started.
func (rc *Context) ViewportErr() error {
	return rc.viewportErr
}

// PixelOf converts a data coordinate to a pixel in the data area.
func (rc *Context) PixelOf(x, y float64) (coord.Pixel, error) {
	return rc.Axes.PixelOf(x, y, rc.DataRect)
}

// FillRect fills r when the canvas supports it.
// Reports whether anything was drawn.
func (rc *Context) FillRect(r coord.PixelRect, c style.Color) bool {
	if c.IsTransparent() || r.IsEmpty() {
		return false
	}
	f, ok := rc.Canvas.(Filler)
	if !ok {
		return false
	}
	f.FillRect(r, c)
	return true
}

// ClipToData restricts drawing to the data area when the canvas supports
// clipping. The returned function restores the previous state.
func (rc *Context) ClipToData() (restore func()) {
	c, ok := rc.Canvas.(Clipper)
	if !ok {
		return func() {}
	}
	c.SetClip(rc.DataRect)
	return c.ResetClip
}

func (rc *Context) logger() *slog.Logger {
	if rc.Logger == nil {
		rc.Logger = slogger()
	}
	return rc.Logger
}

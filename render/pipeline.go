// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Sentinel errors for frame rendering.
var (
	// ErrPanic wraps a value recovered from a panicking pass or plottable.
	ErrPanic = errors.New("render: panic")

	// ErrNoCanvas is returned when a frame is rendered without a canvas.
	ErrNoCanvas = errors.New("render: no canvas")
)

// Pass is one stage of a frame.
type Pass interface {
	Name() string
	Render(rc *Context) error
}

// ViewportPass is implemented by passes that map data coordinates to
// pixels. They are skipped when the viewport is degenerate.
type ViewportPass interface {
	Pass
	NeedsViewport() bool
}

// PassError attributes a failure to a pass and, for per-item failures,
// the index of the item within the scene.
type PassError struct {
	Pass  string
	Index int // -1 when the whole pass failed
	Err   error
}

func (e *PassError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("render: pass %s: %v", e.Pass, e.Err)
	}
	return fmt.Sprintf("render: pass %s item %d: %v", e.Pass, e.Index, e.Err)
}

func (e *PassError) Unwrap() error {
	return e.Err
}

// Pipeline runs passes in order against a shared Context.
type Pipeline struct {
	passes []Pass
}

// NewPipeline creates a pipeline from passes.
func NewPipeline(passes ...Pass) *Pipeline {
	return &Pipeline{passes: append([]Pass(nil), passes...)}
}

// DefaultPipeline returns background, grid-beneath, plottables,
// grid-above and overlays.
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		BackgroundPass{},
		GridPass{Beneath: true},
		PlottablePass{},
		GridPass{Beneath: false},
		OverlayPass{},
	)
}

// Passes returns a copy of the pass list.
func (p *Pipeline) Passes() []Pass {
	return append([]Pass(nil), p.passes...)
}

// Append adds passes after the existing ones.
func (p *Pipeline) Append(passes ...Pass) {
	p.passes = append(p.passes, passes...)
}

// Render draws one frame. Every pass runs even when earlier ones fail;
// the failures are returned together as a *multierror.Error.
func (p *Pipeline) Render(rc *Context) error {
	if rc == nil || rc.Canvas == nil {
		return ErrNoCanvas
	}
	if rc.Scene == nil {
		rc.Scene = &Scene{}
	}
	log := rc.logger()
	start := time.Now()

	var result *multierror.Error
	rc.viewportErr = rc.Axes.Validate(rc.DataRect)
	if rc.viewportErr != nil {
		result = multierror.Append(result, rc.viewportErr)
	}

	ran := 0
	for _, pass := range p.passes {
		if rc.viewportErr != nil && needsViewport(pass) {
			log.Debug("render: pass skipped", "pass", pass.Name(), "reason", rc.viewportErr)
			continue
		}
		if err := runPass(pass, rc); err != nil {
			result = multierror.Append(result, err)
		}
		ran++
	}

	err := result.ErrorOrNil()
	if err != nil {
		log.Warn("render: frame completed with failures",
			"failures", len(result.Errors), "err", err)
	}
	log.Debug("render: frame",
		"passes", ran,
		"data", rc.DataRect.String(),
		"elapsed", time.Since(start))
	return err
}

func needsViewport(pass Pass) bool {
	vp, ok := pass.(ViewportPass)
	return ok && vp.NeedsViewport()
}

// runPass renders pass, turning a panic into an error. Errors that already
// carry attribution are returned unchanged.
func runPass(pass Pass, rc *Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PassError{Pass: pass.Name(), Index: -1, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()
	err = pass.Render(rc)
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	var perr *PassError
	if errors.As(err, &merr) || errors.As(err, &perr) {
		return err
	}
	return &PassError{Pass: pass.Name(), Index: -1, Err: err}
}

// Guard runs fn as item index of pass, converting a panic into an error.
// Passes that draw several independent items call it once per item so one
// failing item does not stop the others.
func Guard(pass string, index int, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PassError{Pass: pass, Index: index, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()
	if err := fn(); err != nil {
		return &PassError{Pass: pass, Index: index, Err: err}
	}
	return nil
}

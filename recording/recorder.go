// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"unicode/utf8"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/chart/surface"
)

// Recorder is a surface.Surface that appends every call to a command list.
// Paths are cloned on entry, so callers may reuse them.
type Recorder struct {
	width, height int
	commands      []Command
	clipDepth     int
}

var _ surface.Surface = (*Recorder)(nil)

// NewRecorder creates a recorder for a width x height canvas.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func init() {
	surface.Register("recording", 0, func(opts surface.Options) (surface.Surface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	}, nil)
}

// Width implements surface.Surface.
func (r *Recorder) Width() int { return r.width }

// Height implements surface.Surface.
func (r *Recorder) Height() int { return r.height }

// Clear implements surface.Surface.
func (r *Recorder) Clear(c gg.RGBA) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// Fill implements surface.Surface. Nil or empty paths are not recorded.
func (r *Recorder) Fill(path *gg.Path, style surface.FillStyle) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}
	r.commands = append(r.commands, FillCommand{Path: path.Clone(), Style: style})
}

// Stroke implements surface.Surface. Nil or empty paths are not recorded.
func (r *Recorder) Stroke(path *gg.Path, style surface.StrokeStyle) {
	if path == nil || len(path.Elements()) == 0 {
		return
	}
	r.commands = append(r.commands, StrokeCommand{Path: path.Clone(), Style: style})
}

// DrawText implements surface.Surface.
func (r *Recorder) DrawText(text string, at gg.Point, style surface.TextStyle) {
	w, h := r.MeasureText(text, style)
	r.commands = append(r.commands, TextCommand{
		Text:   text,
		At:     at,
		Style:  style,
		Bounds: surface.RotatedBounds(gg.Rect{Min: at, Max: gg.Pt(at.X+w, at.Y+h)}, style.Rotation),
	})
}

// MeasureText implements surface.Surface using basicfont.Face7x13 metrics
// scaled from 13px to the style's font size.
func (r *Recorder) MeasureText(text string, style surface.TextStyle) (w, h float64) {
	return measure(text, style.FontSize())
}

func measure(text string, size float64) (w, h float64) {
	face := basicfont.Face7x13
	scale := size / float64(face.Height)
	if !utf8.ValidString(text) {
		text = string([]rune(text))
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64 * scale, float64(face.Height) * scale
}

// PushClip implements surface.Surface.
func (r *Recorder) PushClip(rect gg.Rect) {
	r.clipDepth++
	r.commands = append(r.commands, PushClipCommand{Rect: rect})
}

// PopClip implements surface.Surface. Unbalanced calls are ignored.
func (r *Recorder) PopClip() {
	if r.clipDepth == 0 {
		return
	}
	r.clipDepth--
	r.commands = append(r.commands, PopClipCommand{})
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command { return r.commands }

// Fills returns the recorded fill commands in order.
func (r *Recorder) Fills() []FillCommand { return collect[FillCommand](r.commands) }

// Strokes returns the recorded stroke commands in order.
func (r *Recorder) Strokes() []StrokeCommand { return collect[StrokeCommand](r.commands) }

// Texts returns the recorded text commands in order.
func (r *Recorder) Texts() []TextCommand { return collect[TextCommand](r.commands) }

// ClipDepth returns the number of clips pushed and not yet popped.
func (r *Recorder) ClipDepth() int { return r.clipDepth }

// Reset discards all commands so the recorder can be reused for a new frame.
func (r *Recorder) Reset() {
	r.commands = nil
	r.clipDepth = 0
}

// Finish returns the commands recorded so far as a Recording and resets the
// recorder.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{width: r.width, height: r.height, commands: r.commands}
	r.Reset()
	return rec
}

func collect[C Command](cmds []Command) []C {
	var out []C
	for _, c := range cmds {
		if v, ok := c.(C); ok {
			out = append(out, v)
		}
	}
	return out
}

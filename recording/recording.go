// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/chart/surface"
)

// Recording is an immutable list of drawing commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recorded canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recorded canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Playback replays the recording onto s. Clips left open by the recording
// are popped at the end.
func (r *Recording) Playback(s surface.Surface) error {
	if s == nil {
		return fmt.Errorf("recording: playback onto nil surface")
	}
	depth := 0
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			s.Clear(c.Color)
		case FillCommand:
			s.Fill(c.Path, c.Style)
		case StrokeCommand:
			s.Stroke(c.Path, c.Style)
		case TextCommand:
			s.DrawText(c.Text, c.At, c.Style)
		case PushClipCommand:
			s.PushClip(c.Rect)
			depth++
		case PopClipCommand:
			s.PopClip()
			depth--
		default:
			return fmt.Errorf("recording: unknown command %v", cmd.Type())
		}
	}
	for ; depth > 0; depth-- {
		s.PopClip()
	}
	return nil
}

// yamlDoc is the document written by WriteYAML.
type yamlDoc struct {
	Width    int           `yaml:"width"`
	Height   int           `yaml:"height"`
	Commands []yamlCommand `yaml:"commands"`
}

type yamlCommand struct {
	Op     string      `yaml:"op"`
	Path   string      `yaml:"path,omitempty"`
	Shader *yamlShader `yaml:"shader,omitempty"`
	Color  string      `yaml:"color,omitempty"`
	Width  float64     `yaml:"width,omitempty"`
	Cap    string      `yaml:"cap,omitempty"`
	Text   string      `yaml:"text,omitempty"`
	Size   float64     `yaml:"size,omitempty"`
	Rotate float64     `yaml:"rotate,omitempty"`
	Rect   []float64   `yaml:"rect,omitempty,flow"`
}

type yamlShader struct {
	Kind   string `yaml:"kind"`
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom,omitempty"`
}

// WriteYAML writes the recording as a YAML document. Paths are written as
// SVG path data.
func (r *Recording) WriteYAML(w io.Writer) error {
	doc := yamlDoc{Width: r.width, Height: r.height}
	for _, cmd := range r.commands {
		yc := yamlCommand{Op: cmd.Type().String()}
		switch c := cmd.(type) {
		case ClearCommand:
			yc.Color = hexColor(c.Color)
		case FillCommand:
			yc.Path = PathData(c.Path)
			yc.Shader = shaderDoc(c.Style.Shader)
		case StrokeCommand:
			yc.Path = PathData(c.Path)
			yc.Shader = shaderDoc(c.Style.Shader)
			yc.Width = c.Style.Width
			yc.Cap = capName(c.Style.Cap)
		case TextCommand:
			yc.Text = c.Text
			yc.Color = hexColor(c.Style.Color)
			yc.Size = c.Style.FontSize()
			yc.Rotate = c.Style.Rotation
			yc.Rect = rectDoc(c.Bounds)
		case PushClipCommand:
			yc.Rect = rectDoc(c.Rect)
		}
		doc.Commands = append(doc.Commands, yc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("recording: encode yaml: %w", err)
	}
	return enc.Close()
}

// PathData renders p as SVG path data, e.g. "M0 0 L10 5 Z".
func PathData(p *gg.Path) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	pt := func(q gg.Point) {
		b.WriteString(num(q.X))
		b.WriteByte(' ')
		b.WriteString(num(q.Y))
	}
	for i, el := range p.Elements() {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := el.(type) {
		case gg.MoveTo:
			b.WriteString("M")
			pt(e.Point)
		case gg.LineTo:
			b.WriteString("L")
			pt(e.Point)
		case gg.QuadTo:
			b.WriteString("Q")
			pt(e.Control)
			b.WriteByte(' ')
			pt(e.Point)
		case gg.CubicTo:
			b.WriteString("C")
			pt(e.Control1)
			b.WriteByte(' ')
			pt(e.Control2)
			b.WriteByte(' ')
			pt(e.Point)
		case gg.Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rectDoc(r gg.Rect) []float64 {
	return []float64{r.Min.X, r.Min.Y, r.Width(), r.Height()}
}

func shaderDoc(s surface.Shader) *yamlShader {
	ys := &yamlShader{Kind: s.Kind.String(), Top: hexColor(s.Top)}
	if s.Kind == surface.ShaderVerticalGradient {
		ys.Bottom = hexColor(s.Bottom)
	}
	return ys
}

func hexColor(c gg.RGBA) string {
	ch := func(v float64) int { return int(max(0, min(1, v))*255 + 0.5) }
	return fmt.Sprintf("#%02x%02x%02x%02x", ch(c.R), ch(c.G), ch(c.B), ch(c.A))
}

func capName(c gg.LineCap) string {
	switch c {
	case gg.LineCapRound:
		return "round"
	case gg.LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

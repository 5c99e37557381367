// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/chart/surface"
)

func rgbaAt(t *testing.T, s *Surface, x, y int) (r, g, b, a uint32) {
	t.Helper()
	return s.Image().At(x, y).RGBA()
}

func rect(x, y, w, h float64) *gg.Path {
	p := gg.NewPath()
	p.Rectangle(x, y, w, h)
	return p
}

func TestFill(t *testing.T) {
	s := New(40, 40)
	defer s.Close()
	s.Clear(gg.White)
	s.Fill(rect(10, 10, 20, 20), surface.FillStyle{Shader: surface.Solid(gg.RGBA{R: 1, A: 1})})

	if r, g, _, _ := rgbaAt(t, s, 20, 20); r < 0xf000 || g > 0x1000 {
		t.Errorf("inside fill = %x %x, want red", r, g)
	}
	if r, g, b, _ := rgbaAt(t, s, 2, 2); r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("outside fill should stay white, got %x %x %x", r, g, b)
	}
}

func TestClip(t *testing.T) {
	s := New(40, 40)
	defer s.Close()
	s.Clear(gg.White)
	s.PushClip(gg.Rect{Max: gg.Pt(20, 40)})
	s.Fill(rect(0, 0, 40, 40), surface.FillStyle{Shader: surface.Solid(gg.Black)})
	s.PopClip()

	if r, _, _, _ := rgbaAt(t, s, 10, 20); r > 0x1000 {
		t.Errorf("inside clip should be black, got r=%x", r)
	}
	if r, _, _, _ := rgbaAt(t, s, 30, 20); r < 0xf000 {
		t.Errorf("outside clip should stay white, got r=%x", r)
	}

	// The clip is gone after PopClip.
	s.Fill(rect(0, 0, 40, 40), surface.FillStyle{Shader: surface.Solid(gg.Black)})
	if r, _, _, _ := rgbaAt(t, s, 30, 20); r > 0x1000 {
		t.Errorf("after PopClip the fill should cover everything, got r=%x", r)
	}
}

func TestVerticalGradient(t *testing.T) {
	s := New(10, 100)
	defer s.Close()
	sh := surface.VerticalGradient(gg.RGBA{R: 1, A: 1}, gg.RGBA{B: 1, A: 1})
	s.Fill(rect(0, 0, 10, 100), surface.FillStyle{Shader: sh, Extent: gg.Rect{Max: gg.Pt(10, 100)}})

	rTop, _, bTop, _ := rgbaAt(t, s, 5, 2)
	rBot, _, bBot, _ := rgbaAt(t, s, 5, 97)
	if rTop <= bTop || bBot <= rBot {
		t.Errorf("gradient top r=%x b=%x, bottom r=%x b=%x", rTop, bTop, rBot, bBot)
	}
}

func TestText(t *testing.T) {
	s := New(100, 40)
	defer s.Close()
	w, h := s.MeasureText("Hello", surface.TextStyle{Size: 16})
	if w <= 0 || h <= 0 {
		t.Fatalf("MeasureText = %v, %v", w, h)
	}
	w2, _ := s.MeasureText("Hello", surface.TextStyle{Size: 32})
	if w2 <= w {
		t.Errorf("larger text should be wider: %v <= %v", w2, w)
	}
	s.DrawText("Hello", gg.Pt(2, 2), surface.TextStyle{Color: gg.Black, Size: 16})
}

func TestRotatedText(t *testing.T) {
	s := New(60, 60)
	defer s.Close()
	s.Clear(gg.White)

	// A wide label turned a quarter lands in a tall box around the same
	// centre.
	style := surface.TextStyle{Color: gg.Black, Size: 16, Rotation: 90}
	w, h := s.MeasureText("MMMM", style)
	at := gg.Pt(30-w/2, 30-h/2)
	s.DrawText("MMMM", at, style)

	var inked, outside int
	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			r, _, _, _ := rgbaAt(t, s, x, y)
			if r > 0x8000 {
				continue
			}
			inked++
			if math.Abs(float64(x)-30) > h/2+2 {
				outside++
			}
		}
	}
	if inked == 0 {
		t.Fatal("rotated text drew nothing")
	}
	if outside != 0 {
		t.Errorf("%d dark pixels outside the rotated box", outside)
	}
}

func TestEncodePNGAndRegistry(t *testing.T) {
	sf, err := surface.Open("raster", surface.Options{Width: 16, Height: 8, Background: gg.White})
	if err != nil {
		t.Fatalf("Open(raster): %v", err)
	}
	enc, ok := sf.(surface.Encoder)
	if !ok {
		t.Fatalf("%T does not implement surface.Encoder", sf)
	}

	var buf bytes.Buffer
	if err := enc.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("image size = %v", b)
	}
}

func TestEmptyPaths(t *testing.T) {
	s := New(10, 10)
	defer s.Close()
	s.Fill(nil, surface.FillStyle{})
	s.Stroke(gg.NewPath(), surface.StrokeStyle{Width: 1})
	s.Stroke(rect(1, 1, 2, 2), surface.StrokeStyle{Width: 0})
}

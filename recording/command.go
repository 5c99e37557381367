// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/chart/surface"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear    CommandType = iota // Clear the whole surface
	CmdFill                        // Fill a path
	CmdStroke                      // Stroke a path
	CmdText                        // Draw a line of text
	CmdPushClip                    // Intersect the clip with a rectangle
	CmdPopClip                     // Restore the previous clip
)

var commandTypeNames = [...]string{
	CmdClear:    "Clear",
	CmdFill:     "Fill",
	CmdStroke:   "Stroke",
	CmdText:     "Text",
	CmdPushClip: "PushClip",
	CmdPopClip:  "PopClip",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all recorded operations.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearCommand paints the whole surface.
type ClearCommand struct {
	Color gg.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// FillCommand fills a path.
type FillCommand struct {
	Path  *gg.Path
	Style surface.FillStyle
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes a path.
type StrokeCommand struct {
	Path  *gg.Path
	Style surface.StrokeStyle
}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// TextCommand draws text with its top-left corner at At.
type TextCommand struct {
	Text  string
	At    gg.Point
	Style surface.TextStyle

	// Bounds is the box the text covers, as reported by MeasureText and
	// turned by Style.Rotation.
	Bounds gg.Rect
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// PushClipCommand intersects the clip with Rect.
type PushClipCommand struct {
	Rect gg.Rect
}

// Type implements Command.
func (PushClipCommand) Type() CommandType { return CmdPushClip }

// PopClipCommand restores the clip saved by the matching PushClipCommand.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }

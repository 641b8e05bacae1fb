// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coilscope

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// TerminalOpts represents the options available for a Terminal.
type TerminalOpts struct {
	Palette *ansi256.Palette
	// On and Off are the colors of energized and released pins.
	On  color.NRGBA
	Off color.NRGBA

	_ struct{}
}

// DefaultTerminalOpts is the recommended default options.
var DefaultTerminalOpts = TerminalOpts{
	On:  color.NRGBA{R: 0xff, G: 0x80, A: 0xff},
	Off: color.NRGBA{R: 0x20, G: 0x20, B: 0x40, A: 0xff},
}

// Terminal prints one line of colored blocks per frame, one block per pin.
type Terminal struct {
	w       io.Writer
	palette ansi256.Palette
	on, off color.NRGBA

	buf bytes.Buffer
}

// NewTerminal returns a Terminal that prints to the console.
func NewTerminal(opts *TerminalOpts) *Terminal {
	return NewTerminalWriter(colorable.NewColorableStdout(), opts)
}

// NewTerminalWriter returns a Terminal that prints to w.
func NewTerminalWriter(w io.Writer, opts *TerminalOpts) *Terminal {
	if opts == nil {
		opts = &DefaultTerminalOpts
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Terminal{w: w, palette: *p, on: opts.On, off: opts.Off}
}

func (t *Terminal) String() string {
	return "Terminal"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (t *Terminal) Halt() error {
	_, err := t.w.Write([]byte("\033[0m"))
	return err
}

// WriteFrame implements FrameWriter.
func (t *Terminal) WriteFrame(f Frame) error {
	// This code is designed to minimize the amount of memory allocated per call.
	t.buf.Reset()
	_, _ = t.buf.WriteString("\033[0m")
	for _, l := range f.Levels {
		c := t.off
		if l {
			c = t.on
		}
		_, _ = io.WriteString(&t.buf, t.palette.Block(c))
	}
	_, _ = t.buf.WriteString("\033[0m ")
	if f.Cleared {
		_, _ = t.buf.WriteString("clear")
	} else {
		_, _ = fmt.Fprintf(&t.buf, "%5d", f.Index)
	}
	if f.Err != nil {
		_, _ = fmt.Fprintf(&t.buf, " (%v)", f.Err)
	}
	_ = t.buf.WriteByte('\n')
	_, err := t.buf.WriteTo(t.w)
	return err
}

var _ FrameWriter = &Terminal{}
var _ fmt.Stringer = &Terminal{}

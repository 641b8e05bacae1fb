// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coilscope

import (
	"errors"
	"image"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoFrames is returned by Plot when there is nothing to draw.
var ErrNoFrames = errors.New("coilscope: no frames")

// PlotOpts represents the options available for Plot.
type PlotOpts struct {
	// CellWidth is the width in pixels of one frame.
	CellWidth int
	// RowHeight is the height in pixels of one pin trace.
	RowHeight int
	// FontSize is the label size in points.
	FontSize float64

	_ struct{}
}

// DefaultPlotOpts is the recommended default options.
var DefaultPlotOpts = PlotOpts{CellWidth: 24, RowHeight: 28, FontSize: 12}

const plotPadding = 8

type plotLayout struct {
	label int // x where the first frame starts
	cell  int
	row   int
}

// x returns the left edge of frame i.
func (l *plotLayout) x(i int) int {
	return l.label + i*l.cell
}

// high returns the y of a high level for pin p. Row 0 holds the indexes.
func (l *plotLayout) high(p int) int {
	return plotPadding + (p+1)*l.row + 4
}

func (l *plotLayout) low(p int) int {
	return plotPadding + (p+2)*l.row - 4
}

// Plot draws frames as a timing diagram, one trace per pin name.
func Plot(frames []Frame, names []string, opts *PlotOpts) (image.Image, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if opts == nil {
		opts = &DefaultPlotOpts
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: opts.FontSize})
	defer face.Close()

	l := newLayout(face, names, opts)
	w := l.x(len(frames)) + plotPadding
	h := plotPadding*2 + (len(names)+1)*l.row
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	// Step indexes along the top.
	dc.SetRGB(0.4, 0.4, 0.4)
	for i, fr := range frames {
		s := "-"
		if !fr.Cleared {
			s = strconv.FormatUint(uint64(fr.Index), 10)
		}
		if fr.Err != nil {
			s = "!"
		}
		dc.DrawStringAnchored(s, float64(l.x(i)+l.cell/2), float64(plotPadding+l.row/2), 0.5, 0.5)
	}

	for p, name := range names {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(name, plotPadding, float64(l.high(p)+l.low(p))/2, 0, 0.5)

		dc.SetRGB(0.1, 0.4, 0.8)
		dc.SetLineWidth(2)
		for i, fr := range frames {
			y := float64(l.low(p))
			if p < len(fr.Levels) && bool(fr.Levels[p]) {
				y = float64(l.high(p))
			}
			x := float64(l.x(i))
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
			dc.LineTo(x+float64(l.cell), y)
		}
		dc.Stroke()
	}
	return dc.Image(), nil
}

// SavePNG plots frames and writes the result to path.
func SavePNG(path string, frames []Frame, names []string, opts *PlotOpts) error {
	img, err := Plot(frames, names, opts)
	if err != nil {
		return err
	}
	return gg.SavePNG(path, img)
}

func newLayout(face font.Face, names []string, opts *PlotOpts) plotLayout {
	widest := 0
	for _, n := range names {
		if w := font.MeasureString(face, n).Ceil(); w > widest {
			widest = w
		}
	}
	return plotLayout{
		label: plotPadding*2 + widest,
		cell:  opts.CellWidth,
		row:   opts.RowHeight,
	}
}

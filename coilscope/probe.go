// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coilscope

import (
	"periph.io/x/conn/v3/gpio"
)

// Probe is a gpio.PinOut that records the last level successfully written
// to the pin it wraps.
type Probe struct {
	gpio.PinOut

	level gpio.Level
}

// NewProbes wraps each pin in a Probe.
func NewProbes(pins ...gpio.PinOut) []*Probe {
	probes := make([]*Probe, len(pins))
	for i, p := range pins {
		probes[i] = &Probe{PinOut: p}
	}
	return probes
}

// Out implements gpio.PinOut.
func (p *Probe) Out(l gpio.Level) error {
	if err := p.PinOut.Out(l); err != nil {
		return err
	}
	p.level = l
	return nil
}

// Level returns the last level written.
func (p *Probe) Level() gpio.Level {
	return p.level
}

var _ gpio.PinOut = &Probe{}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coil

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// FiveWireCycle is the number of rows in the five wire sequence.
const FiveWireCycle = 10

var fiveWireTable = [FiveWireCycle][5]gpio.Level{
	{gpio.Low, gpio.High, gpio.High, gpio.Low, gpio.High},
	{gpio.Low, gpio.High, gpio.Low, gpio.Low, gpio.High},
	{gpio.Low, gpio.High, gpio.Low, gpio.High, gpio.High},
	{gpio.Low, gpio.High, gpio.Low, gpio.High, gpio.Low},
	{gpio.High, gpio.High, gpio.Low, gpio.High, gpio.Low},
	{gpio.High, gpio.Low, gpio.Low, gpio.High, gpio.Low},
	{gpio.High, gpio.Low, gpio.High, gpio.High, gpio.Low},
	{gpio.High, gpio.Low, gpio.High, gpio.Low, gpio.Low},
	{gpio.High, gpio.Low, gpio.High, gpio.Low, gpio.High},
	{gpio.Low, gpio.Low, gpio.High, gpio.Low, gpio.High},
}

// FiveWire drives a five phase motor through five pins.
type FiveWire struct {
	pins [5]gpio.PinOut
}

// NewFiveWire returns a FiveWire owning p1 to p5.
//
// The pins must not be used by anything else afterwards.
func NewFiveWire(p1, p2, p3, p4, p5 gpio.PinOut) (*FiveWire, error) {
	m := &FiveWire{pins: [5]gpio.PinOut{p1, p2, p3, p4, p5}}
	if err := checkPins(m.pins[:]); err != nil {
		return nil, err
	}
	return m, nil
}

// FiveWirePattern returns the levels of (p1, p2, p3, p4, p5) for index.
func FiveWirePattern(index uint32) [5]gpio.Level {
	return fiveWireTable[index%FiveWireCycle]
}

// Step implements Motor.
func (m *FiveWire) Step(index uint32) error {
	row := &fiveWireTable[index%FiveWireCycle]
	return drive(m.pins[:], row[:])
}

// Clear implements Motor.
func (m *FiveWire) Clear() error {
	return release(m.pins[:])
}

// CycleLength returns the number of distinct patterns.
func (m *FiveWire) CycleLength() uint32 {
	return FiveWireCycle
}

// Halt implements conn.Resource.
//
// It de-energizes the coils.
func (m *FiveWire) Halt() error {
	return m.Clear()
}

func (m *FiveWire) String() string {
	return describe("FiveWire", m.pins[:])
}

var _ Motor = &FiveWire{}
var _ conn.Resource = &FiveWire{}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coil

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// FourWireCycle is the number of rows in the four wire sequence.
const FourWireCycle = 4

var fourWireTable = [FourWireCycle][4]gpio.Level{
	{gpio.High, gpio.Low, gpio.High, gpio.Low},
	{gpio.Low, gpio.High, gpio.High, gpio.Low},
	{gpio.Low, gpio.High, gpio.Low, gpio.High},
	{gpio.High, gpio.Low, gpio.Low, gpio.High},
}

// FourWire drives a bipolar or unipolar motor through four pins, one per coil
// end.
type FourWire struct {
	pins [4]gpio.PinOut
}

// NewFourWire returns a FourWire owning p1 to p4.
//
// The pins must not be used by anything else afterwards.
func NewFourWire(p1, p2, p3, p4 gpio.PinOut) (*FourWire, error) {
	m := &FourWire{pins: [4]gpio.PinOut{p1, p2, p3, p4}}
	if err := checkPins(m.pins[:]); err != nil {
		return nil, err
	}
	return m, nil
}

// FourWirePattern returns the levels of (p1, p2, p3, p4) for index.
func FourWirePattern(index uint32) [4]gpio.Level {
	return fourWireTable[index%FourWireCycle]
}

// Step implements Motor.
func (m *FourWire) Step(index uint32) error {
	row := &fourWireTable[index%FourWireCycle]
	return drive(m.pins[:], row[:])
}

// Clear implements Motor.
func (m *FourWire) Clear() error {
	return release(m.pins[:])
}

// CycleLength returns the number of distinct patterns.
func (m *FourWire) CycleLength() uint32 {
	return FourWireCycle
}

// Halt implements conn.Resource.
//
// It de-energizes the coils.
func (m *FourWire) Halt() error {
	return m.Clear()
}

func (m *FourWire) String() string {
	return describe("FourWire", m.pins[:])
}

var _ Motor = &FourWire{}
var _ conn.Resource = &FourWire{}

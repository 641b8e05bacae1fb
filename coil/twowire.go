// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coil

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// TwoWireCycle is the number of rows in the two wire sequence.
const TwoWireCycle = 4

var twoWireTable = [TwoWireCycle][2]gpio.Level{
	{gpio.Low, gpio.High},
	{gpio.High, gpio.High},
	{gpio.High, gpio.Low},
	{gpio.Low, gpio.Low},
}

// TwoWire drives a motor wired through two pins, usually behind an H-bridge
// with inverters.
type TwoWire struct {
	pins [2]gpio.PinOut
}

// NewTwoWire returns a TwoWire owning p1 and p2.
//
// The pins must not be used by anything else afterwards.
func NewTwoWire(p1, p2 gpio.PinOut) (*TwoWire, error) {
	m := &TwoWire{pins: [2]gpio.PinOut{p1, p2}}
	if err := checkPins(m.pins[:]); err != nil {
		return nil, err
	}
	return m, nil
}

// TwoWirePattern returns the levels of (p1, p2) for index.
func TwoWirePattern(index uint32) [2]gpio.Level {
	return twoWireTable[index%TwoWireCycle]
}

// Step implements Motor.
func (m *TwoWire) Step(index uint32) error {
	row := &twoWireTable[index%TwoWireCycle]
	return drive(m.pins[:], row[:])
}

// Clear implements Motor.
func (m *TwoWire) Clear() error {
	return release(m.pins[:])
}

// CycleLength returns the number of distinct patterns.
func (m *TwoWire) CycleLength() uint32 {
	return TwoWireCycle
}

// Halt implements conn.Resource.
//
// It de-energizes the coils.
func (m *TwoWire) Halt() error {
	return m.Clear()
}

func (m *TwoWire) String() string {
	return describe("TwoWire", m.pins[:])
}

var _ Motor = &TwoWire{}
var _ conn.Resource = &TwoWire{}

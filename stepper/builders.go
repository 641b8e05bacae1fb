// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stepper

import (
	"github.com/GermanBionicSystems/steppers/coil"
	"periph.io/x/conn/v3/gpio"
)

// NewTwoWire returns a Dev driving a two wire motor.
func NewTwoWire(p1, p2 gpio.PinOut, delay Delayer, numberOfSteps uint32) (*Dev, error) {
	m, err := coil.NewTwoWire(p1, p2)
	if err != nil {
		return nil, err
	}
	return New(numberOfSteps, m, delay), nil
}

// NewFourWire returns a Dev driving a four wire motor.
func NewFourWire(p1, p2, p3, p4 gpio.PinOut, delay Delayer, numberOfSteps uint32) (*Dev, error) {
	m, err := coil.NewFourWire(p1, p2, p3, p4)
	if err != nil {
		return nil, err
	}
	return New(numberOfSteps, m, delay), nil
}

// NewFiveWire returns a Dev driving a five wire motor.
func NewFiveWire(p1, p2, p3, p4, p5 gpio.PinOut, delay Delayer, numberOfSteps uint32) (*Dev, error) {
	m, err := coil.NewFiveWire(p1, p2, p3, p4, p5)
	if err != nil {
		return nil, err
	}
	return New(numberOfSteps, m, delay), nil
}

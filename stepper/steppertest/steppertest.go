// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package steppertest is meant to be used to test drivers built on top of
// the stepper and coil packages.
package steppertest

import (
	"errors"
	"fmt"

	"github.com/GermanBionicSystems/steppers/coil"
)

// ErrInjected is returned by Motor when no other error was set.
var ErrInjected = errors.New("steppertest: injected failure")

// Motor implements coil.Motor and records every call.
type Motor struct {
	// Steps is every index passed to Step, in order, including the failing
	// one.
	Steps []uint32
	// Clears is the number of calls to Clear.
	Clears int
	// FailAt is the 1-based Step call that fails. 0 never fails.
	FailAt int
	// Err is returned by the failing Step. Defaults to ErrInjected.
	Err error
	// ClearErr is returned by Clear.
	ClearErr error
}

// Step implements coil.Motor.
func (m *Motor) Step(index uint32) error {
	m.Steps = append(m.Steps, index)
	if m.FailAt != 0 && len(m.Steps) == m.FailAt {
		if m.Err != nil {
			return m.Err
		}
		return ErrInjected
	}
	return nil
}

// Clear implements coil.Motor.
func (m *Motor) Clear() error {
	m.Clears++
	return m.ClearErr
}

func (m *Motor) String() string {
	return fmt.Sprintf("steppertest.Motor{%d steps}", len(m.Steps))
}

// Delay implements stepper.Delayer and records every requested delay without
// waiting.
type Delay struct {
	Calls []uint32
}

// DelayMicroseconds implements stepper.Delayer.
func (d *Delay) DelayMicroseconds(us uint32) {
	d.Calls = append(d.Calls, us)
}

// Total returns the sum of all the recorded delays, in µs.
func (d *Delay) Total() uint64 {
	var t uint64
	for _, c := range d.Calls {
		t += uint64(c)
	}
	return t
}

var _ coil.Motor = &Motor{}

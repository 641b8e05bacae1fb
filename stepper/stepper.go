// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stepper

import (
	"fmt"

	"github.com/GermanBionicSystems/steppers/coil"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
)

// microsPerMinute is used to convert RPM into a per step delay.
const microsPerMinute = 60 * 1000 * 1000

// Direction is the direction of the last move.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Dev is a handle to a stepper motor.
//
// It is not safe for concurrent use.
type Dev struct {
	motor coil.Motor
	delay Delayer

	numberOfSteps uint32
	stepIndex     uint32
	direction     Direction
	stepDelay     uint32 // µs
}

// New returns a Dev that owns motor and delay.
//
// numberOfSteps is the number of steps per revolution of the motor. The
// controller starts at position 0 going forward, with no delay between steps
// until SetSpeed is called.
//
// Neither motor nor delay may be used by anything else afterwards. The coils
// are not released when the Dev is dropped; call Halt or Deenergize first.
func New(numberOfSteps uint32, motor coil.Motor, delay Delayer) *Dev {
	return &Dev{
		motor:         motor,
		delay:         delay,
		numberOfSteps: numberOfSteps,
		direction:     Forward,
	}
}

// SetSpeed sets the speed in revolutions per minute.
//
// A speed of 0, or a Dev created with 0 steps per revolution, removes the
// delay between steps altogether.
func (d *Dev) SetSpeed(rpm uint32) {
	if rpm == 0 || d.numberOfSteps == 0 {
		d.stepDelay = 0
		return
	}
	// The division order matters for large values, keep it.
	d.stepDelay = microsPerMinute / d.numberOfSteps / rpm
}

// Move turns the motor by stepsToMove steps, backward if negative.
//
// It returns once all the steps are done or on the first error from the
// motor. On error the position already accounts for the failed step.
func (d *Dev) Move(stepsToMove int32) error {
	var remaining uint32
	if stepsToMove < 0 {
		d.direction = Backward
		remaining = uint32(-int64(stepsToMove))
	} else {
		d.direction = Forward
		remaining = uint32(stepsToMove)
	}
	for ; remaining > 0; remaining-- {
		d.delay.DelayMicroseconds(d.stepDelay)
		d.advance()
		if err := d.motor.Step(d.stepIndex); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) advance() {
	if d.direction == Forward {
		d.stepIndex++
		if d.stepIndex == d.numberOfSteps {
			d.stepIndex = 0
		}
		return
	}
	if d.stepIndex == 0 {
		d.stepIndex = d.numberOfSteps
	}
	d.stepIndex--
}

// Deenergize releases all the coils.
//
// The motor loses its holding torque.
func (d *Dev) Deenergize() error {
	return d.motor.Clear()
}

// StepIndex returns the current position within a revolution.
func (d *Dev) StepIndex() uint32 {
	return d.stepIndex
}

// Direction returns the direction of the last move.
func (d *Dev) Direction() Direction {
	return d.direction
}

// StepDelay returns the delay before each step, in µs.
func (d *Dev) StepDelay() uint32 {
	return d.stepDelay
}

// NumberOfSteps returns the number of steps per revolution.
func (d *Dev) NumberOfSteps() uint32 {
	return d.numberOfSteps
}

// StepFrequency returns the step rate matching the current speed.
//
// It returns 0 when steps are not paced.
func (d *Dev) StepFrequency() physic.Frequency {
	if d.stepDelay == 0 {
		return 0
	}
	return physic.Hertz * 1000000 / physic.Frequency(d.stepDelay)
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("Stepper{%v, %d steps}", d.motor, d.numberOfSteps)
}

// Halt implements conn.Resource.
//
// It de-energizes the coils.
func (d *Dev) Halt() error {
	return d.Deenergize()
}

var _ conn.Resource = &Dev{}

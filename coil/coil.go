// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package coil

import (
	"errors"
	"fmt"
	"strings"

	"periph.io/x/conn/v3/gpio"
)

// ErrNilPin is returned by the constructors when one of the pins is missing.
var ErrNilPin = errors.New("coil: nil pin")

// Motor energizes the coils of a stepper motor for a given step index.
//
// Implementations must not wait or retry. Errors from the underlying pins are
// returned as is.
type Motor interface {
	// Step drives the pins to the pattern for index modulo the cycle length.
	Step(index uint32) error
	// Clear drives every pin low, releasing the coils.
	Clear() error
}

func checkPins(pins []gpio.PinOut) error {
	for i, p := range pins {
		if p == nil {
			return fmt.Errorf("%w: p%d", ErrNilPin, i+1)
		}
	}
	return nil
}

// drive writes levels to pins in order and stops at the first failure.
func drive(pins []gpio.PinOut, levels []gpio.Level) error {
	for i, p := range pins {
		if err := p.Out(levels[i]); err != nil {
			return err
		}
	}
	return nil
}

func release(pins []gpio.PinOut) error {
	for _, p := range pins {
		if err := p.Out(gpio.Low); err != nil {
			return err
		}
	}
	return nil
}

func describe(name string, pins []gpio.PinOut) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, p := range pins {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteByte('}')
	return b.String()
}

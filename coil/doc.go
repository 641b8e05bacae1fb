// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package coil energizes the windings of a stepper motor through GPIO output
// pins.
//
// Each sequencer maps a step index to a fixed set of pin levels. The mapping
// is the same one used by the Arduino Stepper library so motors wired for it
// can be driven unchanged:
//
//	TwoWire   2 pins, 4 rows
//	FourWire  4 pins, 4 rows
//	FiveWire  5 pins, 10 rows
//
// Sequencers do no timing. Pacing and position tracking live in the stepper
// package.
//
// # More Details
//
// https://docs.arduino.cc/libraries/stepper/
package coil

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package coilscope shows what a coil sequencer does to its pins.
//
// Probes sit between a coil.Motor and its pins and remember the last level
// written. A Scope wraps the motor and captures a Frame after every step or
// clear. Frames can be printed live on a terminal with ANSI colors, or drawn
// as a timing diagram.
//
// Useful while the motor is still in the mail, or to check the wiring order
// of a new one.
package coilscope

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package stepper drives a stepper motor one full step at a time.
//
// Dev keeps track of the logical position within the coil cycle, waits
// before every step according to the configured speed, and hands the new
// position to a coil.Motor which energizes the windings.
//
// Moves are blocking. There is no acceleration; the motor runs at the
// configured speed from the first step to the last. To interrupt a long
// move, issue it as several shorter ones and check between them.
//
// The behaviour matches the Arduino Stepper library, including the delay
// taking place before each step rather than after it.
//
// # More Details
//
// https://docs.arduino.cc/libraries/stepper/
package stepper

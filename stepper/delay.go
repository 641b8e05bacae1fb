// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stepper

import (
	"time"

	"periph.io/x/host/v3/cpu"
)

// Delayer blocks the caller for a number of microseconds.
type Delayer interface {
	DelayMicroseconds(us uint32)
}

// DelayFunc adapts a function to a Delayer.
type DelayFunc func(us uint32)

// DelayMicroseconds implements Delayer.
func (f DelayFunc) DelayMicroseconds(us uint32) {
	f(us)
}

// SpinDelay busy-waits. It is the most accurate for short delays at the
// expense of keeping a CPU core busy.
type SpinDelay struct{}

// DelayMicroseconds implements Delayer.
func (SpinDelay) DelayMicroseconds(us uint32) {
	if us == 0 {
		return
	}
	cpu.Nanospin(time.Duration(us) * time.Microsecond)
}

// SleepDelay yields to the Go scheduler. Delays may overshoot by the
// scheduler latency, which is noticeable above a few hundred steps per second.
type SleepDelay struct{}

// DelayMicroseconds implements Delayer.
func (SleepDelay) DelayMicroseconds(us uint32) {
	if us == 0 {
		return
	}
	time.Sleep(time.Duration(us) * time.Microsecond)
}

var _ Delayer = SpinDelay{}
var _ Delayer = SleepDelay{}
var _ Delayer = DelayFunc(nil)

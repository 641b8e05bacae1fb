// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package steppers is a container for GPIO driven stepper motor drivers.
//
// The coil package holds the pin sequencers, the stepper package the
// controller that paces and counts steps, and coilscope tooling to observe
// what the coils are doing.
package steppers

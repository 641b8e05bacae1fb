// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// steppersim drives a stepper motor, real or simulated, and shows the coil
// patterns as they are applied.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/GermanBionicSystems/steppers/coil"
	"github.com/GermanBionicSystems/steppers/coilscope"
	"github.com/GermanBionicSystems/steppers/stepper"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/host/v3"
)

func openPins(names string, wires int) ([]gpio.PinOut, error) {
	pins := make([]gpio.PinOut, wires)
	if names == "" {
		for i := range pins {
			pins[i] = &gpiotest.Pin{N: fmt.Sprintf("P%d", i+1), Num: i + 1}
		}
		return pins, nil
	}
	list := strings.Split(names, ",")
	if len(list) != wires {
		return nil, fmt.Errorf("-pins: expected %d names, got %d", wires, len(list))
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	for i, n := range list {
		p := gpioreg.ByName(strings.TrimSpace(n))
		if p == nil {
			return nil, fmt.Errorf("-pins: no pin named %q", n)
		}
		pins[i] = p
	}
	return pins, nil
}

func newMotor(wires int, p []gpio.PinOut) (coil.Motor, uint32, error) {
	switch wires {
	case 2:
		m, err := coil.NewTwoWire(p[0], p[1])
		return m, coil.TwoWireCycle, err
	case 4:
		m, err := coil.NewFourWire(p[0], p[1], p[2], p[3])
		return m, coil.FourWireCycle, err
	case 5:
		m, err := coil.NewFiveWire(p[0], p[1], p[2], p[3], p[4])
		return m, coil.FiveWireCycle, err
	default:
		return nil, 0, errors.New("-wires must be 2, 4 or 5")
	}
}

func mainImpl() error {
	wires := flag.Int("wires", 4, "number of coil wires: 2, 4 or 5")
	steps := flag.Uint("steps", 0, "steps per revolution; defaults to the coil cycle length")
	rpm := flag.Uint("rpm", 60, "speed in revolutions per minute")
	move := flag.Int("move", 8, "steps to move, negative to go backward")
	pins := flag.String("pins", "", "comma separated GPIO names; simulated pins when empty")
	spin := flag.Bool("spin", false, "busy-wait between steps instead of sleeping")
	out := flag.String("png", "", "write a timing diagram to this file")
	depth := flag.Int("depth", 256, "number of frames kept for the timing diagram")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	raw, err := openPins(*pins, *wires)
	if err != nil {
		return err
	}
	probes := coilscope.NewProbes(raw...)
	probed := make([]gpio.PinOut, len(probes))
	for i, p := range probes {
		probed[i] = p
	}
	m, cycle, err := newMotor(*wires, probed)
	if err != nil {
		return err
	}
	term := coilscope.NewTerminal(nil)
	defer term.Halt()
	scope, err := coilscope.New(m, probes, &coilscope.Opts{Depth: *depth, Out: term})
	if err != nil {
		return err
	}

	n := uint32(*steps)
	if n == 0 {
		n = cycle
	}
	var delay stepper.Delayer = stepper.SleepDelay{}
	if *spin {
		delay = stepper.SpinDelay{}
	}
	dev := stepper.New(n, scope, delay)
	dev.SetSpeed(uint32(*rpm))
	log.Printf("%s: %d µs per step (%s)", dev, dev.StepDelay(), dev.StepFrequency())

	moveErr := dev.Move(int32(*move))
	if err := dev.Halt(); err != nil && moveErr == nil {
		moveErr = err
	}
	log.Printf("stopped at index %d going %s", dev.StepIndex(), dev.Direction())
	if err := scope.Err(); err != nil {
		log.Printf("terminal: %v", err)
	}
	if *out != "" {
		if err := coilscope.SavePNG(*out, scope.Frames(), scope.Names(), nil); err != nil {
			return err
		}
	}
	return moveErr
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "steppersim: %s.\n", err)
		os.Exit(1)
	}
}
